package ytdlp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
)

var (
	// Matches VTT timing cues like "00:00:05.520 --> 00:00:08.160"
	timingLinePattern = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.\d+\s*-->`)

	// Matches HTML-ish tags found in auto-generated captions (<c>, <i>, timestamps)
	captionTagPattern = regexp.MustCompile(`<[^>]+>`)

	// Standalone numeric cue identifiers
	cueIDPattern = regexp.MustCompile(`^\d+$`)
)

// ParseVTT converts raw VTT subtitle content into timestamped
// transcript entries. Auto-generated subtitles repeat partial lines
// across overlapping cues, so duplicate text is dropped.
func ParseVTT(raw string) []domain.TranscriptEntry {
	var entries []domain.TranscriptEntry
	seen := make(map[string]bool)
	currentTime := -1

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))

		// Skip headers, metadata and cue IDs
		if line == "" ||
			strings.HasPrefix(line, "WEBVTT") ||
			strings.HasPrefix(line, "Kind:") ||
			strings.HasPrefix(line, "Language:") ||
			strings.HasPrefix(line, "NOTE") ||
			cueIDPattern.MatchString(line) {
			continue
		}

		// Timing line: remember the cue start for following text lines
		if m := timingLinePattern.FindStringSubmatch(line); m != nil {
			h, _ := strconv.Atoi(m[1])
			min, _ := strconv.Atoi(m[2])
			s, _ := strconv.Atoi(m[3])
			currentTime = h*3600 + min*60 + s
			continue
		}

		clean := strings.TrimSpace(captionTagPattern.ReplaceAllString(line, ""))
		if clean == "" || seen[clean] {
			continue
		}
		seen[clean] = true

		ts := "[00:00]"
		if currentTime >= 0 {
			ts = domain.FormatTimestamp(currentTime)
		}
		entries = append(entries, domain.TranscriptEntry{Timestamp: ts, Text: clean})
	}

	return entries
}
