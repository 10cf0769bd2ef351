package domain

import (
	"fmt"
	"strings"
)

// TranscriptEntry is a single deduplicated caption line with its
// [MM:SS] timestamp.
type TranscriptEntry struct {
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// FormatTimestamp renders a cue start time in seconds as [MM:SS].
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("[%02d:%02d]", seconds/60, seconds%60)
}

// TranscriptText returns the plain-text concatenation of all entries.
func TranscriptText(entries []TranscriptEntry) string {
	var parts []string
	for _, e := range entries {
		if t := strings.TrimSpace(e.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
