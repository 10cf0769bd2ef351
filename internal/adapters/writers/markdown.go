// Package writers serializes a finalized VideoMeta into the three
// output formats: Markdown, Word and JSON. Each writer stands alone;
// a failing writer never stops its siblings.
package writers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
	"github.com/gxwechsler/yt-transcriber/internal/ports"
)

// Markdown writes the metadata header block followed by the
// timestamped transcript body.
type Markdown struct{}

func (Markdown) Ext() string { return "md" }

func (Markdown) Write(video *domain.VideoMeta, path string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", video.Title)
	fmt.Fprintf(&sb, "**URL:** %s  \n", video.WatchURL())
	fmt.Fprintf(&sb, "**Channel:** [%s](%s)  \n", video.Channel, video.ChannelURL)
	fmt.Fprintf(&sb, "**Subscribers:** %s  \n", formatNumber(video.SubscriberCount))
	fmt.Fprintf(&sb, "**Date:** %s  \n", video.UploadDateFormatted())
	fmt.Fprintf(&sb, "**Duration:** %s  \n", video.DurationFormatted())
	fmt.Fprintf(&sb, "**Views:** %s · **Likes:** %s\n", formatNumber(video.ViewCount), formatNumber(video.LikeCount))

	if len(video.Links) > 0 {
		sb.WriteString("\n## Links Mentioned\n\n")
		for _, link := range video.Links {
			if link.Context != "" {
				fmt.Fprintf(&sb, "- <%s> — %s\n", link.URL, link.Context)
			} else {
				fmt.Fprintf(&sb, "- <%s>\n", link.URL)
			}
		}
	}

	if len(video.Chapters) > 0 {
		sb.WriteString("\n## Chapters\n\n")
		for _, ch := range video.Chapters {
			t := int(ch.StartTime)
			fmt.Fprintf(&sb, "- **%d:%02d** — %s\n", t/60, t%60, ch.Title)
		}
	}

	sb.WriteString("\n---\n\n## Transcript\n\n")

	if len(video.Transcript) > 0 {
		for _, para := range groupByTimestamp(video.Transcript) {
			fmt.Fprintf(&sb, "**%s** %s\n\n", para.timestamp, para.text)
		}
	} else {
		sb.WriteString("*No transcript available*\n")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// paragraph is a run of consecutive transcript lines sharing a timestamp.
type paragraph struct {
	timestamp string
	text      string
}

func groupByTimestamp(entries []domain.TranscriptEntry) []paragraph {
	var paragraphs []paragraph
	var lines []string
	current := ""

	flush := func() {
		if len(lines) > 0 {
			paragraphs = append(paragraphs, paragraph{timestamp: current, text: strings.Join(lines, " ")})
			lines = nil
		}
	}

	for _, e := range entries {
		if e.Timestamp != current {
			flush()
			current = e.Timestamp
		}
		lines = append(lines, e.Text)
	}
	flush()

	return paragraphs
}

// formatNumber groups digits with commas: 1400000 -> "1,400,000".
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

var _ ports.FileWriter = Markdown{}
