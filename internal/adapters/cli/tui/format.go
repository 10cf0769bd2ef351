package tui

import (
	"fmt"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
)

// FormatCount formats a number with K/M suffix
// Examples: 892 -> "892", 1234 -> "1.2K", 1500000 -> "1.5M"
func FormatCount(count int64) string {
	if count >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(count)/1000000)
	}
	if count >= 1000 {
		return fmt.Sprintf("%.1fK", float64(count)/1000)
	}
	return fmt.Sprintf("%d", count)
}

// Truncate shortens s to maxLen runes, ending with "..." when cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// channelColWidth bounds the channel column in the video line.
const channelColWidth = 20

// FormatVideoLine formats a fetched video as a single line for display
// Example: "Maps of Meaning 01...  Jordan Peterson  2017-05-17  2:38:27  👁  1.2M"
func FormatVideoLine(video *domain.VideoMeta, maxTitleLen int) string {
	title := Truncate(video.Title, maxTitleLen)
	channel := Truncate(video.Channel, channelColWidth)

	return fmt.Sprintf("%-*s  %-*s  %s  %s  👁 %6s",
		maxTitleLen, title,
		channelColWidth, channel,
		video.UploadDateFormatted(),
		video.DurationFormatted(),
		FormatCount(video.ViewCount))
}
