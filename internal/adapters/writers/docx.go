package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
	"github.com/gxwechsler/yt-transcriber/internal/ports"
)

const (
	fontName    = "Calibri"
	bodySize    = 11
	titleSize   = 18
	headingSize = 14
	textColor   = "000000"
)

// Docx writes the same content as the Markdown writer, formatted as a
// Word document via godocx.
type Docx struct{}

func (Docx) Ext() string { return "docx" }

func (Docx) Write(video *domain.VideoMeta, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("write docx: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), video.Title, true, titleSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Video Information", true, headingSize)
	infoItems := []string{
		"URL: " + video.WatchURL(),
		"Channel: " + video.Channel,
		"Subscribers: " + formatNumber(video.SubscriberCount),
		"Date: " + video.UploadDateFormatted(),
		"Duration: " + video.DurationFormatted(),
		"Views: " + formatNumber(video.ViewCount),
		"Likes: " + formatNumber(video.LikeCount),
	}
	for _, item := range infoItems {
		addBodyRun(doc.AddParagraph(""), item)
	}

	if len(video.Links) > 0 {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "Links Mentioned", true, headingSize)
		for _, link := range video.Links {
			text := link.URL
			if link.Context != "" {
				text += " — " + link.Context
			}
			addBodyRun(doc.AddParagraph(""), "• "+text)
		}
	}

	if len(video.Chapters) > 0 {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "Chapters", true, headingSize)
		for _, ch := range video.Chapters {
			t := int(ch.StartTime)
			addBodyRun(doc.AddParagraph(""), fmt.Sprintf("• %d:%02d — %s", t/60, t%60, ch.Title))
		}
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), "Transcript", true, headingSize)

	if len(video.Transcript) > 0 {
		for _, para := range groupByTimestamp(video.Transcript) {
			p := doc.AddParagraph("")
			p.AddText(para.timestamp+" ").Font(fontName).Size(9).Color(textColor).Bold(true)
			p.AddText(para.text).Font(fontName).Size(bodySize).Color(textColor)
		}
	} else {
		addBodyRun(doc.AddParagraph(""), "No transcript available")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color(textColor)
	if bold {
		run.Bold(true)
	}
}

func addBodyRun(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(bodySize).Color(textColor)
}

var _ ports.FileWriter = Docx{}
