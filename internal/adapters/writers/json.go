package writers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
	"github.com/gxwechsler/yt-transcriber/internal/ports"
)

// Document is the JSON shape written for programmatic reuse.
type Document struct {
	ID                string                   `json:"id"`
	Title             string                   `json:"title"`
	Channel           string                   `json:"channel"`
	ChannelURL        string                   `json:"channel_url"`
	UploadDate        string                   `json:"upload_date"`
	Duration          int                      `json:"duration"`
	DurationFormatted string                   `json:"duration_formatted"`
	ViewCount         int64                    `json:"view_count"`
	LikeCount         int64                    `json:"like_count"`
	SubscriberCount   int64                    `json:"subscriber_count"`
	Description       string                   `json:"description"`
	Chapters          []domain.Chapter         `json:"chapters"`
	Links             []domain.Link            `json:"links"`
	Transcript        []domain.TranscriptEntry `json:"transcript"`
	TranscriptText    string                   `json:"transcript_text"`
	TranscriptEntries int                      `json:"transcript_entries"`
	ProcessedAt       time.Time                `json:"processed_at"`
	SavedAs           SavedAs                  `json:"saved_as"`
}

// SavedAs records the approved naming the files were written under.
type SavedAs struct {
	Author string `json:"author"`
	Topic  string `json:"topic"`
	Year   string `json:"year"`
}

// NewDocument maps a VideoMeta onto its JSON shape.
func NewDocument(video *domain.VideoMeta) Document {
	return Document{
		ID:                video.VideoID,
		Title:             video.Title,
		Channel:           video.Channel,
		ChannelURL:        video.ChannelURL,
		UploadDate:        video.UploadDateFormatted(),
		Duration:          video.Duration,
		DurationFormatted: video.DurationFormatted(),
		ViewCount:         video.ViewCount,
		LikeCount:         video.LikeCount,
		SubscriberCount:   video.SubscriberCount,
		Description:       video.Description,
		Chapters:          video.Chapters,
		Links:             video.Links,
		Transcript:        video.Transcript,
		TranscriptText:    domain.TranscriptText(video.Transcript),
		TranscriptEntries: len(video.Transcript),
		ProcessedAt:       time.Now(),
		SavedAs: SavedAs{
			Author: video.ProposedAuthor,
			Topic:  video.ProposedTopic,
			Year:   video.ProposedYear,
		},
	}
}

// JSON writes the full structured dump of the video's fields.
type JSON struct{}

func (JSON) Ext() string { return "json" }

func (JSON) Write(video *domain.VideoMeta, path string) error {
	data, err := json.MarshalIndent(NewDocument(video), "", "  ")
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

var _ ports.FileWriter = JSON{}
