package ports

import (
	"context"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
)

// MetadataFetcher retrieves video metadata without touching subtitles.
type MetadataFetcher interface {
	// FetchMetadata returns a VideoMeta with raw fields populated and
	// naming fields proposed.
	FetchMetadata(ctx context.Context, url string) (*domain.VideoMeta, error)
}

// TranscriptFetcher retrieves the English auto-generated transcript for
// an already-fetched video.
type TranscriptFetcher interface {
	// FetchTranscript populates video.Transcript, returning
	// domain.ErrNoTranscript when no subtitles exist.
	FetchTranscript(ctx context.Context, video *domain.VideoMeta) error
}

// Downloader wraps the external extraction tool.
type Downloader interface {
	MetadataFetcher
	TranscriptFetcher

	// IsAvailable checks if yt-dlp is installed and ready.
	IsAvailable() bool

	// BinaryPath returns the path to the yt-dlp binary.
	BinaryPath() string

	// Update updates yt-dlp to the latest version.
	Update(ctx context.Context) error
}
