package ports

import "github.com/gxwechsler/yt-transcriber/internal/domain"

// FileWriter serializes one finalized VideoMeta to a file. Writers are
// independent: one writer failing must not stop its siblings.
type FileWriter interface {
	// Ext returns the file extension (without dot) this writer produces.
	Ext() string

	// Write produces the output file at path.
	Write(video *domain.VideoMeta, path string) error
}
