package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gxwechsler/yt-transcriber/internal/config"
	"github.com/gxwechsler/yt-transcriber/internal/domain"
	"github.com/gxwechsler/yt-transcriber/internal/logger"
	"github.com/gxwechsler/yt-transcriber/internal/naming"
	"github.com/gxwechsler/yt-transcriber/internal/ports"
)

// ProcessOptions configures a processing run.
type ProcessOptions struct {
	IncludeLinks bool
	// OutputBase overrides the configured output directory when set.
	OutputBase string
	// OnProgress is called before each video is processed. Optional.
	OnProgress func(index, total int, video *domain.VideoMeta)
	// OnResult is called after each video finishes. Optional.
	OnResult func(result domain.ProcessResult)
}

// SessionService orchestrates a fetch-review-process session.
type SessionService struct {
	cfg        *config.Config
	downloader ports.Downloader
	writers    []ports.FileWriter
	metrics    ports.Metrics
	log        logger.Logger

	State *domain.BatchState
}

// NewSessionService creates a session service with all outputs enabled.
func NewSessionService(
	cfg *config.Config,
	downloader ports.Downloader,
	writers []ports.FileWriter,
	metrics ports.Metrics,
	log logger.Logger,
) *SessionService {
	return &SessionService{
		cfg:        cfg,
		downloader: downloader,
		writers:    writers,
		metrics:    metrics,
		log:        log,
		State:      domain.NewBatchState(),
	}
}

// FetchMetadata fetches metadata for each URL in order. Inputs beyond the
// batch limit are dropped with a warning. Failures do not stop the batch;
// each one is returned as an error result. On success the session moves to
// the review phase with the fetched videos.
func (s *SessionService) FetchMetadata(ctx context.Context, urls []string) ([]*domain.VideoMeta, []domain.ProcessResult) {
	limit := s.cfg.BatchMaxSize
	if limit <= 0 || limit > config.MaxBatchSize {
		limit = config.MaxBatchSize
	}
	videos := make([]*domain.VideoMeta, 0, len(urls))
	var failures []domain.ProcessResult

	if len(urls) > limit {
		s.log.Warn(ctx, "batch of %d truncated to %d", len(urls), limit)
		for _, url := range urls[limit:] {
			failures = append(failures, domain.ProcessResult{
				URL:     url,
				Status:  domain.StatusSkipped,
				Message: fmt.Sprintf("over the batch limit of %d", limit),
			})
		}
		urls = urls[:limit]
	}

	for _, url := range urls {
		video, err := s.downloader.FetchMetadata(ctx, url)
		if err != nil {
			s.log.Warn(ctx, "fetch failed for %s: %v", url, err)
			failures = append(failures, domain.ProcessResult{
				URL:     url,
				Status:  domain.StatusError,
				Message: fetchErrorMessage(err),
			})
			continue
		}
		s.log.Debug(ctx, "fetched %s (%s)", video.VideoID, video.Title)
		videos = append(videos, video)
	}

	s.State.ToReview(videos)
	return videos, failures
}

// ProcessSelected runs every selected video through transcript fetch and
// all writers, sequentially. One video failing never stops the rest, and
// one writer failing never stops its siblings.
func (s *SessionService) ProcessSelected(ctx context.Context, opts ProcessOptions) []domain.ProcessResult {
	s.State.ToProcessing()

	selected := s.State.SelectedVideos()
	results := make([]domain.ProcessResult, 0, len(selected))

	for i, video := range selected {
		if opts.OnProgress != nil {
			opts.OnProgress(i, len(selected), video)
		}
		result := s.processOne(ctx, video, opts)
		if opts.OnResult != nil {
			opts.OnResult(result)
		}
		results = append(results, result)
	}

	s.State.ToComplete(results)
	return results
}

func (s *SessionService) processOne(ctx context.Context, video *domain.VideoMeta, opts ProcessOptions) domain.ProcessResult {
	result := domain.ProcessResult{
		VideoID: video.VideoID,
		URL:     video.WatchURL(),
		Title:   video.Title,
	}

	var notes []string

	err := s.downloader.FetchTranscript(ctx, video)
	switch {
	case errors.Is(err, domain.ErrNoTranscript):
		s.log.Warn(ctx, "no transcript for %s", video.VideoID)
		notes = append(notes, "no transcript available")
	case err != nil:
		s.log.Error(ctx, "transcript fetch failed for %s: %v", video.VideoID, err)
		result.Status = domain.StatusError
		result.Message = fmt.Sprintf("transcript: %v", err)
		s.metrics.RecordFailure()
		return result
	}

	if opts.IncludeLinks {
		video.Links = domain.ExtractLinks(video.Description)
	} else {
		video.Links = nil
	}

	base := opts.OutputBase
	if base == "" {
		base = s.cfg.OutputBase
	}

	filename := naming.BuildFilename(
		video.ProposedAuthor, video.ProposedTopic, video.ProposedYear,
		s.cfg.FilenameMaxLength,
	)

	var writeErrs []string
	for _, w := range s.writers {
		path, err := naming.UniqueOutputPath(base, video.ProposedAuthor, filename, w.Ext())
		if err != nil {
			s.log.Error(ctx, "resolving %s path for %s: %v", w.Ext(), video.VideoID, err)
			writeErrs = append(writeErrs, fmt.Sprintf("%s: %v", w.Ext(), err))
			continue
		}
		if err := w.Write(video, path); err != nil {
			s.log.Error(ctx, "writing %s for %s: %v", w.Ext(), video.VideoID, err)
			writeErrs = append(writeErrs, fmt.Sprintf("%s: %v", w.Ext(), err))
			continue
		}
		result.Files = append(result.Files, path)
	}

	s.metrics.AddFilesCreated(len(result.Files))

	if len(result.Files) == 0 {
		result.Status = domain.StatusError
		result.Message = strings.Join(writeErrs, "; ")
		s.metrics.RecordFailure()
		return result
	}

	result.Status = domain.StatusSuccess
	notes = append(notes, writeErrs...)
	result.Message = strings.Join(notes, "; ")
	s.metrics.RecordSuccess()
	return result
}

// Reset clears the session back to the input phase.
func (s *SessionService) Reset() {
	s.State.Reset()
}

// Summary returns the metrics one-liner for the session.
func (s *SessionService) Summary() string {
	return s.metrics.Summary()
}

func fetchErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return "invalid YouTube URL"
	case errors.Is(err, domain.ErrVideoUnavailable):
		return "video unavailable or private"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate limited by YouTube, try again later"
	default:
		return err.Error()
	}
}
