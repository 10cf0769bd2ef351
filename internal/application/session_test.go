package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gxwechsler/yt-transcriber/internal/config"
	"github.com/gxwechsler/yt-transcriber/internal/domain"
	"github.com/gxwechsler/yt-transcriber/internal/logger"
	"github.com/gxwechsler/yt-transcriber/internal/ports"
)

// mockDownloader implements ports.Downloader for testing
type mockDownloader struct {
	metaErrs       map[string]error
	transcriptErr  error
	transcriptText string
}

func (m *mockDownloader) FetchMetadata(ctx context.Context, url string) (*domain.VideoMeta, error) {
	if err, ok := m.metaErrs[url]; ok {
		return nil, err
	}

	id, err := domain.ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	video := &domain.VideoMeta{
		VideoID:    id,
		URL:        url,
		Title:      "Test Video " + id,
		Channel:    "Test Channel",
		UploadDate: "20240115",
		Selected:   true,
	}
	video.ProposeNaming()
	return video, nil
}

func (m *mockDownloader) FetchTranscript(ctx context.Context, video *domain.VideoMeta) error {
	if m.transcriptErr != nil {
		return m.transcriptErr
	}
	text := m.transcriptText
	if text == "" {
		text = "hello world"
	}
	video.Transcript = []domain.TranscriptEntry{{Timestamp: "[00:00]", Text: text}}
	return nil
}

func (m *mockDownloader) IsAvailable() bool                { return true }
func (m *mockDownloader) BinaryPath() string               { return "/usr/bin/yt-dlp" }
func (m *mockDownloader) Update(ctx context.Context) error { return nil }

var _ ports.Downloader = (*mockDownloader)(nil)

// mockWriter implements ports.FileWriter for testing
type mockWriter struct {
	ext   string
	err   error
	paths []string
}

func (m *mockWriter) Ext() string { return m.ext }

func (m *mockWriter) Write(video *domain.VideoMeta, path string) error {
	if m.err != nil {
		return m.err
	}
	if err := os.WriteFile(path, []byte(video.Title), 0644); err != nil {
		return err
	}
	m.paths = append(m.paths, path)
	return nil
}

func testURL(i int) string {
	return fmt.Sprintf("https://youtu.be/AAAAAAAAAA%d", i)
}

func newTestService(t *testing.T, dl ports.Downloader, writers ...ports.FileWriter) *SessionService {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputBase = t.TempDir()
	if len(writers) == 0 {
		writers = []ports.FileWriter{&mockWriter{ext: "md"}}
	}
	return NewSessionService(cfg, dl, writers, ports.NoopMetrics{}, logger.New("error"))
}

func TestSessionService_FetchMetadata(t *testing.T) {
	svc := newTestService(t, &mockDownloader{})

	videos, failures := svc.FetchMetadata(context.Background(), []string{testURL(1), testURL(2)})

	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(videos))
	}
	if len(failures) != 0 {
		t.Errorf("got %d failures, want 0", len(failures))
	}
	if svc.State.Phase != domain.PhaseReview {
		t.Errorf("phase = %v, want review", svc.State.Phase)
	}
	if videos[0].ProposedAuthor != "Test Channel" {
		t.Errorf("ProposedAuthor = %q, want 'Test Channel'", videos[0].ProposedAuthor)
	}
}

func TestSessionService_FetchMetadata_PartialFailure(t *testing.T) {
	dl := &mockDownloader{metaErrs: map[string]error{
		testURL(2): domain.ErrVideoUnavailable,
	}}
	svc := newTestService(t, dl)

	videos, failures := svc.FetchMetadata(context.Background(), []string{testURL(1), testURL(2), testURL(3)})

	if len(videos) != 2 {
		t.Errorf("got %d videos, want 2", len(videos))
	}
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Status != domain.StatusError {
		t.Errorf("failure status = %q, want error", failures[0].Status)
	}
	if failures[0].Message != "video unavailable or private" {
		t.Errorf("failure message = %q", failures[0].Message)
	}
}

func TestSessionService_FetchMetadata_TruncatesBatch(t *testing.T) {
	svc := newTestService(t, &mockDownloader{})

	urls := make([]string, 12)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://youtu.be/AAAAAAAAA%02d", i)
	}

	videos, failures := svc.FetchMetadata(context.Background(), urls)

	if len(videos) != 10 {
		t.Errorf("got %d videos, want 10", len(videos))
	}
	if len(failures) != 2 {
		t.Fatalf("got %d skipped, want 2", len(failures))
	}
	for _, f := range failures {
		if f.Status != domain.StatusSkipped {
			t.Errorf("status = %q, want skipped", f.Status)
		}
	}
}

func TestSessionService_ProcessSelected(t *testing.T) {
	w := &mockWriter{ext: "md"}
	svc := newTestService(t, &mockDownloader{}, w)

	svc.FetchMetadata(context.Background(), []string{testURL(1), testURL(2)})

	var progress []string
	results := svc.ProcessSelected(context.Background(), ProcessOptions{
		IncludeLinks: true,
		OnProgress: func(i, total int, v *domain.VideoMeta) {
			progress = append(progress, fmt.Sprintf("%d/%d", i+1, total))
		},
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if !r.IsSuccess() {
			t.Errorf("result for %s: status %q message %q", r.VideoID, r.Status, r.Message)
		}
		if len(r.Files) != 1 {
			t.Errorf("result for %s has %d files, want 1", r.VideoID, len(r.Files))
		}
	}
	if len(progress) != 2 || progress[0] != "1/2" || progress[1] != "2/2" {
		t.Errorf("progress = %v", progress)
	}
	if svc.State.Phase != domain.PhaseComplete {
		t.Errorf("phase = %v, want complete", svc.State.Phase)
	}
}

func TestSessionService_ProcessSelected_SkipsDeselected(t *testing.T) {
	svc := newTestService(t, &mockDownloader{})

	videos, _ := svc.FetchMetadata(context.Background(), []string{testURL(1), testURL(2)})
	videos[0].Selected = false

	results := svc.ProcessSelected(context.Background(), ProcessOptions{})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].VideoID != videos[1].VideoID {
		t.Errorf("processed %s, want %s", results[0].VideoID, videos[1].VideoID)
	}
}

func TestSessionService_ProcessSelected_NoTranscript(t *testing.T) {
	dl := &mockDownloader{transcriptErr: domain.ErrNoTranscript}
	svc := newTestService(t, dl)

	svc.FetchMetadata(context.Background(), []string{testURL(1)})
	results := svc.ProcessSelected(context.Background(), ProcessOptions{})

	if len(results) != 1 {
		t.Fatal("want 1 result")
	}
	if !results[0].IsSuccess() {
		t.Errorf("missing transcript should not fail the video: %+v", results[0])
	}
	if !strings.Contains(results[0].Message, "no transcript") {
		t.Errorf("message = %q, want transcript note", results[0].Message)
	}
}

func TestSessionService_ProcessSelected_TranscriptError(t *testing.T) {
	dl := &mockDownloader{transcriptErr: domain.ErrRateLimited}
	svc := newTestService(t, dl)

	svc.FetchMetadata(context.Background(), []string{testURL(1)})
	results := svc.ProcessSelected(context.Background(), ProcessOptions{})

	if results[0].Status != domain.StatusError {
		t.Errorf("status = %q, want error", results[0].Status)
	}
}

func TestSessionService_ProcessSelected_WriterFailureIsIsolated(t *testing.T) {
	good := &mockWriter{ext: "md"}
	bad := &mockWriter{ext: "docx", err: errors.New("disk full")}
	svc := newTestService(t, &mockDownloader{}, bad, good)

	svc.FetchMetadata(context.Background(), []string{testURL(1)})
	results := svc.ProcessSelected(context.Background(), ProcessOptions{})

	if !results[0].IsSuccess() {
		t.Fatalf("one writer failing should not fail the video: %+v", results[0])
	}
	if len(results[0].Files) != 1 {
		t.Errorf("got %d files, want 1", len(results[0].Files))
	}
	if !strings.Contains(results[0].Message, "docx") {
		t.Errorf("message = %q, want docx failure note", results[0].Message)
	}
}

func TestSessionService_ProcessSelected_AllWritersFail(t *testing.T) {
	bad := &mockWriter{ext: "md", err: errors.New("disk full")}
	svc := newTestService(t, &mockDownloader{}, bad)

	svc.FetchMetadata(context.Background(), []string{testURL(1)})
	results := svc.ProcessSelected(context.Background(), ProcessOptions{})

	if results[0].Status != domain.StatusError {
		t.Errorf("status = %q, want error when every writer fails", results[0].Status)
	}
}

func TestSessionService_ProcessSelected_LinksToggle(t *testing.T) {
	svc := newTestService(t, &mockDownloader{})

	videos, _ := svc.FetchMetadata(context.Background(), []string{testURL(1)})
	videos[0].Description = "Check out https://example.com/tool for more"

	svc.ProcessSelected(context.Background(), ProcessOptions{IncludeLinks: false})
	if len(videos[0].Links) != 0 {
		t.Errorf("links = %v, want none when disabled", videos[0].Links)
	}

	svc.Reset()
	videos, _ = svc.FetchMetadata(context.Background(), []string{testURL(1)})
	videos[0].Description = "Check out https://example.com/tool for more"

	svc.ProcessSelected(context.Background(), ProcessOptions{IncludeLinks: true})
	if len(videos[0].Links) != 1 {
		t.Errorf("got %d links, want 1", len(videos[0].Links))
	}
}

func TestSessionService_OutputBaseOverride(t *testing.T) {
	svc := newTestService(t, &mockDownloader{})
	override := t.TempDir()

	svc.FetchMetadata(context.Background(), []string{testURL(1)})
	results := svc.ProcessSelected(context.Background(), ProcessOptions{OutputBase: override})

	if len(results[0].Files) != 1 {
		t.Fatalf("files = %v", results[0].Files)
	}
	rel, err := filepath.Rel(override, results[0].Files[0])
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Errorf("file %s not under override dir %s", results[0].Files[0], override)
	}
}

func TestSessionService_Reset(t *testing.T) {
	svc := newTestService(t, &mockDownloader{})

	svc.FetchMetadata(context.Background(), []string{testURL(1)})
	svc.Reset()

	if svc.State.Phase != domain.PhaseInput {
		t.Errorf("phase = %v, want input after reset", svc.State.Phase)
	}
	if len(svc.State.Pending) != 0 {
		t.Errorf("pending = %d, want 0", len(svc.State.Pending))
	}
}
