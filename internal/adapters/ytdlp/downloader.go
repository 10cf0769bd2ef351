// Package ytdlp wraps the yt-dlp command-line tool in two modes:
// a fast metadata-only fetch for preview and a slower subtitle fetch.
package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gxwechsler/yt-transcriber/internal/domain"
	"github.com/gxwechsler/yt-transcriber/internal/ports"
	"github.com/gxwechsler/yt-transcriber/pkg/executor"
)

// subtitleLang is the only language requested; auto-generated English
// subtitles are the common case on YouTube.
const subtitleLang = "en"

// Downloader implements ports.Downloader using yt-dlp
type Downloader struct {
	binPath  string
	override string
	tmpDir   string
	exec     executor.Executor
}

// NewDownloader creates a new yt-dlp downloader. binOverride takes
// precedence over PATH lookup; tmpDir holds transient subtitle files.
func NewDownloader(exec executor.Executor, binOverride, tmpDir string) *Downloader {
	return &Downloader{
		override: binOverride,
		tmpDir:   tmpDir,
		exec:     exec,
	}
}

func (d *Downloader) findBinary() string {
	// Check configured location first
	if d.override != "" {
		if _, err := os.Stat(d.override); err == nil {
			return d.override
		}
	}

	// Check system PATH
	if path, err := d.exec.LookPath("yt-dlp"); err == nil {
		return path
	}

	return ""
}

func (d *Downloader) BinaryPath() string {
	if d.binPath != "" {
		return d.binPath
	}
	d.binPath = d.findBinary()
	return d.binPath
}

func (d *Downloader) IsAvailable() bool {
	return d.BinaryPath() != ""
}

// ytdlpInfo is the subset of the yt-dlp info dump we consume.
type ytdlpInfo struct {
	ID                    string  `json:"id"`
	Title                 string  `json:"title"`
	Channel               string  `json:"channel"`
	Uploader              string  `json:"uploader"`
	ChannelURL            string  `json:"channel_url"`
	UploadDate            string  `json:"upload_date"`
	Duration              float64 `json:"duration"`
	ViewCount             int64   `json:"view_count"`
	LikeCount             int64   `json:"like_count"`
	ChannelFollowerCount  int64   `json:"channel_follower_count"`
	Description           string  `json:"description"`
	Chapters              []struct {
		Title     string  `json:"title"`
		StartTime float64 `json:"start_time"`
	} `json:"chapters"`
}

// FetchMetadata runs yt-dlp in metadata-only mode and builds a
// VideoMeta with naming fields proposed.
func (d *Downloader) FetchMetadata(ctx context.Context, url string) (*domain.VideoMeta, error) {
	binPath := d.BinaryPath()
	if binPath == "" {
		return nil, domain.ErrYtDlpNotFound
	}

	vid, err := domain.ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	args := []string{
		"--no-warnings",
		"--skip-download",
		"--dump-single-json",
		watchURL(vid),
	}

	output, err := d.exec.Execute(ctx, binPath, args...)
	if err != nil {
		return nil, classifyFetchError(err)
	}

	var info ytdlpInfo
	if err := json.Unmarshal([]byte(output), &info); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	channel := info.Channel
	if channel == "" {
		channel = info.Uploader
	}

	video := &domain.VideoMeta{
		VideoID:         vid,
		URL:             url,
		Title:           info.Title,
		Channel:         channel,
		ChannelURL:      info.ChannelURL,
		UploadDate:      info.UploadDate,
		Duration:        int(info.Duration),
		ViewCount:       info.ViewCount,
		LikeCount:       info.LikeCount,
		SubscriberCount: info.ChannelFollowerCount,
		Description:     info.Description,
		Selected:        true,
		FetchedAt:       time.Now(),
	}
	if video.Title == "" {
		video.Title = "Untitled"
	}

	for _, ch := range info.Chapters {
		video.Chapters = append(video.Chapters, domain.Chapter{
			Title:     ch.Title,
			StartTime: ch.StartTime,
		})
	}

	video.ProposeNaming()
	return video, nil
}

// FetchTranscript runs yt-dlp in subtitle-download mode and parses the
// resulting VTT file into the video's transcript.
func (d *Downloader) FetchTranscript(ctx context.Context, video *domain.VideoMeta) error {
	binPath := d.BinaryPath()
	if binPath == "" {
		return domain.ErrYtDlpNotFound
	}

	if err := os.MkdirAll(d.tmpDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	tmpBase := filepath.Join(d.tmpDir, "yt_trans_"+video.VideoID)
	vttPath := fmt.Sprintf("%s.%s.vtt", tmpBase, subtitleLang)

	args := []string{
		"--no-warnings",
		"--skip-download",
		"--write-auto-subs",
		"--sub-langs", subtitleLang,
		"-o", tmpBase,
		watchURL(video.VideoID),
	}

	_, execErr := d.exec.Execute(ctx, binPath, args...)

	data, err := os.ReadFile(vttPath)
	if err != nil {
		// yt-dlp exits zero when no subtitles exist; the missing VTT
		// file is the only reliable signal.
		if os.IsNotExist(err) {
			if execErr != nil {
				return classifyFetchError(execErr)
			}
			return domain.ErrNoTranscript
		}
		return fmt.Errorf("failed to read subtitles: %w", err)
	}
	defer os.Remove(vttPath)

	video.Transcript = ParseVTT(string(data))
	if len(video.Transcript) == 0 {
		return domain.ErrNoTranscript
	}
	return nil
}

// Update updates yt-dlp to the latest version.
func (d *Downloader) Update(ctx context.Context) error {
	binPath := d.BinaryPath()
	if binPath == "" {
		return domain.ErrYtDlpNotFound
	}

	_, err := d.exec.Execute(ctx, binPath, "-U")
	return err
}

func watchURL(videoID string) string {
	return "https://youtube.com/watch?v=" + videoID
}

// classifyFetchError maps yt-dlp stderr text onto sentinel errors.
func classifyFetchError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Private video") || strings.Contains(msg, "Video unavailable"):
		return domain.ErrVideoUnavailable
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate-limit") || strings.Contains(msg, "rate limit"):
		return domain.ErrRateLimited
	default:
		return fmt.Errorf("yt-dlp failed: %w", err)
	}
}

var _ ports.Downloader = (*Downloader)(nil)
