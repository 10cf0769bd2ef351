package domain

import "errors"

var (
	// Input errors
	ErrInvalidURL = errors.New("not a valid YouTube URL or video ID")

	// Fetch errors
	ErrVideoUnavailable = errors.New("video is private or unavailable")
	ErrRateLimited      = errors.New("rate limited by YouTube")
	ErrNoTranscript     = errors.New("no auto-generated subtitles available")

	// Dependency errors
	ErrYtDlpNotFound = errors.New("yt-dlp not found")
)
