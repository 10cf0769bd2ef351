package cli

import (
	"github.com/gxwechsler/yt-transcriber/internal/adapters/writers"
	"github.com/gxwechsler/yt-transcriber/internal/adapters/ytdlp"
	"github.com/gxwechsler/yt-transcriber/internal/application"
	"github.com/gxwechsler/yt-transcriber/internal/config"
	"github.com/gxwechsler/yt-transcriber/internal/logger"
	"github.com/gxwechsler/yt-transcriber/internal/metrics"
	"github.com/gxwechsler/yt-transcriber/internal/ports"
	"github.com/gxwechsler/yt-transcriber/pkg/executor"
)

// App holds all application dependencies
type App struct {
	Config     *config.Config
	Downloader *ytdlp.Downloader
	Log        logger.Logger

	Session *application.SessionService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	// Ensure directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Load config
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)

	// Create adapters
	downloader := ytdlp.NewDownloader(executor.New(), cfg.Paths.YtDlp, config.TempDir())

	fileWriters := []ports.FileWriter{
		writers.Markdown{},
		writers.Docx{},
		writers.JSON{},
	}

	// Create services
	session := application.NewSessionService(cfg, downloader, fileWriters, metrics.NewSession(), log)

	return &App{
		Config:     cfg,
		Downloader: downloader,
		Log:        log,
		Session:    session,
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
