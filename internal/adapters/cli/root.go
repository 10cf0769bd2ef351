package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gxwechsler/yt-transcriber/internal/adapters/cli/tui"
	"github.com/gxwechsler/yt-transcriber/internal/application"
	"github.com/gxwechsler/yt-transcriber/internal/config"
	"github.com/gxwechsler/yt-transcriber/internal/domain"
)

var (
	// Global flags
	outputDirFlag string
	noLinksFlag   bool
	quietFlag     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yt-transcriber [url ...]",
		Short: "Fetch and save YouTube transcripts",
		Long: `yt-transcriber fetches YouTube video metadata and transcripts via
yt-dlp and saves them as markdown, Word, and JSON files under a
reviewable Author - Topic (Year) naming scheme.

Provide video URLs as arguments, or run without arguments for an
interactive session. Up to ` + fmt.Sprint(config.MaxBatchSize) + ` videos are processed per batch.`,
		Args: cobra.MaximumNArgs(config.MaxBatchSize),
		RunE: runRoot,
	}

	rootCmd.PersistentFlags().StringVarP(&outputDirFlag, "output-dir", "o", "", "Output directory (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&noLinksFlag, "no-links", false, "Skip extracting links from descriptions")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(NewProcessCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewDepsCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	urls, err := CollectInputs(args, "")
	if err != nil {
		return err
	}

	if len(urls) == 0 {
		return runInteractiveMenu()
	}

	return runWorkflow(urls)
}

func runInteractiveMenu() error {
	options := []tui.MenuOption{
		{Label: "Transcribe videos", Value: "transcribe"},
		{Label: "Show config", Value: "config"},
		{Label: "Check dependencies", Value: "deps"},
		{Label: "Quit", Value: "quit"},
	}

	selected, err := tui.RunMenu("What would you like to do?", options)
	if err != nil {
		return err
	}

	switch selected {
	case "transcribe":
		urls := promptForURLs()
		if len(urls) == 0 {
			fmt.Println("No videos entered")
			return nil
		}
		return runWorkflow(urls)
	case "config":
		return runConfigShow(nil, nil)
	case "deps":
		return runDepsStatus(nil, nil)
	case "quit", "":
	}

	return nil
}

func promptForURLs() []string {
	fmt.Printf("Enter YouTube URLs, one per line (blank line to finish, max %d):\n", config.MaxBatchSize)

	reader := bufio.NewReader(os.Stdin)
	urls := PromptURLs(reader, config.MaxBatchSize, func(note string) {
		fmt.Println(note)
	})

	if len(urls) == config.MaxBatchSize {
		fmt.Printf("Batch limit of %d reached\n", config.MaxBatchSize)
	}
	return urls
}

// runWorkflow drives the interactive fetch, review, and process stages.
func runWorkflow(urls []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if !app.Downloader.IsAvailable() {
		return fmt.Errorf("yt-dlp not found; install it or set paths.yt_dlp in %s", config.ConfigPath())
	}

	ctx := context.Background()

	if !quietFlag {
		fmt.Printf("Fetching metadata for %d video(s)...\n", len(urls))
	}

	videos, failures := app.Session.FetchMetadata(ctx, urls)
	for _, f := range failures {
		fmt.Printf("✗ %s: %s\n", f.URL, f.Message)
	}
	if len(videos) == 0 {
		app.Session.Reset()
		return fmt.Errorf("no videos could be fetched")
	}

	for _, v := range videos {
		if !quietFlag {
			fmt.Println("✓ " + tui.FormatVideoLine(v, 40))
		}
	}

	action, err := tui.RunReview(videos, app.Config.FilenameMaxLength)
	if err != nil {
		return err
	}
	if action != tui.ActionProcess {
		app.Session.Reset()
		fmt.Println("Cancelled")
		return nil
	}

	selected := app.Session.State.SelectedVideos()
	progress := tui.NewProcessProgress(len(selected), quietFlag)

	results := app.Session.ProcessSelected(ctx, application.ProcessOptions{
		IncludeLinks: linksEnabled(app),
		OutputBase:   outputDirFlag,
		OnResult: func(r domain.ProcessResult) {
			progress.AddResult(r.Title, r.IsSuccess(), r.Message, len(r.Files))
		},
	})

	progress.Complete()
	printResultFiles(results)

	if summary := app.Session.Summary(); summary != "" && !quietFlag {
		fmt.Println(summary)
	}

	return nil
}

func linksEnabled(app *App) bool {
	if noLinksFlag {
		return false
	}
	return app.Config.IncludeLinksDefault
}

func printResultFiles(results []domain.ProcessResult) {
	for _, r := range results {
		for _, f := range r.Files {
			fmt.Println("  " + f)
		}
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
