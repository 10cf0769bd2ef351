package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gxwechsler/yt-transcriber/internal/adapters/cli/tui"
	"github.com/gxwechsler/yt-transcriber/internal/application"
	"github.com/gxwechsler/yt-transcriber/internal/domain"
)

var (
	fileFlag   string
	authorFlag string
	topicFlag  string
	yearFlag   string
)

// NewProcessCmd creates the process subcommand
func NewProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [url ...]",
		Short: "Process videos without the review step",
		Long: `Process fetches, names, and saves videos in one shot, accepting the
proposed naming as-is. URLs come from arguments, a file, or both.

The --author, --topic, and --year overrides apply only when exactly one
video is given.`,
		RunE: runProcess,
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "File with URLs, one per line")
	cmd.Flags().StringVar(&authorFlag, "author", "", "Override the proposed author")
	cmd.Flags().StringVar(&topicFlag, "topic", "", "Override the proposed topic")
	cmd.Flags().StringVar(&yearFlag, "year", "", "Override the proposed year")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	urls, err := CollectInputs(args, fileFlag)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no valid URLs given")
	}

	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if !app.Downloader.IsAvailable() {
		return fmt.Errorf("yt-dlp not found")
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
		return fmt.Errorf("no videos could be fetched")
	}

	applyNamingOverrides(videos)

	progress := tui.NewProcessProgress(len(videos), quietFlag)

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

	failed := 0
	for _, f := range failures {
		if f.Status == domain.StatusError {
			failed++
		}
	}
	for _, r := range results {
		if !r.IsSuccess() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d video(s) failed", failed)
	}

	return nil
}

// applyNamingOverrides applies the author/topic/year flags. Overrides are
// only meaningful for a single video; with more they are ignored with a
// warning so a batch never gets one video's naming.
func applyNamingOverrides(videos []*domain.VideoMeta) {
	if authorFlag == "" && topicFlag == "" && yearFlag == "" {
		return
	}

	if len(videos) > 1 {
		fmt.Println("warning: naming overrides ignored for batches of more than one video")
		return
	}

	if authorFlag != "" {
		videos[0].ProposedAuthor = authorFlag
	}
	if topicFlag != "" {
		videos[0].ProposedTopic = topicFlag
	}
	if yearFlag != "" {
		videos[0].ProposedYear = yearFlag
	}
}
