package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewDepsCmd creates the deps subcommand
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Manage dependencies (yt-dlp)",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show dependency status",
		RunE:  runDepsStatus,
	}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update yt-dlp to latest version",
		RunE:  runDepsUpdate,
	}

	cmd.AddCommand(statusCmd, updateCmd)
	return cmd
}

func runDepsStatus(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Dependency Status:")
	fmt.Println()

	if app.Downloader.IsAvailable() {
		fmt.Printf("  yt-dlp:  installed (%s)\n", app.Downloader.BinaryPath())
	} else {
		fmt.Println("  yt-dlp:  not found on PATH; install it from https://github.com/yt-dlp/yt-dlp")
	}
	fmt.Println()

	return nil
}

func runDepsUpdate(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if !app.Downloader.IsAvailable() {
		return fmt.Errorf("yt-dlp is not installed")
	}

	fmt.Println("Updating yt-dlp...")

	ctx := context.Background()
	if err := app.Downloader.Update(ctx); err != nil {
		return err
	}

	fmt.Println("yt-dlp updated")
	return nil
}
