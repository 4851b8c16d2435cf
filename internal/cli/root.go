// Package cli builds the courtbot command tree.
//
// Commands are hosts around the run-once packages: they resolve settings,
// wire the clients, invoke one pass and log the outcome. Pipeline failures
// are logged, never returned, so a scheduler always sees exit 0.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the courtbot CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "courtbot",
		Short: "courtbot - subreddit game thread bot",
		Long: `A bot that keeps a team subreddit current: it resolves the schedule
cursor, decides whether a game thread or post game thread is due, renders
the thread body from the live boxscore and reconciles it against the
subreddit's recent posts. A companion command refreshes the sidebar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewGameThreadCommand(opts))
	cmd.AddCommand(NewSidebarCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// newLogger configures the process logger from the verbose flag and
// installs it as the slog default.
func newLogger(opts *RootOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
