package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/courtbot/courtbot/internal/bot"
)

// GameThreadOptions holds flags for the gamethread command.
type GameThreadOptions struct {
	*RootOptions
	User      string
	Postponed int
}

// NewGameThreadCommand creates the gamethread command.
func NewGameThreadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GameThreadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gamethread <subreddit>",
		Short: "Run one game thread decision pass",
		Long: `Run one decision/reconciliation pass against a subreddit.

The pass reads the season schedule, classifies the current game phase,
renders the matching thread and reconciles it against the subreddit's
recent posts. When no phase is current the pass is a no-op.

Example:
  courtbot gamethread nyknicks
  courtbot gamethread nyknicks --postponed 2 --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGameThread(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "override the bot account name")
	cmd.Flags().IntVar(&opts.Postponed, "postponed", 0, "postponed games not reflected in the schedule cursor")

	return cmd
}

func runGameThread(cmd *cobra.Command, opts *GameThreadOptions, subreddit string) error {
	log := newLogger(opts.RootOptions)

	deps, err := wire(log, opts.User)
	if err != nil {
		log.Error("run failed", "outcome", "failed", "error", err)
		return nil
	}

	b := bot.New(log, deps.stats, deps.forum, deps.newRenderer(), deps.club,
		bot.WithPostponedGames(opts.Postponed))

	report, err := b.Run(cmd.Context(), time.Now().UTC(), subreddit)
	if err != nil {
		// Exit 0 regardless; the scheduler retries on its own cadence and
		// the next pass starts from scratch anyway.
		log.Error("run failed", "run", report.RunToken, "outcome", "failed", "error", err)
		return nil
	}
	log.Info("run finished",
		"run", report.RunToken,
		"outcome", string(report.Outcome),
		"action", report.Action.String(),
	)
	return nil
}
