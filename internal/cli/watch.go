package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtbot/courtbot/internal/bot"
	"github.com/courtbot/courtbot/internal/sidebar"
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	User      string
	Postponed int
	Tank      bool
	Interval  time.Duration
}

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch <subreddit>",
		Short: "Run the bot on a fixed cadence",
		Long: `Run a sidebar refresh and a game thread pass every interval until
interrupted. Each pass is independent; a failed pass is logged and the
next one starts from scratch.

Example:
  courtbot watch nyknicks
  courtbot watch nyknicks --interval 5m --tank`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "override the bot account name")
	cmd.Flags().IntVar(&opts.Postponed, "postponed", 0, "postponed games not reflected in the schedule cursor")
	cmd.Flags().BoolVar(&opts.Tank, "tank", false, "show the race to the bottom instead of conference standings")
	cmd.Flags().DurationVar(&opts.Interval, "interval", time.Minute, "time between passes")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions, subreddit string) error {
	log := newLogger(opts.RootOptions)

	deps, err := wire(log, opts.User)
	if err != nil {
		log.Error("watch failed to start", "error", err)
		return nil
	}

	b := bot.New(log, deps.stats, deps.forum, deps.newRenderer(), deps.club,
		bot.WithPostponedGames(opts.Postponed))
	refresher := sidebar.NewRefresher(sidebar.NewBuilder(deps.tables, deps.tz, deps.club), deps.stats, deps.forum, log)

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info("received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("watch started", "subreddit", subreddit, "interval", opts.Interval.String())

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	pass(ctx, log, b, refresher, subreddit, opts.Tank)
	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil
		case <-ticker.C:
			pass(ctx, log, b, refresher, subreddit, opts.Tank)
		}
	}
}

// pass runs one sidebar refresh and one game thread pass. Failures are
// logged and dropped; the next tick gets a clean attempt.
func pass(ctx context.Context, log *slog.Logger, b *bot.Bot, refresher *sidebar.Refresher, subreddit string, tank bool) {
	now := time.Now().UTC()

	if err := refresher.Refresh(ctx, now, subreddit, tank); err != nil {
		log.Error("sidebar refresh failed", "outcome", "failed", "error", err)
	}

	report, err := b.Run(ctx, now, subreddit)
	if err != nil {
		log.Error("run failed", "run", report.RunToken, "outcome", "failed", "error", err)
		return
	}
	log.Info("run finished",
		"run", report.RunToken,
		"outcome", string(report.Outcome),
		"action", report.Action.String(),
	)
}
