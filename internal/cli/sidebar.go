package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/courtbot/courtbot/internal/sidebar"
)

// SidebarOptions holds flags for the sidebar command.
type SidebarOptions struct {
	*RootOptions
	User string
	Tank bool
}

// NewSidebarCommand creates the sidebar command.
func NewSidebarCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SidebarOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sidebar <subreddit>",
		Short: "Refresh the subreddit sidebar",
		Long: `Rebuild the schedule, standings and roster sidebar sections from the
live feeds and write the description back if anything changed.

Example:
  courtbot sidebar nyknicks
  courtbot sidebar nyknicks --tank`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSidebar(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "override the bot account name")
	cmd.Flags().BoolVar(&opts.Tank, "tank", false, "show the race to the bottom instead of conference standings")

	return cmd
}

func runSidebar(cmd *cobra.Command, opts *SidebarOptions, subreddit string) error {
	log := newLogger(opts.RootOptions)

	deps, err := wire(log, opts.User)
	if err != nil {
		log.Error("sidebar refresh failed", "outcome", "failed", "error", err)
		return nil
	}

	builder := sidebar.NewBuilder(deps.tables, deps.tz, deps.club)
	refresher := sidebar.NewRefresher(builder, deps.stats, deps.forum, log)

	if err := refresher.Refresh(cmd.Context(), time.Now().UTC(), subreddit, opts.Tank); err != nil {
		log.Error("sidebar refresh failed", "outcome", "failed", "error", err)
		return nil
	}
	log.Info("sidebar refresh finished", "outcome", "completed", "subreddit", subreddit)
	return nil
}
