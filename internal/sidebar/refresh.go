package sidebar

import (
	"context"
	"log/slog"
	"time"

	"github.com/courtbot/courtbot/internal/nba"
	"github.com/courtbot/courtbot/internal/reddit"
)

// StatsProvider is the slice of the stats client the refresher needs.
type StatsProvider interface {
	CurrentSeasonYear(ctx context.Context) (int, error)
	ScheduleFor(ctx context.Context, urlName string, year int) (*nba.Schedule, error)
	Teams(ctx context.Context, year int) (map[string]nba.Team, error)
	Roster(ctx context.Context, urlName string, year int) (map[string]struct{}, error)
	Players(ctx context.Context, year int) ([]nba.Player, error)
	ConferenceStandings(ctx context.Context) (*nba.Standings, error)
}

// Refresher rebuilds the sidebar from live feeds and writes it back only
// when something actually changed.
type Refresher struct {
	builder *Builder
	stats   StatsProvider
	forum   reddit.Client
	log     *slog.Logger
}

// NewRefresher creates a Refresher.
func NewRefresher(builder *Builder, stats StatsProvider, forum reddit.Client, log *slog.Logger) *Refresher {
	return &Refresher{builder: builder, stats: stats, forum: forum, log: log}
}

// Refresh performs one sidebar update pass. With tank set, the standings
// section shows the race to the bottom instead of the conference table.
func (r *Refresher) Refresh(ctx context.Context, now time.Time, subreddit string, tank bool) error {
	year, err := r.stats.CurrentSeasonYear(ctx)
	if err != nil {
		return err
	}
	players, err := r.stats.Players(ctx, year)
	if err != nil {
		return err
	}
	rosterIDs, err := r.stats.Roster(ctx, r.builder.club.URLName, year)
	if err != nil {
		return err
	}
	teams, err := r.stats.Teams(ctx, year)
	if err != nil {
		return err
	}
	sched, err := r.stats.ScheduleFor(ctx, r.builder.club.URLName, year)
	if err != nil {
		return err
	}
	standings, err := r.stats.ConferenceStandings(ctx)
	if err != nil {
		return err
	}

	roster := r.builder.Roster(players, rosterIDs)
	schedule, err := r.builder.Schedule(now, teams, sched)
	if err != nil {
		return err
	}
	var standingsText string
	if tank {
		standingsText, err = r.builder.TankStandings(teams, standings)
	} else {
		standingsText, err = r.builder.Standings(teams, standings)
	}
	if err != nil {
		return err
	}

	r.log.Info("querying sidebar description", "subreddit", subreddit)
	description, err := r.forum.SidebarDescription(ctx, subreddit)
	if err != nil {
		return err
	}

	updated := ReplaceSection(description, schedule, "Schedule")
	updated = ReplaceSection(updated, standingsText, "Standings")
	updated = ReplaceSection(updated, roster, "Roster")

	if updated == description {
		r.log.Info("sidebar unchanged")
		return nil
	}
	r.log.Info("updating sidebar description")
	return r.forum.UpdateSidebarDescription(ctx, subreddit, updated)
}
