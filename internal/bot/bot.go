// Package bot wires one game-thread run end to end: read the schedule,
// classify the current phase, render the thread and reconcile it against the
// forum.
//
// A run is stateless and linear. Everything is fetched fresh, the decision
// is made once, and all in-memory state is discarded when Run returns; the
// host (cron, the watch command, anything) decides the cadence.
package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/courtbot/courtbot/internal/config"
	"github.com/courtbot/courtbot/internal/engine"
	"github.com/courtbot/courtbot/internal/nba"
	"github.com/courtbot/courtbot/internal/reconcile"
	"github.com/courtbot/courtbot/internal/reddit"
	"github.com/courtbot/courtbot/internal/render"
)

// StatsProvider is the slice of the stats client one run needs.
type StatsProvider interface {
	CurrentSeasonYear(ctx context.Context) (int, error)
	ScheduleFor(ctx context.Context, urlName string, year int) (*nba.Schedule, error)
	BoxscoreFor(ctx context.Context, startDateEastern, gameID string) (*nba.Boxscore, error)
	Teams(ctx context.Context, year int) (map[string]nba.Team, error)
	Roster(ctx context.Context, urlName string, year int) (map[string]struct{}, error)
	Players(ctx context.Context, year int) ([]nba.Player, error)
}

// Outcome summarizes a run for the host. Failures are reported here rather
// than through the exit code so a scheduler never sees a crashed job.
type Outcome string

const (
	// OutcomeCompleted means a thread was created, updated or confirmed.
	OutcomeCompleted Outcome = "completed"

	// OutcomeNothingToDo means no game phase is current right now.
	OutcomeNothingToDo Outcome = "nothing-to-do"
)

// Report is the result of one run.
type Report struct {
	RunToken       string
	Outcome        Outcome
	Action         engine.Action
	GameID         string
	ThreadTitle    string
	Reconciliation reconcile.Outcome
}

// Bot runs the game-thread pipeline.
type Bot struct {
	log       *slog.Logger
	stats     StatsProvider
	forum     reddit.Client
	renderer  *render.Renderer
	club      config.Club
	tokens    RunTokenGenerator
	postponed int
}

// Option configures a Bot.
type Option func(*Bot)

// WithPostponedGames applies the manual schedule-cursor correction.
func WithPostponedGames(n int) Option {
	return func(b *Bot) {
		b.postponed = n
	}
}

// WithTokenGenerator overrides the run-token generator (tests).
func WithTokenGenerator(g RunTokenGenerator) Option {
	return func(b *Bot) {
		b.tokens = g
	}
}

// New creates a Bot.
func New(
	log *slog.Logger,
	stats StatsProvider,
	forum reddit.Client,
	renderer *render.Renderer,
	club config.Club,
	opts ...Option,
) *Bot {
	b := &Bot{
		log:      log,
		stats:    stats,
		forum:    forum,
		renderer: renderer,
		club:     club,
		tokens:   UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run performs one decision/reconciliation pass at the given instant.
func (b *Bot) Run(ctx context.Context, now time.Time, subreddit string) (*Report, error) {
	report := &Report{RunToken: b.tokens.Generate()}
	log := b.log.With("run", report.RunToken)

	year, err := b.stats.CurrentSeasonYear(ctx)
	if err != nil {
		return report, err
	}
	sched, err := b.stats.ScheduleFor(ctx, b.club.URLName, year)
	if err != nil {
		return report, err
	}

	action, game, err := engine.Classify(sched, b.postponed, now)
	if err != nil {
		return report, err
	}
	report.Action = action
	if action == engine.ActionNone {
		log.Info("nothing to do")
		report.Outcome = OutcomeNothingToDo
		return report, nil
	}
	report.GameID = game.GameID
	log.Info("classified current phase", "action", action.String(), "game", game.GameID)

	box, err := b.stats.BoxscoreFor(ctx, game.StartDateEastern, game.GameID)
	if err != nil {
		return report, err
	}
	teams, err := b.stats.Teams(ctx, year)
	if err != nil {
		return report, err
	}

	in := render.Input{
		Boxscore:   box,
		Teams:      teams,
		SeasonYear: year,
		Now:        now,
	}

	var thread render.Thread
	var prefix string
	switch action {
	case engine.ActionGameThread:
		// Game threads list inactives, which takes both rosters and the
		// league player directory to name them.
		in.Rosters, err = b.gameRosters(ctx, box, teams, year)
		if err != nil {
			return report, err
		}
		in.Players, err = b.stats.Players(ctx, year)
		if err != nil {
			return report, err
		}
		prefix = render.GameThreadPrefix
		thread, err = b.renderer.GameThread(in)
	default:
		prefix = render.PostGamePrefix
		thread, err = b.renderer.PostGame(in)
	}
	if err != nil {
		return report, err
	}
	report.ThreadTitle = thread.Title

	identity, err := b.forum.Identity(ctx)
	if err != nil {
		return report, err
	}

	rec := reconcile.New(b.forum, log)
	result, err := rec.Reconcile(ctx, subreddit, prefix, thread.Title, thread.Body, identity, now)
	if err != nil {
		return report, err
	}
	report.Reconciliation = result.Outcome
	report.Outcome = OutcomeCompleted
	log.Info("run complete", "action", action.String(), "reconciliation", string(result.Outcome))
	return report, nil
}

// gameRosters fetches the roster id sets for both teams in the game.
func (b *Bot) gameRosters(
	ctx context.Context,
	box *nba.Boxscore,
	teams map[string]nba.Team,
	year int,
) (map[string]map[string]struct{}, error) {
	rosters := make(map[string]map[string]struct{}, 2)
	for _, id := range []string{box.BasicGameData.HTeam.TeamID, box.BasicGameData.VTeam.TeamID} {
		team, ok := teams[id]
		if !ok {
			return nil, &render.MissingDataError{Field: "team directory entry " + id}
		}
		roster, err := b.stats.Roster(ctx, team.URLName, year)
		if err != nil {
			return nil, err
		}
		rosters[id] = roster
	}
	return rosters, nil
}
