package cli

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/courtbot/courtbot/internal/config"
	"github.com/courtbot/courtbot/internal/nba"
	"github.com/courtbot/courtbot/internal/reddit"
	"github.com/courtbot/courtbot/internal/render"
)

// components holds everything a command needs wired for one process.
type components struct {
	settings *config.Settings
	tables   *config.Tables
	tz       *config.Timezones
	club     config.Club
	stats    *nba.Client
	forum    reddit.Client
	log      *slog.Logger
}

// wire resolves settings and constructs the shared clients. userOverride,
// when non-empty, replaces the configured bot account name.
func wire(log *slog.Logger, userOverride string) (*components, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if userOverride != "" {
		settings.RedditUsername = userOverride
	}
	if settings.RedditClientID == "" || settings.RedditClientSecret == "" || settings.RedditPassword == "" {
		return nil, fmt.Errorf("missing reddit credentials: set COURTBOT_REDDIT_CLIENT_ID, COURTBOT_REDDIT_CLIENT_SECRET and COURTBOT_REDDIT_PASSWORD")
	}

	tables, err := config.LoadTables()
	if err != nil {
		return nil, err
	}
	tz, err := config.LoadTimezones()
	if err != nil {
		return nil, err
	}

	var statsOpts []nba.ClientOption
	if settings.StatsBaseURL != "" {
		statsOpts = append(statsOpts, nba.WithBaseURL(settings.StatsBaseURL))
	}
	stats := nba.NewClient(log, settings.UserAgent, statsOpts...)

	forum := reddit.NewHTTPClient(log, reddit.Credentials{
		ClientID:     settings.RedditClientID,
		ClientSecret: settings.RedditClientSecret,
		Username:     settings.RedditUsername,
		Password:     settings.RedditPassword,
		UserAgent:    settings.UserAgent,
	})

	return &components{
		settings: settings,
		tables:   tables,
		tz:       tz,
		club:     settings.Club(),
		stats:    stats,
		forum:    forum,
		log:      log,
	}, nil
}

// newRenderer builds a renderer seeded from the wall clock, so repeated
// runs do not always pick the same defeat verb.
func (c *components) newRenderer() *render.Renderer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return render.New(c.tables, c.tz, c.club, rng)
}
