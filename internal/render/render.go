package render

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/courtbot/courtbot/internal/config"
	"github.com/courtbot/courtbot/internal/nba"
)

// Thread is a fully rendered forum post.
type Thread struct {
	Title string
	Body  string
}

// Input is everything a render call may read. The pipeline fetches all of
// it up front so rendering itself does no I/O.
type Input struct {
	// Boxscore is the game's statistics snapshot.
	Boxscore *nba.Boxscore

	// Teams is the league team directory keyed by team id.
	Teams map[string]nba.Team

	// Rosters maps a team id to its set of rostered player ids. Only the
	// two teams in the game are needed, and only for game threads.
	Rosters map[string]map[string]struct{}

	// Players is the league player directory, used to name inactives.
	Players []nba.Player

	// SeasonYear is the season the schedule was fetched for.
	SeasonYear int

	// Now is the injected current time, used for the game-thread date.
	Now time.Time
}

// MissingDataError reports a statistics snapshot field the renderer needs
// but the feed did not supply. Rendering never degrades to partial output.
type MissingDataError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingDataError) Error() string {
	return fmt.Sprintf("MALFORMED_DATA: statistics snapshot missing %s", e.Field)
}

// IsMissingDataError reports whether err is a snapshot shape failure.
func IsMissingDataError(err error) bool {
	var me *MissingDataError
	return errors.As(err, &me)
}

// Renderer builds thread text for one club's subreddit.
type Renderer struct {
	tables *config.Tables
	tz     *config.Timezones
	club   config.Club
	rng    *rand.Rand
}

// New creates a Renderer. The random source feeds only the post-game title's
// defeat verb; pass a seeded source in tests.
func New(tables *config.Tables, tz *config.Timezones, club config.Club, rng *rand.Rand) *Renderer {
	return &Renderer{tables: tables, tz: tz, club: club, rng: rng}
}

// team looks up a team id in the directory.
func (r *Renderer) team(teams map[string]nba.Team, id string) (nba.Team, error) {
	t, ok := teams[id]
	if !ok {
		return nba.Team{}, &MissingDataError{Field: fmt.Sprintf("team directory entry %q", id)}
	}
	return t, nil
}

// subredditFor resolves the subreddit covering a team.
func (r *Renderer) subredditFor(team nba.Team) (string, error) {
	sub, err := r.tables.Subreddit(team.Nickname)
	if err != nil {
		return "", &MissingDataError{Field: fmt.Sprintf("subreddit for %q", team.Nickname)}
	}
	return sub, nil
}

// location formats "City, ST" with the country appended outside the USA.
func location(a nba.Arena) string {
	loc := fmt.Sprintf("%s, %s", a.City, a.StateAbbr)
	if a.Country != "USA" {
		loc = fmt.Sprintf("%s %s", loc, a.Country)
	}
	return loc
}

// plusMinus prefixes positive whole numbers with "+". Anything that is not
// a plain digit string (e.g. "-7", "") passes through unchanged.
func plusMinus(stat string) string {
	if stat == "" {
		return stat
	}
	for _, ch := range stat {
		if ch < '0' || ch > '9' {
			return stat
		}
	}
	if n, err := strconv.Atoi(stat); err == nil && n > 0 {
		return "+" + stat
	}
	return stat
}
