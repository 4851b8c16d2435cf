package engine

import "github.com/courtbot/courtbot/internal/nba"

// Candidates are the two schedule slots worth looking at this run: the game
// the cursor points to (post-game candidate) and, when the schedule has one,
// the game after it (pre-game candidate).
type Candidates struct {
	// PreGame is the next unplayed slot, or nil at the end of the season.
	PreGame *nba.Game

	// PostGame is the slot the cursor marks as last played. Never nil on
	// a successful resolve.
	PostGame *nba.Game
}

// Resolve locates the current schedule slots from the provider's cursor.
//
// postponed is a manual correction for provider-side anomalies where the
// cursor undercounts, e.g. a cancelled game still occupying an index. It is
// supplied by the operator, never auto-detected.
func Resolve(schedule *nba.Schedule, postponed int) (Candidates, error) {
	games := schedule.League.Standard
	idx := schedule.League.LastStandardGamePlayedIndex + postponed
	if idx < 0 || idx >= len(games) {
		return Candidates{}, &CursorError{Index: idx, Games: len(games), Postponed: postponed}
	}

	c := Candidates{PostGame: &games[idx]}
	if len(games) > idx+1 {
		c.PreGame = &games[idx+1]
	}
	return c, nil
}
