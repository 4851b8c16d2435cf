package engine

import (
	"time"

	"github.com/courtbot/courtbot/internal/nba"
)

// Action is the mutually exclusive decision output of one classification.
type Action int

const (
	// ActionNone means there is nothing to post or refresh right now.
	ActionNone Action = iota

	// ActionGameThread means the next game is close enough to tip-off
	// that its game thread should exist and be current.
	ActionGameThread

	// ActionPostGameThread means the last played game finished recently
	// enough that its post-game thread should exist and be current.
	ActionPostGameThread
)

// String returns the action name for logs.
func (a Action) String() string {
	switch a {
	case ActionGameThread:
		return "game-thread"
	case ActionPostGameThread:
		return "post-game-thread"
	default:
		return "none"
	}
}

const (
	// PreGameLead is how long before tip-off a game thread opens.
	PreGameLead = time.Hour

	// FreshnessWindow bounds how long a finished game stays "current",
	// and doubles as the maximum age of a reusable forum post.
	FreshnessWindow = 6 * time.Hour
)

// Classify maps the schedule snapshot and the current time to an action and
// the game it applies to. First match wins; the returned game is nil only
// for ActionNone.
func Classify(schedule *nba.Schedule, postponed int, now time.Time) (Action, *nba.Game, error) {
	c, err := Resolve(schedule, postponed)
	if err != nil {
		return ActionNone, nil, err
	}

	// An hour before tip-off or later, with no score on the board yet.
	// The score check guards against a stale cursor leaving an already
	// played game in the "next" slot.
	if pre := c.PreGame; pre != nil {
		hasScore := pre.VTeam.Score != "" || pre.HTeam.Score != ""
		if !pre.StartTimeUTC.Add(-PreGameLead).After(now) && !hasScore {
			return ActionGameThread, pre, nil
		}
	}

	// The cursor's game is current for six hours after tip-off, inclusive.
	// Scored-ness here is concatenate-then-nonempty rather than the OR
	// above; both predicates are kept exactly as the original decided them.
	post := c.PostGame
	hasScore := len(post.VTeam.Score+post.HTeam.Score) > 0
	if !post.StartTimeUTC.Add(FreshnessWindow).Before(now) && hasScore {
		return ActionPostGameThread, post, nil
	}

	return ActionNone, nil, nil
}
