package engine

import (
	"errors"
	"fmt"
)

// CursorError reports that the schedule cursor, after the manual postponed
// correction, points outside the season's game list. The upstream data is
// unusable this run and the whole run aborts.
type CursorError struct {
	// Index is the adjusted cursor value.
	Index int

	// Games is the length of the schedule's game list.
	Games int

	// Postponed is the manual correction that was applied.
	Postponed int
}

// ErrCodeIndexOutOfRange identifies cursor errors in logs.
const ErrCodeIndexOutOfRange = "INDEX_OUT_OF_RANGE"

// Error implements the error interface.
func (e *CursorError) Error() string {
	return fmt.Sprintf("%s: schedule cursor %d outside [0, %d) (postponed correction %d)",
		ErrCodeIndexOutOfRange, e.Index, e.Games, e.Postponed)
}

// IsCursorError reports whether err is a schedule cursor failure.
// Uses errors.As to handle wrapped errors.
func IsCursorError(err error) bool {
	var ce *CursorError
	return errors.As(err, &ce)
}
