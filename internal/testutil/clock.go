// Package testutil provides deterministic stand-ins for the bot's external
// inputs: a fixed clock, a seeded random source and a fake forum.
package testutil

import (
	"math/rand"
	"time"
)

// FixedNow is the reference instant used across tests so time-window logic
// is exercised with known distances.
var FixedNow = time.Date(2021, 1, 15, 23, 0, 0, 0, time.UTC)

// FixedClock returns the same instant on every call.
//
// The pipeline takes "now" as an argument rather than reading the wall
// clock, so tests pass a FixedClock value straight through.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// SeededRand returns a deterministic random source for renderer tests.
// The same seed always yields the same defeat-verb sequence.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
