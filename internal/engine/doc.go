// Package engine decides what the bot should do right now: open or refresh
// a game thread, open or refresh a post-game thread, or nothing.
//
// The decision is a pure function of one schedule snapshot and an injected
// current time. The engine follows the provider's last-played cursor rather
// than scanning the full schedule, holds no state between runs, and performs
// no I/O, which is what makes it unit-testable with a fixed clock.
package engine
