// Package config holds everything the bot reads once at startup and never
// mutates: runtime settings (reddit credentials, user agent, club identity)
// resolved through viper, and the static league lookup tables (market
// timezones, team-to-subreddit map, provider team codes) embedded into the
// binary.
//
// All of it is passed explicitly into the components that need it. Nothing
// in this package is ambient global state.
package config
