// Package nba is a read-only client for the league statistics feeds: season
// schedule, game boxscore, team directory, rosters, the league player list
// and conference standings.
//
// Every value returned here is a fresh snapshot decoded from one HTTP
// response. Nothing is cached or mutated; callers hold the data for a single
// run and throw it away.
package nba
