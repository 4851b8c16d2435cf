package nba

import "time"

// Schedule is a season's ordered game list plus the provider's cursor
// marking the last game it considers played.
type Schedule struct {
	League ScheduleLeague `json:"league"`
}

// ScheduleLeague wraps the standard-season portion of the schedule feed.
type ScheduleLeague struct {
	LastStandardGamePlayedIndex int    `json:"lastStandardGamePlayedIndex"`
	Standard                    []Game `json:"standard"`
}

// Game is one schedule entry. Score fields are strings exactly as the feed
// reports them; an empty string means the side has not scored yet.
type Game struct {
	GameID           string    `json:"gameId"`
	GameURLCode      string    `json:"gameUrlCode"`
	StartTimeUTC     time.Time `json:"startTimeUTC"`
	StartDateEastern string    `json:"startDateEastern"`
	IsHomeTeam       bool      `json:"isHomeTeam"`
	HTeam            GameTeam  `json:"hTeam"`
	VTeam            GameTeam  `json:"vTeam"`
}

// GameTeam is one side of a schedule entry.
type GameTeam struct {
	TeamID    string        `json:"teamId"`
	TriCode   string        `json:"triCode"`
	Score     string        `json:"score"`
	Linescore []PeriodScore `json:"linescore"`
}

// PeriodScore is the points one side scored in a single period.
type PeriodScore struct {
	Score string `json:"score"`
}

// Boxscore is the full statistics snapshot for one game. Stats is nil until
// the provider starts publishing in-game data.
type Boxscore struct {
	BasicGameData BasicGameData `json:"basicGameData"`
	Stats         *GameStats    `json:"stats"`
}

// BasicGameData is the header portion of a boxscore.
type BasicGameData struct {
	GameID           string       `json:"gameId"`
	StartTimeUTC     time.Time    `json:"startTimeUTC"`
	StartDateEastern string       `json:"startDateEastern"`
	Attendance       string       `json:"attendance"`
	GameDuration     GameDuration `json:"gameDuration"`
	Arena            Arena        `json:"arena"`
	Officials        Officials    `json:"officials"`
	Period           Period       `json:"period"`
	Watch            Watch        `json:"watch"`
	HTeam            BoxscoreTeam `json:"hTeam"`
	VTeam            BoxscoreTeam `json:"vTeam"`
}

// GameDuration is the elapsed wall time of a finished game.
type GameDuration struct {
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
}

// Arena describes where the game is played.
type Arena struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	StateAbbr string `json:"stateAbbr"`
	Country   string `json:"country"`
}

// Officials lists the game's referees.
type Officials struct {
	Formatted []Official `json:"formatted"`
}

// Official is one referee.
type Official struct {
	FirstNameLastName string `json:"firstNameLastName"`
}

// Period reports which period the game is currently in.
type Period struct {
	Current int `json:"current"`
}

// Watch wraps broadcast information.
type Watch struct {
	Broadcast Broadcast `json:"broadcast"`
}

// Broadcast carries the broadcaster lists keyed by audience: "national",
// "hTeam" and "vTeam".
type Broadcast struct {
	Broadcasters map[string][]Broadcaster `json:"broadcasters"`
}

// Broadcaster is a single TV or radio broadcaster.
type Broadcaster struct {
	LongName string `json:"longName"`
}

// BoxscoreTeam is one side of a boxscore header.
type BoxscoreTeam struct {
	TeamID    string        `json:"teamId"`
	TriCode   string        `json:"triCode"`
	Win       string        `json:"win"`
	Loss      string        `json:"loss"`
	Score     string        `json:"score"`
	Linescore []PeriodScore `json:"linescore"`
}

// GameStats is the in-game statistics portion of a boxscore.
type GameStats struct {
	ActivePlayers []PlayerStats `json:"activePlayers"`
	HTeam         TeamStats     `json:"hTeam"`
	VTeam         TeamStats     `json:"vTeam"`
}

// TeamStats aggregates one side's statistics.
type TeamStats struct {
	BiggestLead        string      `json:"biggestLead"`
	LongestRun         string      `json:"longestRun"`
	PointsInPaint      string      `json:"pointsInPaint"`
	PointsOffTurnovers string      `json:"pointsOffTurnovers"`
	FastBreakPoints    string      `json:"fastBreakPoints"`
	Totals             TeamTotals  `json:"totals"`
	Leaders            TeamLeaders `json:"leaders"`
}

// TeamTotals are a team's aggregate box numbers, as feed strings.
type TeamTotals struct {
	Points    string `json:"points"`
	FGM       string `json:"fgm"`
	FGA       string `json:"fga"`
	FGP       string `json:"fgp"`
	TPM       string `json:"tpm"`
	TPA       string `json:"tpa"`
	TPP       string `json:"tpp"`
	FTM       string `json:"ftm"`
	FTA       string `json:"fta"`
	FTP       string `json:"ftp"`
	OffReb    string `json:"offReb"`
	TotReb    string `json:"totReb"`
	Assists   string `json:"assists"`
	PFouls    string `json:"pFouls"`
	Steals    string `json:"steals"`
	Turnovers string `json:"turnovers"`
	Blocks    string `json:"blocks"`
}

// TeamLeaders names the team leader per category.
type TeamLeaders struct {
	Points   StatLeader `json:"points"`
	Rebounds StatLeader `json:"rebounds"`
	Assists  StatLeader `json:"assists"`
}

// StatLeader is the leading value for one category and who holds it.
type StatLeader struct {
	Value   string       `json:"value"`
	Players []LeaderName `json:"players"`
}

// LeaderName identifies a stat leader.
type LeaderName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PlayerStats is one active player's box line. Only starters have Pos set.
type PlayerStats struct {
	PersonID  string `json:"personId"`
	TeamID    string `json:"teamId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Pos       string `json:"pos"`
	Min       string `json:"min"`
	Points    string `json:"points"`
	FGM       string `json:"fgm"`
	FGA       string `json:"fga"`
	TPM       string `json:"tpm"`
	TPA       string `json:"tpa"`
	FTM       string `json:"ftm"`
	FTA       string `json:"fta"`
	OffReb    string `json:"offReb"`
	DefReb    string `json:"defReb"`
	TotReb    string `json:"totReb"`
	Assists   string `json:"assists"`
	Steals    string `json:"steals"`
	Blocks    string `json:"blocks"`
	Turnovers string `json:"turnovers"`
	PFouls    string `json:"pFouls"`
	PlusMinus string `json:"plusMinus"`
}

// Team is one entry of the league team directory.
type Team struct {
	TeamID         string `json:"teamId"`
	FullName       string `json:"fullName"`
	Nickname       string `json:"nickname"`
	URLName        string `json:"urlName"`
	IsNBAFranchise bool   `json:"isNBAFranchise"`
}

// Player is one entry of the league player directory.
type Player struct {
	PersonID  string `json:"personId"`
	TeamID    string `json:"teamId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Jersey    string `json:"jersey"`
	Pos       string `json:"pos"`
}

// Standings holds both conference tables.
type Standings struct {
	Conference Conference `json:"conference"`
}

// Conference splits standings rows by conference.
type Conference struct {
	East []StandingsRow `json:"east"`
	West []StandingsRow `json:"west"`
}

// StandingsRow is one team's standings line.
type StandingsRow struct {
	TeamID      string `json:"teamId"`
	Win         string `json:"win"`
	Loss        string `json:"loss"`
	LossPct     string `json:"lossPct"`
	GamesBehind string `json:"gamesBehind"`
}
