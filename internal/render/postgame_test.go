package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbot/courtbot/internal/nba"
	"github.com/courtbot/courtbot/internal/testutil"
)

// postGameBoxscore is a finished home win, 110-102 over the Celtics in
// regulation.
func postGameBoxscore() *nba.Boxscore {
	return &nba.Boxscore{
		BasicGameData: nba.BasicGameData{
			GameID:           "0022000123",
			StartTimeUTC:     time.Date(2021, 1, 16, 0, 30, 0, 0, time.UTC),
			StartDateEastern: "20210115",
			Attendance:       "0",
			GameDuration:     nba.GameDuration{Hours: "2", Minutes: "14"},
			Arena: nba.Arena{
				Name: "Madison Square Garden", City: "New York",
				StateAbbr: "NY", Country: "USA",
			},
			Officials: nba.Officials{Formatted: []nba.Official{
				{FirstNameLastName: "Scott Foster"},
				{FirstNameLastName: "Tony Brothers"},
			}},
			Period: nba.Period{Current: 4},
			HTeam: nba.BoxscoreTeam{
				TeamID: knicksID, TriCode: "NYK", Win: "6", Loss: "3", Score: "110",
				Linescore: []nba.PeriodScore{{Score: "28"}, {Score: "25"}, {Score: "30"}, {Score: "27"}},
			},
			VTeam: nba.BoxscoreTeam{
				TeamID: celticsID, TriCode: "BOS", Win: "6", Loss: "4", Score: "102",
				Linescore: []nba.PeriodScore{{Score: "30"}, {Score: "24"}, {Score: "20"}, {Score: "28"}},
			},
		},
		Stats: &nba.GameStats{
			ActivePlayers: []nba.PlayerStats{
				{
					PersonID: tatumID, TeamID: celticsID, FirstName: "Jayson", LastName: "Tatum", Pos: "F",
					Min: "38", FGM: "10", FGA: "22", TPM: "4", TPA: "10", FTM: "4", FTA: "4",
					OffReb: "1", DefReb: "10", TotReb: "11", Assists: "3", Steals: "1", Blocks: "1",
					Turnovers: "2", PFouls: "2", PlusMinus: "-6", Points: "28",
				},
				{
					PersonID: smartID, TeamID: celticsID, FirstName: "Marcus", LastName: "Smart", Pos: "G",
					Min: "34", FGM: "6", FGA: "14", TPM: "3", TPA: "8", FTM: "1", FTA: "2",
					OffReb: "0", DefReb: "4", TotReb: "4", Assists: "6", Steals: "2", Blocks: "0",
					Turnovers: "3", PFouls: "4", PlusMinus: "-8", Points: "16",
				},
				{
					PersonID: pritchardID, TeamID: celticsID, FirstName: "Payton", LastName: "Pritchard",
					Min: "20", FGM: "4", FGA: "9", TPM: "2", TPA: "5", FTM: "0", FTA: "0",
					OffReb: "1", DefReb: "2", TotReb: "3", Assists: "2", Steals: "0", Blocks: "0",
					Turnovers: "1", PFouls: "1", PlusMinus: "2", Points: "10",
				},
				{
					PersonID: randleID, TeamID: knicksID, FirstName: "Julius", LastName: "Randle", Pos: "F",
					Min: "40", FGM: "12", FGA: "24", TPM: "2", TPA: "6", FTM: "6", FTA: "7",
					OffReb: "3", DefReb: "11", TotReb: "14", Assists: "5", Steals: "1", Blocks: "0",
					Turnovers: "4", PFouls: "3", PlusMinus: "10", Points: "32",
				},
				{
					PersonID: barrettID, TeamID: knicksID, FirstName: "RJ", LastName: "Barrett", Pos: "G",
					Min: "36", FGM: "8", FGA: "17", TPM: "1", TPA: "4", FTM: "5", FTA: "6",
					OffReb: "2", DefReb: "5", TotReb: "7", Assists: "7", Steals: "2", Blocks: "1",
					Turnovers: "2", PFouls: "2", PlusMinus: "8", Points: "22",
				},
				{
					PersonID: quickleyID, TeamID: knicksID, FirstName: "Immanuel", LastName: "Quickley",
					Min: "24", FGM: "5", FGA: "11", TPM: "3", TPA: "7", FTM: "4", FTA: "4",
					OffReb: "0", DefReb: "2", TotReb: "2", Assists: "4", Steals: "1", Blocks: "0",
					Turnovers: "1", PFouls: "2", PlusMinus: "6", Points: "17",
				},
			},
			VTeam: nba.TeamStats{
				BiggestLead: "9", LongestRun: "8", PointsInPaint: "44",
				PointsOffTurnovers: "13", FastBreakPoints: "10",
				Totals: nba.TeamTotals{
					Points: "102", FGM: "38", FGA: "85", FGP: "44.7",
					TPM: "12", TPA: "38", TPP: "31.6", FTM: "14", FTA: "18", FTP: "77.8",
					OffReb: "9", TotReb: "42", Assists: "22", PFouls: "19",
					Steals: "6", Turnovers: "15", Blocks: "4",
				},
				Leaders: nba.TeamLeaders{
					Points:   nba.StatLeader{Value: "28", Players: []nba.LeaderName{{FirstName: "Jayson", LastName: "Tatum"}}},
					Rebounds: nba.StatLeader{Value: "11", Players: []nba.LeaderName{{FirstName: "Jayson", LastName: "Tatum"}}},
					Assists:  nba.StatLeader{Value: "6", Players: []nba.LeaderName{{FirstName: "Marcus", LastName: "Smart"}}},
				},
			},
			HTeam: nba.TeamStats{
				BiggestLead: "12", LongestRun: "11", PointsInPaint: "52",
				PointsOffTurnovers: "18", FastBreakPoints: "14",
				Totals: nba.TeamTotals{
					Points: "110", FGM: "41", FGA: "88", FGP: "46.6",
					TPM: "10", TPA: "29", TPP: "34.5", FTM: "18", FTA: "22", FTP: "81.8",
					OffReb: "11", TotReb: "45", Assists: "25", PFouls: "17",
					Steals: "8", Turnovers: "12", Blocks: "6",
				},
				Leaders: nba.TeamLeaders{
					Points:   nba.StatLeader{Value: "32", Players: []nba.LeaderName{{FirstName: "Julius", LastName: "Randle"}}},
					Rebounds: nba.StatLeader{Value: "14", Players: []nba.LeaderName{{FirstName: "Julius", LastName: "Randle"}}},
					Assists:  nba.StatLeader{Value: "7", Players: []nba.LeaderName{{FirstName: "RJ", LastName: "Barrett"}}},
				},
			},
		},
	}
}

func postGameInput() Input {
	return Input{
		Boxscore:   postGameBoxscore(),
		Teams:      testTeams(),
		SeasonYear: 2020,
		Now:        testutil.FixedNow,
	}
}

func TestPostGame_Golden(t *testing.T) {
	r := newTestRenderer(t)

	thread, err := r.PostGame(postGameInput())
	require.NoError(t, err)

	// The margin is 8, an ordinary win, so the verb is drawn from the
	// plain winning set.
	var titles []string
	for _, verb := range []string{"defeat", "beat", "triumph over"} {
		titles = append(titles, fmt.Sprintf(
			"[Post Game Thread] The New York Knicks (6-3) %s the Boston Celtics (6-4), 110-102", verb))
	}
	assert.Contains(t, titles, thread.Title)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "post_game_body", []byte(thread.Body))
}

func TestPostGame_LossTitle(t *testing.T) {
	r := newTestRenderer(t)
	in := postGameInput()
	bgd := &in.Boxscore.BasicGameData
	bgd.HTeam.Score, bgd.VTeam.Score = "102", "110"

	title, err := r.postGameTitle(in)
	require.NoError(t, err)

	var titles []string
	for _, verb := range []string{"defeat", "beat"} {
		titles = append(titles, fmt.Sprintf(
			"[Post Game Thread] The Boston Celtics (6-4) %s the New York Knicks (6-3), 110-102", verb))
	}
	assert.Contains(t, titles, title)
}

func TestPostGame_OvertimeTitle(t *testing.T) {
	r := newTestRenderer(t)
	in := postGameInput()
	bgd := &in.Boxscore.BasicGameData
	bgd.HTeam.Linescore = append(bgd.HTeam.Linescore, nba.PeriodScore{Score: "12"})
	bgd.VTeam.Linescore = append(bgd.VTeam.Linescore, nba.PeriodScore{Score: "4"})

	title, err := r.postGameTitle(in)
	require.NoError(t, err)
	assert.Contains(t, title, " in OT, 110-102")

	bgd.HTeam.Linescore = append(bgd.HTeam.Linescore, nba.PeriodScore{Score: "6"})
	bgd.VTeam.Linescore = append(bgd.VTeam.Linescore, nba.PeriodScore{Score: "2"})
	title, err = r.postGameTitle(in)
	require.NoError(t, err)
	assert.Contains(t, title, " in 2OTs, 110-102")
}

func TestPostGame_MissingStats(t *testing.T) {
	r := newTestRenderer(t)
	in := postGameInput()
	in.Boxscore.Stats = nil

	_, err := r.PostGame(in)
	require.Error(t, err)
	assert.True(t, IsMissingDataError(err))
}

func TestPostGame_UnscoredSnapshot(t *testing.T) {
	r := newTestRenderer(t)
	in := postGameInput()
	in.Boxscore.BasicGameData.HTeam.Score = ""

	_, err := r.PostGame(in)
	require.Error(t, err)
	assert.True(t, IsMissingDataError(err))
	assert.Contains(t, err.Error(), "hTeam.score")
}

func TestPostGame_MissingLeaders(t *testing.T) {
	r := newTestRenderer(t)
	in := postGameInput()
	in.Boxscore.Stats.HTeam.Leaders.Points.Players = nil

	_, err := r.PostGame(in)
	require.Error(t, err)
	assert.True(t, IsMissingDataError(err))
	assert.Contains(t, err.Error(), "leaders.points")
}

func TestPostGame_MissingLinescore(t *testing.T) {
	r := newTestRenderer(t)
	in := postGameInput()
	in.Boxscore.BasicGameData.HTeam.Linescore = nil
	in.Boxscore.BasicGameData.VTeam.Linescore = nil

	_, err := r.PostGame(in)
	require.Error(t, err)
	assert.True(t, IsMissingDataError(err))
	assert.Contains(t, err.Error(), "linescore")
}
