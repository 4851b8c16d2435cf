package bot

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbot/courtbot/internal/config"
	"github.com/courtbot/courtbot/internal/engine"
	"github.com/courtbot/courtbot/internal/nba"
	"github.com/courtbot/courtbot/internal/reconcile"
	"github.com/courtbot/courtbot/internal/render"
	"github.com/courtbot/courtbot/internal/testutil"
)

const (
	botUser   = "nyknicks-automod"
	knicksID  = "1610612752"
	celticsID = "1610612738"
)

var testClub = config.Club{TriCode: "NYK", Nickname: "Knicks", URLName: "knicks"}

// fakeStats serves canned feed responses.
type fakeStats struct {
	year     int
	schedule *nba.Schedule
	boxscore *nba.Boxscore
	teams    map[string]nba.Team
	rosters  map[string]map[string]struct{}
	players  []nba.Player
	err      error
}

func (f *fakeStats) CurrentSeasonYear(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.year, nil
}

func (f *fakeStats) ScheduleFor(_ context.Context, _ string, _ int) (*nba.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

func (f *fakeStats) BoxscoreFor(_ context.Context, _, _ string) (*nba.Boxscore, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.boxscore, nil
}

func (f *fakeStats) Teams(_ context.Context, _ int) (map[string]nba.Team, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.teams, nil
}

func (f *fakeStats) Roster(_ context.Context, urlName string, _ int) (map[string]struct{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rosters[urlName], nil
}

func (f *fakeStats) Players(_ context.Context, _ int) ([]nba.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.players, nil
}

func testTeams() map[string]nba.Team {
	return map[string]nba.Team{
		knicksID: {
			TeamID: knicksID, FullName: "New York Knicks", Nickname: "Knicks",
			URLName: "knicks", IsNBAFranchise: true,
		},
		celticsID: {
			TeamID: celticsID, FullName: "Boston Celtics", Nickname: "Celtics",
			URLName: "celtics", IsNBAFranchise: true,
		},
	}
}

// testSchedule returns a two-game schedule: game 0 is the cursor game and
// game 1 the next one, tipping off at FixedNow+nextTipIn.
func testSchedule(cursorScored bool, cursorStartedBefore, nextTipIn time.Duration) *nba.Schedule {
	cursor := nba.Game{
		GameID:           "0022000100",
		StartTimeUTC:     testutil.FixedNow.Add(-cursorStartedBefore),
		StartDateEastern: "20210115",
		HTeam:            nba.GameTeam{TeamID: knicksID, TriCode: "NYK"},
		VTeam:            nba.GameTeam{TeamID: celticsID, TriCode: "BOS"},
	}
	if cursorScored {
		cursor.HTeam.Score = "110"
		cursor.VTeam.Score = "102"
	}
	next := nba.Game{
		GameID:           "0022000101",
		StartTimeUTC:     testutil.FixedNow.Add(nextTipIn),
		StartDateEastern: "20210116",
		HTeam:            nba.GameTeam{TeamID: knicksID, TriCode: "NYK"},
		VTeam:            nba.GameTeam{TeamID: celticsID, TriCode: "BOS"},
	}
	return &nba.Schedule{League: nba.ScheduleLeague{
		LastStandardGamePlayedIndex: 0,
		Standard:                    []nba.Game{cursor, next},
	}}
}

// preGameBoxscore has lineups but no period data, as published before tip.
func preGameBoxscore() *nba.Boxscore {
	return &nba.Boxscore{
		BasicGameData: nba.BasicGameData{
			GameID:           "0022000101",
			StartTimeUTC:     testutil.FixedNow.Add(30 * time.Minute),
			StartDateEastern: "20210116",
			Arena: nba.Arena{
				Name: "Madison Square Garden", City: "New York",
				StateAbbr: "NY", Country: "USA",
			},
			HTeam: nba.BoxscoreTeam{TeamID: knicksID, TriCode: "NYK", Win: "5", Loss: "3"},
			VTeam: nba.BoxscoreTeam{TeamID: celticsID, TriCode: "BOS", Win: "6", Loss: "3"},
		},
	}
}

// postGameBoxscore is a finished 110-102 home win with just enough of the
// stats block for the renderer.
func postGameBoxscore() *nba.Boxscore {
	leaders := func(first, last, pts, reb, ast string) nba.TeamLeaders {
		name := []nba.LeaderName{{FirstName: first, LastName: last}}
		return nba.TeamLeaders{
			Points:   nba.StatLeader{Value: pts, Players: name},
			Rebounds: nba.StatLeader{Value: reb, Players: name},
			Assists:  nba.StatLeader{Value: ast, Players: name},
		}
	}
	return &nba.Boxscore{
		BasicGameData: nba.BasicGameData{
			GameID:           "0022000100",
			StartTimeUTC:     testutil.FixedNow.Add(-2 * time.Hour),
			StartDateEastern: "20210115",
			Attendance:       "0",
			GameDuration:     nba.GameDuration{Hours: "2", Minutes: "10"},
			Arena: nba.Arena{
				Name: "Madison Square Garden", City: "New York",
				StateAbbr: "NY", Country: "USA",
			},
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
					PersonID: "203944", TeamID: knicksID, FirstName: "Julius", LastName: "Randle", Pos: "F",
					Min: "40", FGM: "12", FGA: "24", TPM: "2", TPA: "6", FTM: "6", FTA: "7",
					OffReb: "3", DefReb: "11", TotReb: "14", Assists: "5", Steals: "1", Blocks: "0",
					Turnovers: "4", PFouls: "3", PlusMinus: "10", Points: "32",
				},
				{
					PersonID: "1628369", TeamID: celticsID, FirstName: "Jayson", LastName: "Tatum", Pos: "F",
					Min: "38", FGM: "10", FGA: "22", TPM: "4", TPA: "10", FTM: "4", FTA: "4",
					OffReb: "1", DefReb: "10", TotReb: "11", Assists: "3", Steals: "1", Blocks: "1",
					Turnovers: "2", PFouls: "2", PlusMinus: "-6", Points: "28",
				},
			},
			HTeam: nba.TeamStats{
				BiggestLead: "12", LongestRun: "11", PointsInPaint: "52",
				PointsOffTurnovers: "18", FastBreakPoints: "14",
				Totals:  nba.TeamTotals{Points: "110", FGM: "41", FGA: "88", FGP: "46.6"},
				Leaders: leaders("Julius", "Randle", "32", "14", "5"),
			},
			VTeam: nba.TeamStats{
				BiggestLead: "9", LongestRun: "8", PointsInPaint: "44",
				PointsOffTurnovers: "13", FastBreakPoints: "10",
				Totals:  nba.TeamTotals{Points: "102", FGM: "38", FGA: "85", FGP: "44.7"},
				Leaders: leaders("Jayson", "Tatum", "28", "11", "3"),
			},
		},
	}
}

func newTestBot(t *testing.T, stats StatsProvider, forum *testutil.FakeForum, opts ...Option) *Bot {
	t.Helper()
	tables, err := config.LoadTables()
	require.NoError(t, err)
	tz, err := config.LoadTimezones()
	require.NoError(t, err)
	renderer := render.New(tables, tz, testClub, testutil.SeededRand(7))

	opts = append([]Option{WithTokenGenerator(FixedGenerator{Token: "run-1"})}, opts...)
	return New(slog.Default(), stats, forum, renderer, testClub, opts...)
}

func TestRun_NothingToDo(t *testing.T) {
	stats := &fakeStats{
		year:     2020,
		schedule: testSchedule(true, 10*time.Hour, 3*time.Hour),
		teams:    testTeams(),
	}
	forum := testutil.NewFakeForum(botUser)
	b := newTestBot(t, stats, forum)

	report, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNothingToDo, report.Outcome)
	assert.Equal(t, engine.ActionNone, report.Action)
	assert.Equal(t, "run-1", report.RunToken)
	assert.Empty(t, forum.Submitted)
}

func TestRun_GameThreadCreated(t *testing.T) {
	stats := &fakeStats{
		year:     2020,
		schedule: testSchedule(true, 2*time.Hour, 30*time.Minute),
		boxscore: preGameBoxscore(),
		teams:    testTeams(),
		rosters: map[string]map[string]struct{}{
			"knicks":  {},
			"celtics": {},
		},
	}
	forum := testutil.NewFakeForum(botUser)
	b := newTestBot(t, stats, forum)

	report, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, report.Outcome)
	assert.Equal(t, engine.ActionGameThread, report.Action)
	assert.Equal(t, "0022000101", report.GameID)
	assert.Equal(t, reconcile.OutcomeCreated, report.Reconciliation)
	assert.True(t, strings.HasPrefix(report.ThreadTitle, render.GameThreadPrefix))

	require.Len(t, forum.Submitted, 1)
	assert.Equal(t, report.ThreadTitle, forum.Submitted[0].Title)
	assert.Equal(t, []string{forum.Submitted[0].Fullname}, forum.Stickied)
}

func TestRun_PostGameThreadCreated(t *testing.T) {
	stats := &fakeStats{
		year:     2020,
		schedule: testSchedule(true, 2*time.Hour, 3*time.Hour),
		boxscore: postGameBoxscore(),
		teams:    testTeams(),
	}
	forum := testutil.NewFakeForum(botUser)
	b := newTestBot(t, stats, forum)

	report, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, report.Outcome)
	assert.Equal(t, engine.ActionPostGameThread, report.Action)
	assert.Equal(t, "0022000100", report.GameID)
	assert.Equal(t, reconcile.OutcomeCreated, report.Reconciliation)
	assert.True(t, strings.HasPrefix(report.ThreadTitle, render.PostGamePrefix))
	require.Len(t, forum.Submitted, 1)
}

func TestRun_SecondPassIsIdempotent(t *testing.T) {
	stats := &fakeStats{
		year:     2020,
		schedule: testSchedule(true, 2*time.Hour, 3*time.Hour),
		boxscore: postGameBoxscore(),
		teams:    testTeams(),
	}
	forum := testutil.NewFakeForum(botUser)
	b := newTestBot(t, stats, forum)

	first, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeCreated, first.Reconciliation)

	second, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeUnchanged, second.Reconciliation)
	assert.Len(t, forum.Submitted, 1)
}

func TestRun_PostponedCursorCorrection(t *testing.T) {
	// With one postponed game the cursor points past the end of the
	// two-game schedule, which is a data error worth surfacing.
	stats := &fakeStats{
		year:     2020,
		schedule: testSchedule(true, 2*time.Hour, 3*time.Hour),
		teams:    testTeams(),
	}
	forum := testutil.NewFakeForum(botUser)
	b := newTestBot(t, stats, forum, WithPostponedGames(5))

	_, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.Error(t, err)
	assert.True(t, engine.IsCursorError(err))
}

func TestRun_FeedFailurePropagates(t *testing.T) {
	stats := &fakeStats{err: assert.AnError}
	forum := testutil.NewFakeForum(botUser)
	b := newTestBot(t, stats, forum)

	report, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, report.Outcome)
	assert.Empty(t, forum.Submitted)
}

func TestRun_ForumFailurePropagates(t *testing.T) {
	stats := &fakeStats{
		year:     2020,
		schedule: testSchedule(true, 2*time.Hour, 3*time.Hour),
		boxscore: postGameBoxscore(),
		teams:    testTeams(),
	}
	forum := testutil.NewFakeForum(botUser)
	forum.Err = assert.AnError
	b := newTestBot(t, stats, forum)

	_, err := b.Run(context.Background(), testutil.FixedNow, "nyknicks")
	require.ErrorIs(t, err, assert.AnError)
}
