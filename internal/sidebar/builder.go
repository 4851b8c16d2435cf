// Package sidebar refreshes the subreddit sidebar: the club roster, a
// twelve-game schedule window around the cursor, and conference (or
// race-to-the-bottom "tank") standings, spliced into the sidebar text
// between marker comments.
package sidebar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/courtbot/courtbot/internal/config"
	"github.com/courtbot/courtbot/internal/nba"
)

// Schedule window: the most recent game plus four prior and seven next.
const (
	gamesAhead  = 7
	gamesBehind = 4
)

// Builder renders the sidebar tables for one club.
type Builder struct {
	tables *config.Tables
	tz     *config.Timezones
	club   config.Club
}

// NewBuilder creates a Builder.
func NewBuilder(tables *config.Tables, tz *config.Timezones, club config.Club) *Builder {
	return &Builder{tables: tables, tz: tz, club: club}
}

// Roster renders the club roster table, sorted by player name.
func (b *Builder) Roster(players []nba.Player, roster map[string]struct{}) string {
	var onTeam []nba.Player
	for _, p := range players {
		if _, ok := roster[p.PersonID]; ok {
			onTeam = append(onTeam, p)
		}
	}
	sort.Slice(onTeam, func(i, j int) bool {
		return playerName(onTeam[i]) < playerName(onTeam[j])
	})

	rows := []string{"No.|Name|Position", ":--:|:--|:--:"}
	for _, p := range onTeam {
		pos := strings.ReplaceAll(p.Pos, "-", "/")
		rows = append(rows, fmt.Sprintf("%s|%s|%s", p.Jersey, playerName(p), pos))
	}
	return strings.Join(rows, "\n")
}

func playerName(p nba.Player) string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// Schedule renders the recent-and-upcoming games window.
func (b *Builder) Schedule(now time.Time, teams map[string]nba.Team, sched *nba.Schedule) (string, error) {
	today := now.In(b.tz.Eastern)
	games := sched.League.Standard
	lastIdx := sched.League.LastStandardGamePlayedIndex

	endIdx := lastIdx + gamesAhead
	if endIdx > len(games) {
		endIdx = len(games)
	}
	// Reach further back when the season is ending and fewer than seven
	// games remain ahead.
	startIdx := lastIdx - (gamesBehind + (gamesAhead - (endIdx - lastIdx - 1)))
	if startIdx < 0 {
		startIdx = 0
	}

	rows := []string{"Date|Team|Loc|Time/Outcome", ":--:|:--:|:--:|:--:"}
	for i := startIdx; i < endIdx; i++ {
		game := games[i]
		clubSide, oppSide := game.VTeam, game.HTeam
		loc := "Away"
		if game.IsHomeTeam {
			clubSide, oppSide = game.HTeam, game.VTeam
			loc = "Home"
		}
		opp, ok := teams[oppSide.TeamID]
		if !ok {
			return "", fmt.Errorf("schedule: unknown team id %q", oppSide.TeamID)
		}
		oppSub, err := b.tables.Subreddit(opp.Nickname)
		if err != nil {
			return "", err
		}

		gametime := game.StartTimeUTC.In(b.tz.Eastern)
		date := dateLabel(gametime, today)

		timeOrScore := strings.TrimLeft(gametime.Format("03:04 PM"), "0")
		if clubSide.Score != "" {
			outcome, err := winLoss(clubSide, oppSide)
			if err != nil {
				return "", err
			}
			timeOrScore = outcome
		}

		rows = append(rows, fmt.Sprintf("%s|[](/r/%s)|%s|%s", date, oppSub, loc, timeOrScore))
	}
	return strings.Join(rows, "\n"), nil
}

// dateLabel names a game day relative to today, falling back to "Jan 02".
func dateLabel(gametime, today time.Time) string {
	gy, gm, gd := gametime.Date()
	gameDay := time.Date(gy, gm, gd, 0, 0, 0, 0, gametime.Location())
	ty, tm, td := today.Date()
	todayDay := time.Date(ty, tm, td, 0, 0, 0, 0, today.Location())

	switch gameDay.Sub(todayDay) {
	case 0:
		return "Today"
	case -24 * time.Hour:
		return "Yesterday"
	case 24 * time.Hour:
		return "Tomorrow"
	}
	return gametime.Format("Jan 02")
}

// winLoss formats a finished game from the club's perspective.
func winLoss(clubSide, oppSide nba.GameTeam) (string, error) {
	clubScore, err := strconv.Atoi(clubSide.Score)
	if err != nil {
		return "", fmt.Errorf("schedule: bad club score %q", clubSide.Score)
	}
	oppScore, err := strconv.Atoi(oppSide.Score)
	if err != nil {
		return "", fmt.Errorf("schedule: bad opponent score %q", oppSide.Score)
	}
	if clubScore > oppScore {
		return fmt.Sprintf("W %d-%d", clubScore, oppScore), nil
	}
	return fmt.Sprintf("L %d-%d", oppScore, clubScore), nil
}

// Standings renders the club's conference table.
func (b *Builder) Standings(teams map[string]nba.Team, standings *nba.Standings) (string, error) {
	return b.printStandings(teams, standings.Conference.East)
}

// TankStandings renders the league-wide race to the bottom: every team
// sorted by loss percentage, games-behind computed against the worst record,
// top ten shown.
func (b *Builder) TankStandings(teams map[string]nba.Team, standings *nba.Standings) (string, error) {
	rows := make([]nba.StandingsRow, 0,
		len(standings.Conference.East)+len(standings.Conference.West))
	rows = append(rows, standings.Conference.East...)
	rows = append(rows, standings.Conference.West...)

	sort.SliceStable(rows, func(i, j int) bool {
		return lossPct(rows[i]) > lossPct(rows[j])
	})
	if len(rows) == 0 {
		return b.printStandings(teams, rows)
	}

	worstWins, _ := strconv.Atoi(rows[0].Win)
	worstLoss, _ := strconv.Atoi(rows[0].Loss)
	for i := range rows {
		w, _ := strconv.Atoi(rows[i].Win)
		l, _ := strconv.Atoi(rows[i].Loss)
		gb := float64(abs(worstWins-w)+abs(worstLoss-l)) / 2
		rows[i].GamesBehind = strings.ReplaceAll(fmt.Sprintf("%.1f", gb), ".0", "")
	}

	if len(rows) > 10 {
		rows = rows[:10]
	}
	return b.printStandings(teams, rows)
}

func (b *Builder) printStandings(teams map[string]nba.Team, rows []nba.StandingsRow) (string, error) {
	out := []string{" | | |Record|GB", ":--:|:--:|:--|:--:|:--:"}
	for i, row := range rows {
		team, ok := teams[row.TeamID]
		if !ok {
			return "", fmt.Errorf("standings: unknown team id %q", row.TeamID)
		}
		sub, err := b.tables.Subreddit(team.Nickname)
		if err != nil {
			return "", err
		}
		gb := row.GamesBehind
		if gb == "0" {
			gb = "-"
		}
		out = append(out, fmt.Sprintf("%d|[](/r/%s)|%s|%s-%s|%s",
			i+1, sub, team.Nickname, row.Win, row.Loss, gb))
	}
	return strings.Join(out, "\n"), nil
}

func lossPct(row nba.StandingsRow) float64 {
	pct, _ := strconv.ParseFloat(row.LossPct, 64)
	return pct
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ReplaceSection splices text between the section's start and end markers,
// `[](#Start<marker>)` and `[](#End<marker>)`. A description without both
// markers is returned unchanged.
func ReplaceSection(description, text, marker string) string {
	startMarker := fmt.Sprintf("[](#Start%s)", marker)
	endMarker := fmt.Sprintf("[](#End%s)", marker)
	start := strings.Index(description, startMarker)
	end := strings.Index(description, endMarker)
	if start == -1 || end == -1 {
		return description
	}
	replacement := fmt.Sprintf("%s\n\n%s\n\n%s", startMarker, text, endMarker)
	return description[:start] + replacement + description[end+len(endMarker):]
}
