package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/courtbot/courtbot/internal/nba"
)

// PostGamePrefix starts every post-game thread title.
const PostGamePrefix = "[Post Game Thread]"

// PostGame renders the post-game thread: summary, line score, team stats,
// team leaders and per-player box lines.
func (r *Renderer) PostGame(in Input) (Thread, error) {
	title, err := r.postGameTitle(in)
	if err != nil {
		return Thread{}, err
	}
	body, err := r.postGameBody(in)
	if err != nil {
		return Thread{}, err
	}
	return Thread{Title: title, Body: body}, nil
}

func (r *Renderer) postGameTitle(in Input) (string, error) {
	bgd := in.Boxscore.BasicGameData

	homeScore, err := scoreValue(bgd.HTeam.Score, "hTeam.score")
	if err != nil {
		return "", err
	}
	roadScore, err := scoreValue(bgd.VTeam.Score, "vTeam.score")
	if err != nil {
		return "", err
	}

	homeTeam, err := r.team(in.Teams, bgd.HTeam.TeamID)
	if err != nil {
		return "", err
	}
	roadTeam, err := r.team(in.Teams, bgd.VTeam.TeamID)
	if err != nil {
		return "", err
	}

	clubWon := (bgd.HTeam.TriCode == r.club.TriCode && homeScore > roadScore) ||
		(bgd.HTeam.TriCode != r.club.TriCode && roadScore > homeScore)
	margin := homeScore - roadScore
	if margin < 0 {
		margin = -margin
	}
	verb := defeatVerb(r.rng, clubWon, margin)

	home := fmt.Sprintf("%s (%s-%s)", homeTeam.FullName, bgd.HTeam.Win, bgd.HTeam.Loss)
	road := fmt.Sprintf("%s (%s-%s)", roadTeam.FullName, bgd.VTeam.Win, bgd.VTeam.Loss)
	winners, losers := home, road
	if roadScore > homeScore {
		winners, losers = road, home
	}

	hi, lo := homeScore, roadScore
	if lo > hi {
		hi, lo = lo, hi
	}

	var overtime string
	switch quarters := len(bgd.VTeam.Linescore); {
	case quarters == 5:
		overtime = " in OT"
	case quarters > 5:
		overtime = fmt.Sprintf(" in %dOTs", quarters-4)
	}

	return fmt.Sprintf("%s The %s %s the %s%s, %d-%d",
		PostGamePrefix, winners, verb, losers, overtime, hi, lo), nil
}

func (r *Renderer) postGameBody(in Input) (string, error) {
	box := in.Boxscore
	bgd := box.BasicGameData
	if box.Stats == nil {
		return "", &MissingDataError{Field: "stats"}
	}
	stats := box.Stats

	homeTeam, err := r.team(in.Teams, bgd.HTeam.TeamID)
	if err != nil {
		return "", err
	}
	roadTeam, err := r.team(in.Teams, bgd.VTeam.TeamID)
	if err != nil {
		return "", err
	}
	homeSub, err := r.subredditFor(homeTeam)
	if err != nil {
		return "", err
	}
	roadSub, err := r.subredditFor(roadTeam)
	if err != nil {
		return "", err
	}
	yahooCode, err := r.tables.YahooCode(bgd.HTeam.TriCode)
	if err != nil {
		return "", &MissingDataError{Field: fmt.Sprintf("yahoo code for %q", bgd.HTeam.TriCode)}
	}

	nbaURL := fmt.Sprintf("https://www.nba.com/game/%s-vs-%s-%s",
		bgd.VTeam.TriCode, bgd.HTeam.TriCode, bgd.GameID)
	yahooURL := fmt.Sprintf("http://sports.yahoo.com/nba/%s-%s-%s%s",
		strings.ReplaceAll(strings.ToLower(roadTeam.FullName), " ", "-"),
		strings.ReplaceAll(strings.ToLower(homeTeam.FullName), " ", "-"),
		bgd.StartDateEastern, yahooCode)
	startEastern := bgd.StartTimeUTC.In(r.tz.Eastern)
	threadalyticsURL := fmt.Sprintf("https://threadalytics.com/teams/%s/games/%s@%s-%d",
		r.club.TriCode, bgd.HTeam.TriCode, bgd.VTeam.TriCode, startEastern.Unix())

	attendance := bgd.Attendance
	if attendance == "0" {
		attendance = "No in-person attendance"
	}

	duration := fmt.Sprintf("%s hours and %s minutes",
		bgd.GameDuration.Hours, bgd.GameDuration.Minutes)
	duration = strings.ReplaceAll(duration, " and 0 minutes", "")
	duration = strings.ReplaceAll(duration, " and 1 minutes", " and 1 minute")

	var b strings.Builder

	// Game summary.
	b.WriteString("##### Game Summary\n\n")
	b.WriteString("|||\n")
	b.WriteString("|:--|:--|\n")
	fmt.Fprintf(&b, "|**Score**|[%s](/r/%s) **%s -  %s** [%s](/r/%s)|\n",
		roadTeam.FullName, roadSub, bgd.VTeam.Score, bgd.HTeam.Score, homeTeam.FullName, homeSub)
	fmt.Fprintf(&b, "|**Data**|[NBA](%s), [Yahoo](%s), [Threadalytics](%s)|\n",
		nbaURL, yahooURL, threadalyticsURL)
	fmt.Fprintf(&b, "|**Location**|%s|\n", location(bgd.Arena))
	fmt.Fprintf(&b, "|**Arena**|%s|\n", bgd.Arena.Name)
	fmt.Fprintf(&b, "|**Attendance**|%s|\n", attendance)
	fmt.Fprintf(&b, "|**Start Time**|%s|\n", startEastern.Format("January 2, 2006 3:04 PM MST"))
	fmt.Fprintf(&b, "|**Game Duration**|%s|\n", duration)
	fmt.Fprintf(&b, "|**Officials**|%s|\n", officialNames(bgd.Officials))

	// Line score.
	linescore, err := r.linescore(box, in.Teams)
	if err != nil {
		return "", err
	}
	if linescore == "" {
		return "", &MissingDataError{Field: "linescore"}
	}
	b.WriteString("\n##### Line Score\n")
	fmt.Fprintf(&b, "\n%s\n", linescore)

	// Team stats.
	b.WriteString("\n##### Team Stats\n\n")
	b.WriteString("|**Team**|**PTS**|**FG**|**FG%**|**3P**|**3P%**|**FT**|**FT%**|**OREB**|**TREB**|**AST**|**PF**|**STL**|**TO**|**BLK**|\n")
	b.WriteString("|:--|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|\n")
	b.WriteString(teamTotalsRow(roadTeam.FullName, stats.VTeam.Totals))
	b.WriteString(teamTotalsRow(homeTeam.FullName, stats.HTeam.Totals))
	b.WriteString("\n|**Team**|**Biggest Lead**|**Longest Run**|**PTS: In Paint**|**PTS: Off TOs**|**PTS: Fastbreak**|\n")
	b.WriteString("|:--|:--:|:--:|:--:|:--:|:--:|\n")
	b.WriteString(teamExtrasRow(roadTeam.FullName, stats.VTeam))
	b.WriteString(teamExtrasRow(homeTeam.FullName, stats.HTeam))

	// Team leaders.
	roadLeaders, err := teamLeadersRow(roadTeam.FullName, stats.VTeam.Leaders)
	if err != nil {
		return "", err
	}
	homeLeaders, err := teamLeadersRow(homeTeam.FullName, stats.HTeam.Leaders)
	if err != nil {
		return "", err
	}
	b.WriteString("\n##### Team Leaders\n\n")
	b.WriteString("|**Team**|**Points**|**Rebounds**|**Assists**|\n")
	b.WriteString("|:--|:--|:--|:--|\n")
	b.WriteString(roadLeaders)
	b.WriteString(homeLeaders)

	// Player stats, road side first. Only starters carry a position.
	away := playerStatsHeader(roadTeam.Nickname)
	home := playerStatsHeader(homeTeam.Nickname)
	for _, p := range stats.ActivePlayers {
		row := playerStatsRow(p)
		if p.TeamID == bgd.VTeam.TeamID {
			away += row
		} else {
			home += row
		}
	}
	b.WriteString("\n##### Player Stats\n")
	b.WriteString(away)
	b.WriteString(home)

	return b.String(), nil
}

func scoreValue(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &MissingDataError{Field: field}
	}
	return n, nil
}

func teamTotalsRow(name string, t nba.TeamTotals) string {
	return fmt.Sprintf("|%s|%s|%s-%s|%s%%|%s-%s|%s%%|%s-%s|%s%%|%s|%s|%s|%s|%s|%s|%s|\n",
		name, t.Points, t.FGM, t.FGA, t.FGP, t.TPM, t.TPA, t.TPP, t.FTM, t.FTA, t.FTP,
		t.OffReb, t.TotReb, t.Assists, t.PFouls, t.Steals, t.Turnovers, t.Blocks)
}

func teamExtrasRow(name string, t nba.TeamStats) string {
	return fmt.Sprintf("|%s|%s|%s|%s|%s|%s|\n",
		name, plusMinus(t.BiggestLead), t.LongestRun, t.PointsInPaint,
		t.PointsOffTurnovers, t.FastBreakPoints)
}

func teamLeadersRow(name string, l nba.TeamLeaders) (string, error) {
	points, err := leaderCell(l.Points, "leaders.points")
	if err != nil {
		return "", err
	}
	rebounds, err := leaderCell(l.Rebounds, "leaders.rebounds")
	if err != nil {
		return "", err
	}
	assists, err := leaderCell(l.Assists, "leaders.assists")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("|%s|%s|%s|%s|\n", name, points, rebounds, assists), nil
}

func leaderCell(l nba.StatLeader, field string) (string, error) {
	if len(l.Players) == 0 {
		return "", &MissingDataError{Field: field}
	}
	return fmt.Sprintf("**%s** %s %s", l.Value, l.Players[0].FirstName, l.Players[0].LastName), nil
}

func playerStatsHeader(nickname string) string {
	return fmt.Sprintf("\n**%s**|**MIN**|**FGM-A**|**3PM-A**|**FTM-A**"+
		"|**ORB**|**DRB**|**REB**|**AST**|**STL**|**BLK**|**TO**|**PF**"+
		"|**+/-**|**PTS**|\n"+
		"|:--|:--|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|:--:|"+
		":--:|:--:|:--:|\n", strings.ToUpper(nickname))
}

func playerStatsRow(p nba.PlayerStats) string {
	position := ""
	if p.Pos != "" {
		position = "^" + p.Pos
	}
	return fmt.Sprintf("|%s %s%s|%s|%s-%s|%s-%s|%s-%s|%s|%s|%s|%s|%s|%s|%s|%s|%s|%s|\n",
		p.FirstName, p.LastName, position, p.Min, p.FGM, p.FGA, p.TPM, p.TPA,
		p.FTM, p.FTA, p.OffReb, p.DefReb, p.TotReb, p.Assists, p.Steals,
		p.Blocks, p.Turnovers, p.PFouls, plusMinus(p.PlusMinus), p.Points)
}
