package render

import (
	"fmt"
	"strings"

	"github.com/courtbot/courtbot/internal/nba"
)

// linescore builds the per-period score table. It returns "" when the feed
// has no period data yet; otherwise the table always spans at least four
// periods, padding unplayed ones with "-" and extending past four for
// overtime.
func (r *Renderer) linescore(box *nba.Boxscore, teams map[string]nba.Team) (string, error) {
	bgd := box.BasicGameData
	currentPeriod := bgd.Period.Current

	home, err := r.team(teams, bgd.HTeam.TeamID)
	if err != nil {
		return "", err
	}
	road, err := r.team(teams, bgd.VTeam.TeamID)
	if err != nil {
		return "", err
	}

	homeScore := bgd.HTeam.Linescore
	roadScore := bgd.VTeam.Linescore
	if len(homeScore) != len(roadScore) {
		return "", &MissingDataError{Field: "matching linescore lengths"}
	}
	numPeriods := len(homeScore)
	if numPeriods == 0 {
		return "", nil
	}
	if numPeriods < 4 {
		numPeriods = 4
	}

	var header1, header2, homeLine, roadLine strings.Builder
	header1.WriteString("|**Team**|")
	header2.WriteString("|:---|")
	homeLine.WriteString(fmt.Sprintf("|%s|", home.FullName))
	roadLine.WriteString(fmt.Sprintf("|%s|", road.FullName))

	for i := 0; i < numPeriods; i++ {
		period := i + 1
		if period < 5 {
			header1.WriteString(fmt.Sprintf("**Q%d**|", period))
		} else {
			header1.WriteString(fmt.Sprintf("**OT%d**|", period-4))
		}
		header2.WriteString(":--:|")
		homeLine.WriteString(periodPoints(bgd.HTeam.Linescore, currentPeriod, period) + "|")
		roadLine.WriteString(periodPoints(bgd.VTeam.Linescore, currentPeriod, period) + "|")
	}

	header1.WriteString("**Total**|")
	header2.WriteString(":--:|")
	homeLine.WriteString(bgd.HTeam.Score + "|")
	roadLine.WriteString(bgd.VTeam.Score + "|")

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		header1.String(), header2.String(), roadLine.String(), homeLine.String()), nil
}

// periodPoints returns one side's points for a period, or "-" for a period
// that has not started. The feed reports unplayed regulation periods as "0";
// those render as "-" too, but overtime data is always shown as reported.
func periodPoints(linescore []nba.PeriodScore, currentPeriod, requestedPeriod int) string {
	points := "-"
	if len(linescore) > requestedPeriod-1 {
		points = linescore[requestedPeriod-1].Score
	}
	if points == "0" && requestedPeriod > currentPeriod && currentPeriod <= 4 {
		points = "-"
	}
	return points
}
