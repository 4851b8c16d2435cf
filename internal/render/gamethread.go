package render

import (
	"fmt"
	"strings"

	"github.com/courtbot/courtbot/internal/nba"
)

// GameThreadPrefix starts every game-thread title.
const GameThreadPrefix = "[Game Thread]"

// GameThread renders the pre-game thread: broadcast and location table,
// starting lineups, inactives, officials, line score and the stream footer.
func (r *Renderer) GameThread(in Input) (Thread, error) {
	bgd := in.Boxscore.BasicGameData

	usKey, themKey, sign := "hTeam", "vTeam", "vs"
	us, them := bgd.HTeam, bgd.VTeam
	if bgd.HTeam.TriCode != r.club.TriCode {
		usKey, themKey, sign = "vTeam", "hTeam", "@"
		us, them = bgd.VTeam, bgd.HTeam
	}

	usTeam, err := r.team(in.Teams, us.TeamID)
	if err != nil {
		return Thread{}, err
	}
	themTeam, err := r.team(in.Teams, them.TeamID)
	if err != nil {
		return Thread{}, err
	}
	clubSub, err := r.subredditFor(usTeam)
	if err != nil {
		return Thread{}, err
	}
	otherSub, err := r.subredditFor(themTeam)
	if err != nil {
		return Thread{}, err
	}

	broadcasters := bgd.Watch.Broadcast.Broadcasters
	national := broadcasterName(broadcasters, "national")
	ours := broadcasterName(broadcasters, usKey)
	theirs := broadcasterName(broadcasters, themKey)

	clubRecord := fmt.Sprintf("(%s-%s)", us.Win, us.Loss)
	otherRecord := fmt.Sprintf("(%s-%s)", them.Win, them.Loss)

	start := bgd.StartTimeUTC
	eastern := start.In(r.tz.Eastern).Format("03:04 PM")
	central := start.In(r.tz.Central).Format("03:04 PM")
	mountain := start.In(r.tz.Mountain).Format("03:04 PM")
	pacific := start.In(r.tz.Pacific).Format("03:04 PM")

	urlPart := fmt.Sprintf("%s-vs-%s-%s",
		strings.ToLower(bgd.VTeam.TriCode), strings.ToLower(bgd.HTeam.TriCode), bgd.GameID)
	passLink := fmt.Sprintf("https://www.nba.com/game/%s?watch", urlPart)
	previewLink := fmt.Sprintf("https://www.nba.com/game/%s", urlPart)
	playLink := fmt.Sprintf("https://www.nba.com/game/%s/play-by-play", urlPart)
	boxLink := fmt.Sprintf("https://www.nba.com/game/%s/box-score#box-score", urlPart)

	var body strings.Builder
	body.WriteString("##### General Information\n\n")
	body.WriteString("**TIME**|**BROADCAST**|**Media**|**Location and Subreddit**|\n")
	body.WriteString(":------------|:------------------------------------|:------------------------------------|:-------------------|\n")
	fmt.Fprintf(&body, "%s Eastern   | National Broadcast: %s           |[Game Preview](%s)| %s|\n",
		eastern, national, previewLink, location(bgd.Arena))
	fmt.Fprintf(&body, "%s Central   | %s Broadcast: %s               |[Play By Play](%s)| %s|\n",
		central, usTeam.Nickname, ours, playLink, bgd.Arena.Name)
	fmt.Fprintf(&body, "%s Mountain | %s Broadcast: %s |[Box Score](%s)| r/%s|\n",
		mountain, themTeam.Nickname, theirs, boxLink, clubSub)
	fmt.Fprintf(&body, "%s Pacific   | [NBA League Pass](%s)                   || r/%s|\n",
		pacific, passLink, otherSub)

	if starters := startersTable(in.Boxscore, usTeam, themTeam, in.Teams); starters != "" {
		body.WriteString("\n##### Starting lineups\n\n")
		body.WriteString(starters)
	}

	inactive, err := r.inactiveTable(in)
	if err != nil {
		return Thread{}, err
	}
	if inactive != "" {
		body.WriteString("\n##### Inactive\n\n")
		body.WriteString(inactive)
	}

	if len(bgd.Officials.Formatted) > 0 {
		body.WriteString("\n##### Officials\n\n")
		body.WriteString("||\n")
		body.WriteString("|:--|\n")
		fmt.Fprintf(&body, "|%s|\n", officialNames(bgd.Officials))
	}

	linescore, err := r.linescore(in.Boxscore, in.Teams)
	if err != nil {
		return Thread{}, err
	}
	if linescore != "" {
		body.WriteString("\n##### Score\n\n")
		body.WriteString(linescore + "\n")
	}

	body.WriteString("\n-----\n\n")
	body.WriteString("[Reddit Stream](https://reddit-stream.com/comments/auto) ")
	body.WriteString("(You must click this link from the comment page.)\n")

	title := fmt.Sprintf("%s The %s %s %s The %s %s - (%s)",
		GameThreadPrefix, usTeam.FullName, clubRecord, sign,
		themTeam.FullName, otherRecord,
		in.Now.In(r.tz.Eastern).Format("January 02, 2006"))

	return Thread{Title: title, Body: body.String()}, nil
}

// broadcasterName names the first broadcaster for an audience, with the MSG
// network linked to its streaming site.
func broadcasterName(broadcasters map[string][]nba.Broadcaster, key string) string {
	list := broadcasters[key]
	if len(list) == 0 {
		return "N/A"
	}
	name := list[0].LongName
	if name == "MSG" {
		return fmt.Sprintf("[%s](http://www.msggo.com)", name)
	}
	return name
}

// officialNames joins referee names with commas.
func officialNames(o nba.Officials) string {
	names := make([]string, len(o.Formatted))
	for i, ref := range o.Formatted {
		names[i] = ref.FirstNameLastName
	}
	return strings.Join(names, ", ")
}

// startersTable lists each side's starters (the players the boxscore gives a
// position). Returns "" when the feed has no player data yet.
func startersTable(box *nba.Boxscore, usTeam, themTeam nba.Team, teams map[string]nba.Team) string {
	if box.Stats == nil || box.Stats.ActivePlayers == nil {
		return ""
	}
	hID := box.BasicGameData.HTeam.TeamID
	vID := box.BasicGameData.VTeam.TeamID

	var away, home []string
	for _, p := range box.Stats.ActivePlayers {
		if p.Pos == "" {
			continue
		}
		entry := fmt.Sprintf("%s %s (%s)", p.FirstName, p.LastName, p.Pos)
		if p.TeamID == vID {
			away = append(away, entry)
		} else {
			home = append(home, entry)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|\n", teams[vID].FullName, teams[hID].FullName)
	b.WriteString(":--|:--|\n")
	for i := 0; i < len(away) && i < len(home); i++ {
		fmt.Fprintf(&b, "%s|%s|\n", away[i], home[i])
	}
	return b.String()
}

// inactiveTable names the players on each roster that the boxscore does not
// list as active. Returns "" when there is no player data or no inactives.
func (r *Renderer) inactiveTable(in Input) (string, error) {
	box := in.Boxscore
	if box.Stats == nil || box.Stats.ActivePlayers == nil {
		return "", nil
	}

	activeIDs := make(map[string]struct{}, len(box.Stats.ActivePlayers))
	for _, p := range box.Stats.ActivePlayers {
		activeIDs[p.PersonID] = struct{}{}
	}

	hID := box.BasicGameData.HTeam.TeamID
	vID := box.BasicGameData.VTeam.TeamID

	hInactiveIDs := inactiveIDs(in.Rosters[hID], activeIDs)
	vInactiveIDs := inactiveIDs(in.Rosters[vID], activeIDs)
	totalInactive := len(hInactiveIDs) + len(vInactiveIDs)
	if totalInactive == 0 {
		return "", nil
	}

	// Resolve names from the league directory, stopping once every
	// inactive is accounted for.
	var hInactive, vInactive []string
	for _, player := range in.Players {
		if _, ok := hInactiveIDs[player.PersonID]; ok {
			hInactive = append(hInactive, inactiveName(player))
		}
		if _, ok := vInactiveIDs[player.PersonID]; ok {
			vInactive = append(vInactive, inactiveName(player))
		}
		if len(hInactive)+len(vInactive) == totalInactive {
			break
		}
	}

	hTeam, err := r.team(in.Teams, hID)
	if err != nil {
		return "", err
	}
	vTeam, err := r.team(in.Teams, vID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "|%s|%s|\n", vTeam.FullName, hTeam.FullName)
	b.WriteString("|:--|:--|\n")
	for i := 0; i < len(hInactive) || i < len(vInactive); i++ {
		var hPlayer, vPlayer string
		if i < len(hInactive) {
			hPlayer = hInactive[i]
		}
		if i < len(vInactive) {
			vPlayer = vInactive[i]
		}
		fmt.Fprintf(&b, "|%s|%s|\n", vPlayer, hPlayer)
	}
	return b.String(), nil
}

func inactiveIDs(roster map[string]struct{}, active map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for id := range roster {
		if _, ok := active[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}

func inactiveName(p nba.Player) string {
	if p.Pos != "" {
		return fmt.Sprintf("%s %s (%s)", p.FirstName, p.LastName, strings.ReplaceAll(p.Pos, "-", "/"))
	}
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}
