package config

import (
	_ "embed"
	"fmt"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// Tables are the static league lookup tables shipped with the binary.
//
// TeamSubreddits maps a team nickname (as reported by the stats provider's
// team directory) to the subreddit that covers it. YahooCodes maps a team
// tri-code to the numeric suffix Yahoo uses in its game URLs.
type Tables struct {
	TeamSubreddits map[string]string `yaml:"team_subreddits"`
	YahooCodes     map[string]string `yaml:"yahoo_codes"`
}

// Timezones are the four US market timezones used to print tip-off times.
type Timezones struct {
	Eastern  *time.Location
	Central  *time.Location
	Mountain *time.Location
	Pacific  *time.Location
}

// LoadTables decodes the embedded lookup tables.
func LoadTables() (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(tablesYAML, &t); err != nil {
		return nil, fmt.Errorf("decoding embedded tables: %w", err)
	}
	if len(t.TeamSubreddits) == 0 {
		return nil, fmt.Errorf("embedded tables: team_subreddits is empty")
	}
	if len(t.YahooCodes) == 0 {
		return nil, fmt.Errorf("embedded tables: yahoo_codes is empty")
	}
	return &t, nil
}

// LoadTimezones resolves the market timezones from the embedded tz database.
func LoadTimezones() (*Timezones, error) {
	names := []string{
		"America/New_York",
		"America/Chicago",
		"America/Denver",
		"America/Los_Angeles",
	}
	locs := make([]*time.Location, len(names))
	for i, name := range names {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("loading timezone %s: %w", name, err)
		}
		locs[i] = loc
	}
	return &Timezones{
		Eastern:  locs[0],
		Central:  locs[1],
		Mountain: locs[2],
		Pacific:  locs[3],
	}, nil
}

// Subreddit returns the subreddit covering the team with the given nickname.
func (t *Tables) Subreddit(nickname string) (string, error) {
	sub, ok := t.TeamSubreddits[nickname]
	if !ok {
		return "", fmt.Errorf("no subreddit mapped for team nickname %q", nickname)
	}
	return sub, nil
}

// YahooCode returns Yahoo's game URL suffix for the given team tri-code.
func (t *Tables) YahooCode(triCode string) (string, error) {
	code, ok := t.YahooCodes[triCode]
	if !ok {
		return "", fmt.Errorf("no yahoo code mapped for tri-code %q", triCode)
	}
	return code, nil
}
