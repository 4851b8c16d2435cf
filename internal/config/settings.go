package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Club identifies the team this bot posts for.
type Club struct {
	// TriCode is the provider's three-letter team code, e.g. "NYK".
	TriCode string
	// Nickname is the team nickname used in the team directory, e.g. "Knicks".
	Nickname string
	// URLName is the provider's URL-safe team name, e.g. "knicks".
	URLName string
}

// Settings are the runtime settings for one invocation. They are resolved
// once in the CLI layer and handed to the components that need them.
type Settings struct {
	// Reddit script-app credentials.
	RedditClientID     string `mapstructure:"reddit_client_id"`
	RedditClientSecret string `mapstructure:"reddit_client_secret"`
	RedditUsername     string `mapstructure:"reddit_username"`
	RedditPassword     string `mapstructure:"reddit_password"`

	UserAgent string `mapstructure:"user_agent"`

	ClubTriCode  string `mapstructure:"club_tri_code"`
	ClubNickname string `mapstructure:"club_nickname"`
	ClubURLName  string `mapstructure:"club_url_name"`

	// StatsBaseURL overrides the stats provider endpoint, mainly for tests.
	StatsBaseURL string `mapstructure:"stats_base_url"`
}

// Defaults mirroring the original deployment.
const (
	DefaultUsername  = "nyknicks-automod"
	DefaultUserAgent = "courtbot"
)

// LoadSettings resolves settings from the environment (COURTBOT_* variables)
// and an optional config file in the working directory.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("COURTBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("reddit_username", DefaultUsername)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("club_tri_code", "NYK")
	v.SetDefault("club_nickname", "Knicks")
	v.SetDefault("club_url_name", "knicks")

	v.SetConfigName("courtbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; only env vars are required.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Bind explicitly so AutomaticEnv sees keys that never had a default.
	for _, key := range []string{
		"reddit_client_id", "reddit_client_secret", "reddit_password",
		"stats_base_url",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &s, nil
}

// Club assembles the club identity from the settings.
func (s *Settings) Club() Club {
	return Club{
		TriCode:  s.ClubTriCode,
		Nickname: s.ClubNickname,
		URLName:  s.ClubURLName,
	}
}
