package config

import "github.com/rmorar/banksim/internal/constants"

type Config struct {
	Journal    JournalConfig  `mapstructure:"journal"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type JournalConfig struct {
	// Path of the SQLite journal database. Empty means the user data dir.
	Path string `mapstructure:"path"`
	// Disabled skips journaling entirely for a run.
	Disabled bool `mapstructure:"disabled"`
}

type DefaultsConfig struct {
	// Currency is the reference currency commissions and thresholds are
	// denominated in.
	Currency string `mapstructure:"currency"`
	// BusinessLimit is the spending/deposit cap seeded onto new business
	// accounts, in the reference currency.
	BusinessLimit float64 `mapstructure:"business_limit"`
}

func NewDefault() *Config {
	return &Config{
		Journal: JournalConfig{Path: ""},
		Defaults: DefaultsConfig{
			Currency:      constants.BaseCurrency,
			BusinessLimit: constants.DefaultBusinessLimit,
		},
	}
}
