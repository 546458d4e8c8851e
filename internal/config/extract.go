package config

import "github.com/spf13/pflag"

// ExtractConfig holds configuration for the extract command.
type ExtractConfig struct {
	In       string
	Out      string
	Errors   string
	MaxDepth int
	LogLevel string
}

// LoadExtract merges config file, environment variables, and flags into
// ExtractConfig.
func LoadExtract(cfgFile string, flags *pflag.FlagSet) (ExtractConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"out":       "./data/domain_events.jsonl",
		"errors":    "./data/extract_errors.jsonl",
		"max-depth": 32,
		"log-level": "info",
	})
	if err != nil {
		return ExtractConfig{}, err
	}

	cfg := ExtractConfig{
		In:       v.GetString("in"),
		Out:      v.GetString("out"),
		Errors:   v.GetString("errors"),
		MaxDepth: v.GetInt("max-depth"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
