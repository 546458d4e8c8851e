package config

import "github.com/spf13/pflag"

// ProjectConfig holds configuration for the project command.
type ProjectConfig struct {
	In       string
	PGDSN    string
	DryRun   bool
	LogLevel string
}

// LoadProject merges config file, environment variables, and flags into
// ProjectConfig.
func LoadProject(cfgFile string, flags *pflag.FlagSet) (ProjectConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"dry-run":   false,
		"log-level": "info",
	})
	if err != nil {
		return ProjectConfig{}, err
	}

	cfg := ProjectConfig{
		In:       v.GetString("in"),
		PGDSN:    v.GetString("pg-dsn"),
		DryRun:   v.GetBool("dry-run"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
