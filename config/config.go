// Package config resolves where to read Claude Code session logs from
// and where to write report files. Resolution order: command flags,
// then the optional YAML config file, then defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CC_DAILY_REPORTS_CONFIG"

// EnvClaudeConfigDir is Claude Code's own config-dir override; the
// projects directory lives underneath it.
const EnvClaudeConfigDir = "CLAUDE_CONFIG_DIR"

// Config is the optional on-disk configuration.
type Config struct {
	ProjectsDir string `yaml:"projects_dir"`
	OutputDir   string `yaml:"output_dir"`
}

// Load reads the config file if one exists. A missing file yields the
// zero Config; a file that exists but cannot be read or parsed is an
// error.
func Load() (Config, error) {
	path := configPath()
	if path == "" {
		return Config{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveProjectsDir picks the session-log root: an explicit flag
// value, the config file, $CLAUDE_CONFIG_DIR/projects, or
// ~/.claude/projects.
func (c Config) ResolveProjectsDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if c.ProjectsDir != "" {
		return c.ProjectsDir, nil
	}
	if dir := os.Getenv(EnvClaudeConfigDir); dir != "" {
		return filepath.Join(dir, "projects"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "projects"), nil
}

// ResolveOutputDir picks where report files are written: an explicit
// flag value, the config file, or ./daily-reports.
func (c Config) ResolveOutputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return "daily-reports"
}

func configPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cc-daily-reports", "config.yaml")
}
