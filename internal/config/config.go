// Package config builds the immutable per-run scan configuration from
// defaults, optional YAML config files and CLI flags. Precedence is
// CLI > repo-local file > global file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/keyhound/keyhound/internal/patterns"
)

// DefaultEntropyThreshold is the minimum bits-per-character score a
// generic high-entropy match needs to be reported.
const DefaultEntropyThreshold = 3.5

// ScanConfig is read-only once a run starts.
type ScanConfig struct {
	Patterns         patterns.Registry
	IgnoreFragments  []string
	EntropyThreshold float64
	MaxBytes         int64
	Threads          int
}

// FileConfig is the on-disk YAML configuration shape (.keyhound.yml).
type FileConfig struct {
	Patterns         *string  `yaml:"patterns"`
	Ignore           *string  `yaml:"ignore"`
	EntropyThreshold *float64 `yaml:"entropy_threshold"`
	MaxBytes         *int64   `yaml:"max_bytes"`
	Threads          *int     `yaml:"threads"`
	JSON             *bool    `yaml:"json"`
	OutputFile       *string  `yaml:"output_file"`
	NoColor          *bool    `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .keyhound.yml/.yaml and keyhound.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".keyhound.yml", ".keyhound.yaml", "keyhound.yml", "keyhound.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or
// ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "keyhound", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// ParseIgnoreList splits a comma-separated ignore list into fragments,
// dropping empties.
func ParseIgnoreList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// PickString returns the first non-empty of CLI value, local and global
// config.
func PickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

// PickInt returns the first non-zero of CLI value, local and global config.
func PickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

// PickInt64 returns the first non-zero of CLI value, local and global
// config.
func PickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

// PickFloat returns the first non-zero of CLI value, local and global
// config.
func PickFloat(cli float64, local, global *float64) float64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

// PickBool returns the CLI value unless it is false and a config file
// provides one.
func PickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
