// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/imgresize/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .imgresize.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/imgresize)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default <- global <- project).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
// Missing files are skipped; values in later sources take precedence.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if !opts.IgnoreGlobal && l.globalConfDir != "" {
		path := filepath.Join(l.globalConfDir, domain.ConfigFileName)
		if err := l.applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreProject && l.projectDir != "" {
		if err := l.applyFile(cfg, domain.ProjectConfigPath(l.projectDir)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// applyFile merges the file at path into cfg. A missing file is not an error.
func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	applyRaw(cfg, raw)
	return nil
}

// applyRaw overlays the keys present in raw onto cfg and collects warnings
// for unknown keys and values of the wrong type.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	for _, key := range sortedKeys(raw) {
		value := raw[key]
		switch key {
		case "imgbytesizerPath":
			setString(cfg, key, value, &cfg.ImgbytesizerPath)
		case "defaultTargetSize":
			var s string
			if setString(cfg, key, value, &s) {
				if domain.IsValidTargetSize(s) {
					cfg.DefaultTargetSize = s
				} else {
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid defaultTargetSize %q, using %s", s, cfg.DefaultTargetSize))
				}
			}
		case "defaultFormat":
			var s string
			if setString(cfg, key, value, &s) {
				if domain.Format(s).IsValid() {
					cfg.DefaultFormat = s
				} else {
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid defaultFormat %q, using %s", s, cfg.DefaultFormat))
				}
			}
		case "defaultMinDimension":
			if n, ok := toInt(value); ok && n >= 0 {
				cfg.DefaultMinDimension = n
			} else {
				cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid defaultMinDimension %v, using %d", value, cfg.DefaultMinDimension))
			}
		case "defaultExact":
			if b, ok := value.(bool); ok {
				cfg.DefaultExact = b
			} else {
				cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid defaultExact %v, expected true or false", value))
			}
		case "openCommand":
			setString(cfg, key, value, &cfg.OpenCommand)
		case "log":
			m, ok := value.(map[string]any)
			if !ok {
				cfg.Warnings = append(cfg.Warnings, "[log] must be a table")
				continue
			}
			for _, k := range sortedKeys(m) {
				switch k {
				case "level":
					var s string
					if setString(cfg, "[log] level", m[k], &s) {
						if validLogLevels[s] {
							cfg.Log.Level = s
						} else {
							cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid [log] level %q, using %s", s, cfg.Log.Level))
						}
					}
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key: %s", key))
		}
	}
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func setString(cfg *domain.Config, key string, value any, dst *string) bool {
	s, ok := value.(string)
	if !ok {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s must be a string", key))
		return false
	}
	*dst = s
	return true
}

// toInt converts TOML numbers to int. Floats are accepted only when integral.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}
