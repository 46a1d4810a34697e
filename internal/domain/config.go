package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Keys mirror the settings exposed by the editor integration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings            []string  `toml:"-" yaml:"-"`
	ImgbytesizerPath    string    `toml:"imgbytesizerPath" yaml:"imgbytesizerPath"`       // Executable to invoke (empty = imgbytesizer on PATH)
	DefaultTargetSize   string    `toml:"defaultTargetSize" yaml:"defaultTargetSize"`     // Prefill for the size prompt
	DefaultFormat       string    `toml:"defaultFormat" yaml:"defaultFormat"`             // jpg, jpeg, png, webp or same
	OpenCommand         string    `toml:"openCommand,omitempty" yaml:"openCommand"`       // Command used to open resized images
	Log                 LogConfig `toml:"log" yaml:"log"`                                 // [log] settings
	DefaultMinDimension int       `toml:"defaultMinDimension" yaml:"defaultMinDimension"` // 0 disables --min-dimension
	DefaultExact        bool      `toml:"defaultExact" yaml:"defaultExact"`               // false emits --no-exact
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn, error
}

// Default configuration values.
const (
	DefaultTargetSize = "500KB"
	DefaultLogLevel   = "info"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		DefaultTargetSize: DefaultTargetSize,
		DefaultFormat:     string(FormatSame),
		DefaultExact:      true,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// DefaultResizeOptions returns the options the simple flow applies on top of a chosen size.
func (c *Config) DefaultResizeOptions(targetSize string) ResizeOptions {
	return NewResizeOptions(targetSize, "", ParseFormat(c.DefaultFormat), c.DefaultMinDimension, c.DefaultExact)
}

// Directory and file names for imgresize.
const (
	AppDirName            = "imgresize"       // Directory name under XDG config/state homes
	ConfigFileName        = "config.toml"     // Global config file name
	ProjectConfigFileName = ".imgresize.toml" // Config file name in the project directory
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ProjectConfigPath returns the project config path for a directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// LogPath returns the log file path inside the state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", "imgresize.log")
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// LoadConfigOptions selects which config sources to merge.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

type templateData struct {
	TargetSize   string
	Format       string
	LogLevel     string
	MinDimension int
	Exact        bool
}

// RenderConfigTemplate renders a commented config file seeded with cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	data := templateData{
		TargetSize:   cfg.DefaultTargetSize,
		Format:       cfg.DefaultFormat,
		MinDimension: cfg.DefaultMinDimension,
		Exact:        cfg.DefaultExact,
		LogLevel:     cfg.Log.Level,
	}

	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// The template is embedded and data is always complete.
		panic(err)
	}
	return buf.String()
}
