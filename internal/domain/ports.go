package domain

import "context"

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- project).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file from the template.
	InitGlobalConfig(cfg *Config) error

	// InitProjectConfig creates the project config file from the template.
	InitProjectConfig(cfg *Config) error
}

// CommandExecutor runs external commands without a shell.
type CommandExecutor interface {
	// Run executes the command and captures stdout and stderr separately.
	// A non-zero exit is reported through ExecResult.ExitCode with a nil error;
	// the error is reserved for processes that could not be started.
	Run(ctx context.Context, cmd *ExecCommand) (*ExecResult, error)

	// Start launches the command without waiting for it to finish.
	Start(cmd *ExecCommand) error
}

// FileSystem provides the filesystem checks the runner relies on.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool

	// MkdirAll creates dir and any missing parents. It succeeds if dir already exists.
	MkdirAll(dir string) error
}

// ActiveFileResolver finds the image the user is currently working on.
type ActiveFileResolver interface {
	// ActiveFile returns the active image path, or "" if there is none.
	ActiveFile() (string, error)
}

// Logger writes diagnostic entries grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all entries.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_, _ string) {}

// Info implements Logger.
func (NopLogger) Info(_, _ string) {}

// Warn implements Logger.
func (NopLogger) Warn(_, _ string) {}

// Error implements Logger.
func (NopLogger) Error(_, _ string) {}
