// Package app provides the dependency injection container for the application.
package app

import (
	"io"

	"github.com/runoshun/imgresize/internal/domain"
	"github.com/runoshun/imgresize/internal/infra/config"
	"github.com/runoshun/imgresize/internal/infra/executor"
	"github.com/runoshun/imgresize/internal/infra/filesystem"
	"github.com/runoshun/imgresize/internal/infra/git"
	"github.com/runoshun/imgresize/internal/infra/logging"
	"github.com/runoshun/imgresize/internal/infra/opener"
	"github.com/runoshun/imgresize/internal/tui"
	"github.com/runoshun/imgresize/internal/usecase"
	"github.com/runoshun/imgresize/internal/usecase/shared"
)

// Config holds the application paths.
type Config struct {
	WorkDir  string // Directory the command was started from
	StateDir string // Directory for logs; empty disables logging
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Executor      domain.CommandExecutor
	FS            domain.FileSystem
	ActiveFile    domain.ActiveFileResolver
	UI            domain.UI
	Logger        domain.Logger

	closer io.Closer

	// Configuration
	Config Config
}

// New creates a Container for workDir. Prompts read from in and draw to out.
func New(workDir string, in io.Reader, out io.Writer) *Container {
	cfg := Config{
		WorkDir:  workDir,
		StateDir: logging.DefaultStateDir(),
	}

	configLoader := config.NewLoader(workDir)
	level := domain.DefaultLogLevel
	if appConfig, err := configLoader.Load(); err == nil {
		level = appConfig.Log.Level
	}
	logger := logging.New(cfg.StateDir, logging.ParseLevel(level))

	c := &Container{
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(workDir),
		Executor:      executor.NewClient(),
		FS:            filesystem.New(),
		ActiveFile:    git.NewClient(workDir),
		Logger:        logger,
		closer:        logger,
		Config:        cfg,
	}
	c.UI = tui.NewHost(in, out, c.OpenFile)
	return c
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	loader domain.ConfigLoader,
	manager domain.ConfigManager,
	exec domain.CommandExecutor,
	fs domain.FileSystem,
	active domain.ActiveFileResolver,
	ui domain.UI,
	logger domain.Logger,
) *Container {
	return &Container{
		ConfigLoader:  loader,
		ConfigManager: manager,
		Executor:      exec,
		FS:            fs,
		ActiveFile:    active,
		UI:            ui,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// OpenFile opens path with the opener from the current config.
func (c *Container) OpenFile(path string) error {
	command := ""
	if cfg, err := c.ConfigLoader.Load(); err == nil {
		command = cfg.OpenCommand
	}
	c.Logger.Debug("open", path)
	return opener.New(c.Executor, command).Open(path)
}

// UseCase factory methods

// ExecutableResolver returns the imgbytesizer path resolver.
func (c *Container) ExecutableResolver() *shared.ExecutableResolver {
	return shared.NewExecutableResolver(c.ConfigLoader, c.Logger)
}

// CheckToolUseCase returns a new CheckTool use case.
func (c *Container) CheckToolUseCase() *usecase.CheckTool {
	return usecase.NewCheckTool(c.Executor, c.ExecutableResolver())
}

// RunResizeUseCase returns a new RunResize use case.
func (c *Container) RunResizeUseCase() *usecase.RunResize {
	return usecase.NewRunResize(c.FS, c.Executor, c.ExecutableResolver(), c.Logger)
}

// ResizeImageUseCase returns a new ResizeImage use case.
func (c *Container) ResizeImageUseCase() *usecase.ResizeImage {
	return usecase.NewResizeImage(
		c.UI,
		c.ActiveFile,
		c.CheckToolUseCase(),
		usecase.NewOptionCollector(c.UI, c.ConfigLoader),
		c.RunResizeUseCase(),
		c.Logger,
	)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.StateDir)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
