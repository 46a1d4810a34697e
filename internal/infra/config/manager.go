package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/imgresize/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectDir    string // Directory holding .imgresize.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/imgresize)
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.getConfigInfo(domain.ProjectConfigPath(m.projectDir))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig creates the project config file with the default template.
func (m *Manager) InitProjectConfig(cfg *domain.Config) error {
	return m.initConfig(domain.ProjectConfigPath(m.projectDir), cfg)
}

// InitGlobalConfig creates the global config file with the default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return domain.ErrGlobalConfigDisabled
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName), cfg)
}

// initConfig creates a config file with default template.
func (m *Manager) initConfig(path string, cfg *domain.Config) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(path, []byte(content), 0o600)
}
