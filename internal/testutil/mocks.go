// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/runoshun/imgresize/internal/domain"
)

// MockExecutor is a test double for domain.CommandExecutor.
// Version probes (a single "-v" argument) and resize runs are scripted separately.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	VersionResult *domain.ExecResult
	VersionErr    error
	ResizeResult  *domain.ExecResult
	ResizeErr     error
	StartErr      error
	// OnResize is called before a resize run returns, e.g. to create the output file.
	OnResize func(cmd *domain.ExecCommand)
	Runs     []*domain.ExecCommand
	Started  []*domain.ExecCommand
}

// NewMockExecutor creates a MockExecutor where every command exits 0.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		VersionResult: &domain.ExecResult{Stdout: "imgbytesizer 0.3.0\n"},
		ResizeResult:  &domain.ExecResult{},
	}
}

// Run records the command and returns the scripted result.
func (m *MockExecutor) Run(_ context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	m.Runs = append(m.Runs, cmd)
	if len(cmd.Args) == 1 && cmd.Args[0] == "-v" {
		if m.VersionErr != nil {
			return nil, m.VersionErr
		}
		return m.VersionResult, nil
	}
	if m.ResizeErr != nil {
		return nil, m.ResizeErr
	}
	if m.OnResize != nil {
		m.OnResize(cmd)
	}
	return m.ResizeResult, nil
}

// Start records the command.
func (m *MockExecutor) Start(cmd *domain.ExecCommand) error {
	if m.StartErr != nil {
		return m.StartErr
	}
	m.Started = append(m.Started, cmd)
	return nil
}

// ResizeRuns returns recorded runs other than version probes.
func (m *MockExecutor) ResizeRuns() []*domain.ExecCommand {
	var runs []*domain.ExecCommand
	for _, r := range m.Runs {
		if len(r.Args) == 1 && r.Args[0] == "-v" {
			continue
		}
		runs = append(runs, r)
	}
	return runs
}

// MockFileSystem is a test double for domain.FileSystem.
type MockFileSystem struct {
	Paths    map[string]bool
	MkdirErr error
	Created  []string
}

// NewMockFileSystem creates a MockFileSystem containing paths.
func NewMockFileSystem(paths ...string) *MockFileSystem {
	m := &MockFileSystem{Paths: make(map[string]bool)}
	for _, p := range paths {
		m.Add(p)
	}
	return m
}

// Add marks path and its parent directories as existing.
func (m *MockFileSystem) Add(path string) {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		m.Paths[p] = true
		if parent := filepath.Dir(p); parent == p {
			return
		}
	}
}

// Exists reports whether path was added.
func (m *MockFileSystem) Exists(path string) bool {
	return m.Paths[filepath.Clean(path)]
}

// MkdirAll records the directory and marks it as existing.
func (m *MockFileSystem) MkdirAll(dir string) error {
	if m.MkdirErr != nil {
		return m.MkdirErr
	}
	m.Created = append(m.Created, dir)
	m.Add(dir)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
	Calls   int
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	m.Calls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadWithOptions returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(_ domain.LoadConfigOptions) (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr           error
	GlobalConfigInfo  domain.ConfigInfo
	ProjectConfigInfo domain.ConfigInfo
	GlobalInitCalled  bool
	ProjectInitCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		GlobalConfigInfo:  domain.ConfigInfo{Path: "/home/test/.config/imgresize/config.toml"},
		ProjectConfigInfo: domain.ConfigInfo{Path: "/work/.imgresize.toml"},
	}
}

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// GetProjectConfigInfo returns the configured info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.GlobalInitCalled = true
	return m.InitErr
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(_ *domain.Config) error {
	m.ProjectInitCalled = true
	return m.InitErr
}

// MockActiveFile is a test double for domain.ActiveFileResolver.
type MockActiveFile struct {
	Err  error
	Path string
}

// ActiveFile returns the configured path.
func (m *MockActiveFile) ActiveFile() (string, error) {
	return m.Path, m.Err
}

// LogEntry is a recorded log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log entries.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// HasLevel reports whether any entry has the given level.
func (m *MockLogger) HasLevel(level string) bool {
	return slices.ContainsFunc(m.Entries, func(e LogEntry) bool { return e.Level == level })
}

// Answer is a scripted response to a prompt.
type Answer struct {
	Value string
	OK    bool
}

// Choose answers a prompt with value.
func Choose(value string) Answer {
	return Answer{Value: value, OK: true}
}

// Dismiss answers a prompt by cancelling it.
func Dismiss() Answer {
	return Answer{}
}

// PickCall records a PickOne invocation.
type PickCall struct {
	Title string
	Items []domain.PickItem
}

// MockUI is a scripted test double for domain.UI.
// Picks and Texts are consumed in order; an exhausted queue behaves like a
// dismissed prompt. Text answers rejected by the prompt's Validate are
// recorded in Rejected and the next answer is used, as a real prompt would
// keep asking.
// Fields are ordered to minimize memory padding.
type MockUI struct {
	PickErr        error
	TextErr        error
	ProgressErr    error
	OpenErr        error
	NotifyAction   string
	Picks          []Answer
	Texts          []Answer
	PickCalls      []PickCall
	TextCalls      []domain.TextPrompt
	Rejected       []string
	Notifications  []domain.Notification
	ProgressTitles []string
	Opened         []string
}

// NewMockUI creates a MockUI.
func NewMockUI() *MockUI {
	return &MockUI{}
}

// PickOne returns the next scripted pick.
func (m *MockUI) PickOne(_ context.Context, title string, items []domain.PickItem) (string, bool, error) {
	m.PickCalls = append(m.PickCalls, PickCall{Title: title, Items: items})
	if m.PickErr != nil {
		return "", false, m.PickErr
	}
	if len(m.Picks) == 0 {
		return "", false, nil
	}
	a := m.Picks[0]
	m.Picks = m.Picks[1:]
	return a.Value, a.OK, nil
}

// PromptText returns the next scripted text accepted by the prompt's validator.
func (m *MockUI) PromptText(_ context.Context, prompt domain.TextPrompt) (string, bool, error) {
	m.TextCalls = append(m.TextCalls, prompt)
	if m.TextErr != nil {
		return "", false, m.TextErr
	}
	for len(m.Texts) > 0 {
		a := m.Texts[0]
		m.Texts = m.Texts[1:]
		if !a.OK {
			return "", false, nil
		}
		if prompt.Validate != nil && prompt.Validate(a.Value) != "" {
			m.Rejected = append(m.Rejected, a.Value)
			continue
		}
		return a.Value, true, nil
	}
	return "", false, nil
}

// WithProgress records the title and runs task.
func (m *MockUI) WithProgress(ctx context.Context, title string, task func(ctx context.Context) error) error {
	m.ProgressTitles = append(m.ProgressTitles, title)
	if m.ProgressErr != nil {
		return m.ProgressErr
	}
	return task(ctx)
}

// Notify records the notification and returns NotifyAction if it is offered.
func (m *MockUI) Notify(_ context.Context, n domain.Notification) (string, error) {
	m.Notifications = append(m.Notifications, n)
	if slices.Contains(n.Actions, m.NotifyAction) {
		return m.NotifyAction, nil
	}
	return "", nil
}

// OpenFile records the path.
func (m *MockUI) OpenFile(_ context.Context, path string) error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.Opened = append(m.Opened, path)
	return nil
}

// Interface checks.
var (
	_ domain.CommandExecutor    = (*MockExecutor)(nil)
	_ domain.FileSystem         = (*MockFileSystem)(nil)
	_ domain.ConfigLoader       = (*MockConfigLoader)(nil)
	_ domain.ConfigManager      = (*MockConfigManager)(nil)
	_ domain.ActiveFileResolver = (*MockActiveFile)(nil)
	_ domain.Logger             = (*MockLogger)(nil)
	_ domain.UI                 = (*MockUI)(nil)
)
