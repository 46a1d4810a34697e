// Package opener opens files with the user's viewer.
package opener

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/runoshun/imgresize/internal/domain"
)

// Opener launches a viewer for a file without waiting for it.
type Opener struct {
	exec    domain.CommandExecutor
	command string // configured openCommand, may include arguments
	goos    string
}

// New creates an Opener. command overrides the platform default when non-empty.
func New(exec domain.CommandExecutor, command string) *Opener {
	return &Opener{exec: exec, command: command, goos: runtime.GOOS}
}

// Command returns the command that opens path.
// The path is always passed as a separate argument.
func (o *Opener) Command(path string) *domain.ExecCommand {
	if fields := strings.Fields(o.command); len(fields) > 0 {
		args := append(fields[1:len(fields):len(fields)], path)
		return domain.NewCommand(fields[0], args, "")
	}
	switch o.goos {
	case "darwin":
		return domain.NewCommand("open", []string{path}, "")
	case "windows":
		return domain.NewCommand("rundll32", []string{"url.dll,FileProtocolHandler", path}, "")
	default:
		return domain.NewCommand("xdg-open", []string{path}, "")
	}
}

// Open opens path.
func (o *Opener) Open(path string) error {
	cmd := o.Command(path)
	if err := o.exec.Start(cmd); err != nil {
		return fmt.Errorf("open %s with %s: %w", path, cmd.Program, err)
	}
	return nil
}
