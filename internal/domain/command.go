package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details. Program and Args are
// passed to the process as-is; no shell is involved.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewCommand creates a new ExecCommand.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// ExecResult holds the captured output of a finished command.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ResizeCommand returns the imgbytesizer invocation for imagePath and opts.
func ResizeCommand(executable, imagePath string, opts ResizeOptions) *ExecCommand {
	return NewCommand(executable, BuildArguments(imagePath, opts), "")
}

// VersionCommand returns the version probe used to check that imgbytesizer is installed.
func VersionCommand(executable string) *ExecCommand {
	return NewCommand(executable, []string{"-v"}, "")
}
