package domain

import "errors"

// Domain errors.
var (
	ErrToolNotInstalled     = errors.New("imgbytesizer is not installed or not runnable")
	ErrInvalidMinDimension  = errors.New("minimum dimension must be a non-negative integer")
	ErrConfigExists         = errors.New("config file already exists")
	ErrGlobalConfigDisabled = errors.New("global config directory not available")
	ErrNotGitRepository     = errors.New("not a git repository (or any of the parent directories)")
	ErrNoLogFile            = errors.New("no log file")
)
