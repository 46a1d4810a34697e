package domain

import "strings"

// DefaultExecutable is the bare command name looked up on PATH.
const DefaultExecutable = "imgbytesizer"

var shellMetachars = strings.NewReplacer(";", "", "&", "", "|", "", "`", "", "$", "")

// SanitizeExecutablePath turns a configured executable path into one that is safe to run.
//
// Shell metacharacters are stripped. What remains must be the bare default command,
// an absolute path or an explicit "./" relative path; anything else is rejected and
// DefaultExecutable is returned with rejected set.
func SanitizeExecutablePath(raw string) (path string, rejected bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultExecutable, false
	}
	cleaned := strings.TrimSpace(shellMetachars.Replace(trimmed))
	if cleaned == "" {
		return DefaultExecutable, true
	}
	if cleaned == DefaultExecutable ||
		strings.HasPrefix(cleaned, "/") ||
		strings.HasPrefix(cleaned, "./") {
		return cleaned, false
	}
	return DefaultExecutable, true
}
