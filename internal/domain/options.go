package domain

// Format is an output format understood by imgbytesizer.
type Format string

// Output formats.
const (
	FormatSame Format = "same" // keep the input's format
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// IsValid returns true if the format is one of the recognized formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatSame, FormatJPG, FormatJPEG, FormatPNG, FormatWebP:
		return true
	}
	return false
}

// ParseFormat converts a configuration value into a Format.
// Unknown or empty values fall back to FormatSame.
func ParseFormat(s string) Format {
	f := Format(s)
	if !f.IsValid() {
		return FormatSame
	}
	return f
}

// ResizeOptions holds everything needed to build an imgbytesizer invocation.
// Zero values mean "not set": empty OutputPath and Format, zero MinDimension
// and nil ExactSize all leave the corresponding flag off.
// Fields are ordered to minimize memory padding.
type ResizeOptions struct {
	ExactSize    *bool  // nil or true pads to the exact size, false emits --no-exact
	TargetSize   string // e.g. "500KB"; validated before construction
	OutputPath   string // empty = derived from the input path
	Format       Format // empty = keep the input format
	MinDimension int    // 0 = no minimum
}

// NewResizeOptions builds normalized options.
// FormatSame becomes an empty format and a non-positive minDimension is dropped,
// so BuildArguments can trust its input.
func NewResizeOptions(targetSize, outputPath string, format Format, minDimension int, exact bool) ResizeOptions {
	opts := ResizeOptions{
		TargetSize: targetSize,
		OutputPath: outputPath,
	}
	if format != FormatSame && format.IsValid() {
		opts.Format = format
	}
	if minDimension > 0 {
		opts.MinDimension = minDimension
	}
	if !exact {
		opts.ExactSize = &exact
	}
	return opts
}

// ExecutionResult is the outcome of one imgbytesizer run.
// OutputPath is set only when Success is true.
type ExecutionResult struct {
	Message    string
	OutputPath string
	Success    bool
}

// Failed creates a failed result.
func Failed(message string) ExecutionResult {
	return ExecutionResult{Message: message}
}

// Succeeded creates a successful result.
func Succeeded(message, outputPath string) ExecutionResult {
	return ExecutionResult{Success: true, Message: message, OutputPath: outputPath}
}
