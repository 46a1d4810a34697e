package domain

import "strconv"

// BuildArguments returns the imgbytesizer argument vector for imagePath and opts.
//
// Order is fixed: image, size, then -o, -f, --min-dimension and --no-exact when set.
// Options are trusted as normalized (see NewResizeOptions); nothing is validated,
// quoted or escaped here because the vector is passed to the process directly.
func BuildArguments(imagePath string, opts ResizeOptions) []string {
	args := []string{imagePath, opts.TargetSize}
	if opts.OutputPath != "" {
		args = append(args, "-o", opts.OutputPath)
	}
	if opts.Format != "" && opts.Format != FormatSame {
		args = append(args, "-f", string(opts.Format))
	}
	if opts.MinDimension > 0 {
		args = append(args, "--min-dimension", strconv.Itoa(opts.MinDimension))
	}
	if opts.ExactSize != nil && !*opts.ExactSize {
		args = append(args, "--no-exact")
	}
	return args
}
