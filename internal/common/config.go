package common

// Config holds all application configuration. Values arrive already parsed
// from the CLI layer; the pipeline never reads flags or environment itself.
type Config struct {
	// InputDir is the directory scanned for source images.
	InputDir string
	// OutputPath is the requested XLSX destination, before timestamping.
	OutputPath string
	// ThumbSize is the thumbnail bounding box in pixels, applied to both axes.
	ThumbSize int
	// Timestamped appends a YYYYMMDD_HHMMSS suffix to the output filename.
	Timestamped bool
	// Recursive includes images from subdirectories.
	Recursive bool
}

// Validate checks the loaded configuration before any side effect occurs.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return NewAppError("CONFIG_ERROR", "input directory is required", ErrInvalidInput)
	}
	if c.OutputPath == "" {
		return NewAppError("CONFIG_ERROR", "output path is required", ErrInvalidInput)
	}
	if c.ThumbSize <= 0 {
		return NewAppError("CONFIG_ERROR", "thumb-size must be a positive number of pixels", ErrInvalidInput)
	}
	return nil
}
