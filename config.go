package pdfextractor

import "runtime"

// Configuration defaults.
const (
	DefaultDPI       = 300
	DefaultLanguages = "eng"
)

// Config holds the processing configuration threaded through every component
// call. It is immutable by convention: built once by the caller, passed by
// value, never ambient.
type Config struct {
	// OutputDir is the base directory under which per-document output
	// directories are created.
	OutputDir string

	// DPI is the rendering resolution.
	DPI int

	// Languages is the transcriber languages spec (e.g., "eng+fra").
	Languages string

	// Concurrency bounds the page worker pool. Zero means NumCPU.
	Concurrency int
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir:   ".",
		DPI:         DefaultDPI,
		Languages:   DefaultLanguages,
		Concurrency: runtime.NumCPU(),
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return Errorf(EINVALID, "output directory required")
	}
	if c.DPI < 1 {
		return Errorf(EINVALID, "dpi must be positive, got %d", c.DPI)
	}
	if c.Languages == "" {
		return Errorf(EINVALID, "languages spec required")
	}
	return nil
}

// WorkerCount resolves the effective worker pool size.
func (c Config) WorkerCount() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}
