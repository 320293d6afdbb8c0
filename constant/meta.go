// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Thumbgrab is the canonical application identifier used for filesystem paths and CLI branding.
	Thumbgrab = "thumbgrab"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for existence checks and downloads.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// ImageHost serves the per-tier thumbnail images.
	ImageHost = "img.youtube.com"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
