// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 14

// Existence Probing - these keys govern how candidate thumbnail addresses are built and checked.
const (
	ProbeHost = "probe.host"
)

// Network Client - these keys tune the shared HTTP client.
const (
	NetworkTimeout           = "network.timeout"
	NetworkUserAgent         = "network.user_agent"
	NetworkChromeFingerprint = "network.chrome_fingerprint"
)

// Downloads - these keys control where saved thumbnails land.
const (
	DownloadsPath = "downloads.path"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIDarkMode     = "tui.dark_mode"
	TUICopiedFor    = "tui.copied_for"
	TUIShowURLs     = "tui.show_urls"
	TUIShowTutorial = "tui.show_tutorial"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
