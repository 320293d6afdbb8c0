// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
package icon

import (
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get retrieves the representation for the configured icons variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Copy
	Download
	Image
	Link
)

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "✓", squares: "▣"},
	Fail:     {emoji: "❌", nerd: "", plain: "✗", squares: "▢"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", squares: "◫"},
	Copy:     {emoji: "📋", nerd: "", plain: "⧉", squares: "◰"},
	Download: {emoji: "💾", nerd: "", plain: "↓", squares: "◲"},
	Image:    {emoji: "🖼", nerd: "", plain: "▭", squares: "■"},
	Link:     {emoji: "🔗", nerd: "", plain: "→", squares: "◳"},
}

// Get returns the rendered string for the specified icon.
func Get(i Icon) string {
	return icons[i].Get()
}
