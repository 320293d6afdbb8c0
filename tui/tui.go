// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thumbgrab/thumbgrab/gallery"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// URL pre-fills the form and submits it on start.
	URL string
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(ctx context.Context, options *Options) error {
	session := gallery.NewDefault()
	defer session.Close()

	bubble := newBubble(ctx, session, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
