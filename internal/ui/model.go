// Package ui holds the transient notification line shown under the main view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thumbgrab/thumbgrab/style"
)

// Notice is a short message that disappears after a while.
type Notice struct {
	Text  string
	Error bool
	For   time.Duration
}

// clearMsg carries the id of the notice it clears, so a late tick never
// wipes a newer notice.
type clearMsg struct {
	id int
}

// Model displays at most one notice at a time.
type Model struct {
	notice Notice
	id     int
}

// Notify returns a command that shows text for d.
func Notify(text string, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		return Notice{Text: text, For: d}
	}
}

// NotifyError is Notify with error styling.
func NotifyError(text string, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		return Notice{Text: text, Error: true, For: d}
	}
}

// Update handles Notice and its clearing tick. Other messages are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notice:
		m.id++
		m.notice = msg
		id := m.id
		return tea.Tick(msg.For, func(time.Time) tea.Msg {
			return clearMsg{id: id}
		})
	case clearMsg:
		if msg.id == m.id {
			m.notice = Notice{}
		}
	}
	return nil
}

// Active returns the displayed text, empty when nothing is shown.
func (m *Model) Active() string {
	return m.notice.Text
}

// View appends the notice to the last line of content, colored from p.
func (m *Model) View(content string, p style.Palette) string {
	if m.notice.Text == "" {
		return content
	}

	render := style.Faint
	if m.notice.Error {
		render = style.Fg(p.Error)
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + render(m.notice.Text)
	return strings.Join(lines, "\n")
}
