package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm, submit,
	zoom, copyURL, download, openURL,
	theme, tutorial,
	back,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "get thumbnails"),
		),
		zoom: key.NewBinding(
			key.WithKeys("z", "enter"),
			key.WithHelp("z", "zoom"),
		),
		copyURL: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy url"),
		),
		download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		theme: key.NewBinding(
			key.WithKeys("t", "ctrl+t"),
			key.WithHelp("t", "theme"),
		),
		tutorial: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "how to use"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case inputState:
		themeKey := withHelpKey(k.theme, "ctrl+t")
		tutorialKey := withHelpKey(k.tutorial, "f1")
		return to2(h(k.submit, themeKey, tutorialKey, k.forceQuit))
	case loadingState:
		return to2(h(k.back, k.forceQuit))
	case galleryState:
		return h(k.zoom, k.copyURL, k.download, k.back), h(k.zoom, k.copyURL, k.download, k.openURL, k.theme, k.back, k.quit)
	case detailState:
		return to2(h(k.copyURL, k.download, k.openURL, k.theme, k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:      k.up,
		CursorDown:    k.down,
		NextPage:      k.right,
		PrevPage:      k.left,
		GoToStart:     k.top,
		GoToEnd:       k.bottom,
		ShowFullHelp:  k.showHelp,
		CloseFullHelp: k.showHelp,
		Quit:          k.quit,
		ForceQuit:     k.forceQuit,
	}
}

// withHelpKey keeps the bindings but advertises a different key.
func withHelpKey(k key.Binding, helpKey string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(helpKey, k.Help().Desc),
	)
}
