package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/internal/ui"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/style"
	"github.com/thumbgrab/thumbgrab/util"
	"github.com/thumbgrab/thumbgrab/youtube"
)

// statefulBubble holds the form, the gallery and the navigation between them.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	busy          bool

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	galleryC list.Model
	helpC    help.Model

	ctx     context.Context
	session *gallery.Session
	ticket  gallery.Ticket

	// inputError is shown under the form until the next submission.
	inputError string
	lastError  error

	id youtube.VideoID

	copied    mo.Option[youtube.Tier]
	copiedSeq int

	showTutorial bool
	showURLs     bool
	// dark selects the palette for this bubble only
	dark bool

	width, height int
	notifier      *ui.Model

	options *Options
}

// raiseError moves to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState records the current state in the history unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	b.galleryC.SetSize(width-xx, height-yy)
	b.galleryC.Help.Width = width - xx

	b.inputC.Width = width - x - lipgloss.Width(b.inputC.Prompt) - 1

	b.width = width - x
	b.height = height - y
	b.helpC.Width = width - xx

	b.refreshItems()
}

func (b *statefulBubble) palette() style.Palette {
	return style.Pick(b.dark)
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.busy = true
	b.newState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.busy = false
}

func (b *statefulBubble) makeDelegate() list.DefaultDelegate {
	p := b.palette()

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(1)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Accent).
		Foreground(p.Accent).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(p.Subtext)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(p.Text)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(p.Overlay)
	return delegate
}

// applyTheme restyles the components after a palette switch.
func (b *statefulBubble) applyTheme() {
	p := b.palette()

	b.galleryC.SetDelegate(b.makeDelegate())
	b.galleryC.Styles.Title = lipgloss.NewStyle().Foreground(p.Base).Background(p.Accent).Padding(0, 1)
	b.spinnerC.Style = lipgloss.NewStyle().Foreground(p.Accent)
	b.inputC.PromptStyle = lipgloss.NewStyle().Foreground(p.Accent)
	b.inputC.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Overlay)
}

func newBubble(ctx context.Context, session *gallery.Session, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           ctx,
		session:       session,
		showTutorial:  viper.GetBool(key.TUIShowTutorial),
		showURLs:      viper.GetBool(key.TUIShowURLs),
		dark:          viper.GetBool(key.TUIDarkMode),
		notifier:      &ui.Model{},
		options:       options,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Paste YouTube URL here..."
	bubble.inputC.Prompt = "> "
	bubble.inputC.CharLimit = 2048

	bubble.galleryC = list.New([]list.Item{}, bubble.makeDelegate(), 0, 0)
	bubble.galleryC.KeyMap = keymap.forList()
	bubble.galleryC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.galleryC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.galleryC.Title = "Available Thumbnails"
	bubble.galleryC.Styles.NoItems = paddingStyle
	bubble.galleryC.StatusMessageLifetime = time.Second * 3
	bubble.galleryC.SetShowPagination(false)
	bubble.galleryC.SetFilteringEnabled(false)
	bubble.galleryC.SetStatusBarItemName("thumbnail", "thumbnails")

	bubble.applyTheme()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(inputState)
	bubble.inputC.Focus()

	return &bubble
}
