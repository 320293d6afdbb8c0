// Package mini implements a prompt-driven loop for looking up thumbnails without the full screen interface.
package mini

import (
	"context"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/style"
	"github.com/thumbgrab/thumbgrab/util"
	"github.com/thumbgrab/thumbgrab/youtube"
)

type Options struct {
	// URL is submitted straight away when set.
	URL string
	Out io.Writer
}

type mini struct {
	ctx context.Context
	out io.Writer

	state         state
	statesHistory util.Stack[state]

	session  *gallery.Session
	prompter prompter
	palette  style.Palette

	pending  string
	outcome  gallery.Outcome
	selected youtube.Thumbnail
}

func newMini(ctx context.Context, out io.Writer, session *gallery.Session, p prompter) *mini {
	return &mini{
		ctx:           ctx,
		out:           out,
		statesHistory: util.Stack[state]{},
		session:       session,
		prompter:      p,
		palette:       style.Pick(viper.GetBool(key.TUIDarkMode)),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	session := gallery.NewDefault()
	defer session.Close()

	m := newMini(ctx, options.Out, session, surveyPrompter{})
	m.pending = options.URL
	return m.loop()
}

func (m *mini) loop() error {
	m.state = inputState
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if err == errInterrupted {
				return nil
			}
			return err
		}
	}
	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case inputState:
		return m.handleInputState()
	case thumbnailSelectState:
		return m.handleThumbnailSelectState()
	case actionSelectState:
		return m.handleActionSelectState()
	}

	return nil
}
