package mini

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/thumbgrab/thumbgrab/clip"
	"github.com/thumbgrab/thumbgrab/download"
	"github.com/thumbgrab/thumbgrab/log"
	"github.com/thumbgrab/thumbgrab/open"
	"github.com/thumbgrab/thumbgrab/util"
	"github.com/thumbgrab/thumbgrab/where"
	"github.com/thumbgrab/thumbgrab/youtube"
)

type state int

const (
	inputState state = iota + 1
	thumbnailSelectState
	actionSelectState
	quitState
)

type action struct {
	name string
}

func (a *action) String() string {
	return a.name
}

var (
	copyAction     = &action{"Copy URL"}
	downloadAction = &action{"Download"}
	openAction     = &action{"Open in viewer"}
	back           = &action{"Back"}
	quit           = &action{"Quit"}
)

// swapped in tests
var (
	copyURL     = clip.Copy
	save        = download.Save
	startViewer = open.Start
	progress    = util.PrintErasable
)

const inputHelp = `Leave empty to quit. Accepted links look like
https://www.youtube.com/watch?v=dQw4w9WgXcQ
https://youtu.be/dQw4w9WgXcQ
https://m.youtube.com/watch?v=dQw4w9WgXcQ`

func (m *mini) handleInputState() error {
	raw := m.pending
	m.pending = ""

	if raw == "" {
		m.title("Paste YouTube URL")
		in, err := m.prompter.Input("URL", inputHelp)
		if err != nil {
			return err
		}

		raw = strings.TrimSpace(in)
		if raw == "" {
			m.newState(quitState)
			return nil
		}
	}

	erase := progress("Processing...")
	outcome := m.session.Submit(m.ctx, raw)
	erase()

	if outcome.Err != nil {
		log.Warnf("submission %d: %v", outcome.Ticket.Seq, outcome.Err)
		m.fail(outcome.Message())
		return nil
	}

	m.outcome = outcome
	m.newState(thumbnailSelectState)
	return nil
}

func (m *mini) handleThumbnailSelectState() error {
	thumbs := m.outcome.Thumbnails()

	m.title(fmt.Sprintf("%s for %s", util.Quantify(len(thumbs), "thumbnail", "thumbnails"), m.outcome.Ticket.ID))
	options := lo.Map(thumbs, func(t youtube.Thumbnail, _ int) string {
		return t.Label
	})
	options = append(options, back.String(), quit.String())

	i, err := m.prompter.Select("Thumbnail", options)
	if err != nil {
		return err
	}

	switch {
	case i < len(thumbs):
		m.selected = thumbs[i]
		m.newState(actionSelectState)
	case i == len(thumbs):
		m.previousState()
	default:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handleActionSelectState() error {
	actions := []*action{copyAction, downloadAction, openAction, back, quit}

	m.title(m.selected.Label)
	fmt.Fprintln(m.out, m.selected.URL)

	i, err := m.prompter.Select("Action", lo.Map(actions, func(a *action, _ int) string {
		return a.String()
	}))
	if err != nil {
		return err
	}

	switch actions[i] {
	case copyAction:
		if err := copyURL(m.selected.URL); err != nil {
			log.Error(err)
			m.fail(clip.FailureMessage)
		} else {
			m.success("Copied!")
		}
	case downloadAction:
		path, err := save(m.ctx, m.selected, m.outcome.Ticket.ID, where.Downloads())
		if err != nil {
			log.Error(err)
			m.fail(err.Error())
		} else {
			m.success("Saved to "+path)
		}
	case openAction:
		if err := startViewer(m.selected.URL); err != nil {
			log.Error(err)
			m.fail(err.Error())
		}
	case back:
		m.previousState()
	case quit:
		m.newState(quitState)
	}

	return nil
}
