package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/thumbgrab/thumbgrab/clip"
	"github.com/thumbgrab/thumbgrab/download"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/internal/ui"
	"github.com/thumbgrab/thumbgrab/key"
	"github.com/thumbgrab/thumbgrab/log"
	"github.com/thumbgrab/thumbgrab/open"
	"github.com/thumbgrab/thumbgrab/style"
	"github.com/thumbgrab/thumbgrab/where"
	"github.com/thumbgrab/thumbgrab/youtube"
)

type (
	outcomeMsg struct {
		gallery.Outcome
	}

	copiedMsg struct {
		tier youtube.Tier
		err  error
	}

	// uncopyMsg lowers the copied flag raised by copy number seq.
	uncopyMsg struct {
		seq int
	}

	savedMsg struct {
		path string
		err  error
	}

	openedMsg struct {
		err error
	}
)

const noticeFor = 3 * time.Second

// swapped in tests
var (
	copyURL     = clip.Copy
	save        = download.Save
	startViewer = open.Start
)

// submit starts a new batch for the form value. Invalid links never leave the form.
func (b *statefulBubble) submit() tea.Cmd {
	id, err := youtube.ExtractID(b.inputC.Value())
	ticket, ctx := b.session.Begin(b.ctx, id)
	b.ticket = ticket
	b.inputError = ""

	if err != nil {
		b.inputError = gallery.Outcome{Ticket: ticket, Err: err}.Message()
		return nil
	}

	return tea.Batch(b.startLoading(), b.probe(ctx, ticket))
}

func (b *statefulBubble) probe(ctx context.Context, ticket gallery.Ticket) tea.Cmd {
	session := b.session
	return func() tea.Msg {
		return outcomeMsg{session.Run(ctx, ticket)}
	}
}

// abandon drops the in-flight batch so its outcome is ignored.
func (b *statefulBubble) abandon() {
	b.ticket = gallery.Ticket{}
	b.session.Close()
	b.stopLoading()
}

func (b *statefulBubble) onOutcome(o gallery.Outcome) tea.Cmd {
	if o.Stale || o.Ticket != b.ticket {
		log.Debugf("dropping outcome of submission %d", o.Ticket.Seq)
		return nil
	}

	b.stopLoading()

	switch o.Kind() {
	case gallery.KindOK:
	case gallery.KindProbeFailure:
		log.Error(o.Err)
		b.raiseError(o.Err)
		return nil
	default:
		log.Warn(o.Err)
		b.inputError = o.Message()
		b.previousState()
		return nil
	}

	b.id = o.Ticket.ID
	b.copied = mo.None[youtube.Tier]()

	items := lo.Map(o.Thumbnails(), func(t youtube.Thumbnail, _ int) list.Item {
		return &listItem{internal: t, showURL: b.showURLs}
	})

	b.galleryC.Title = fmt.Sprintf("Available Thumbnails %s", style.Faint(b.id.String()))
	cmd := b.galleryC.SetItems(items)
	b.refreshItems()
	b.galleryC.ResetSelected()
	b.newState(galleryState)
	return cmd
}

// selectedThumbnail is the thumbnail under the gallery cursor.
func (b *statefulBubble) selectedThumbnail() mo.Option[youtube.Thumbnail] {
	item, ok := b.galleryC.SelectedItem().(*listItem)
	if !ok {
		return mo.None[youtube.Thumbnail]()
	}
	return mo.Some(item.internal)
}

func (b *statefulBubble) copySelected() tea.Cmd {
	thumb, ok := b.selectedThumbnail().Get()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return copiedMsg{tier: thumb.Tier, err: copyURL(thumb.URL)}
	}
}

func (b *statefulBubble) onCopied(msg copiedMsg) tea.Cmd {
	if msg.err != nil {
		log.Error(msg.err)
		return ui.NotifyError(clip.FailureMessage, noticeFor)
	}

	b.copiedSeq++
	b.copied = mo.Some(msg.tier)
	b.refreshItems()

	seq := b.copiedSeq
	return tea.Tick(viper.GetDuration(key.TUICopiedFor), func(time.Time) tea.Msg {
		return uncopyMsg{seq: seq}
	})
}

func (b *statefulBubble) onUncopy(msg uncopyMsg) {
	if msg.seq != b.copiedSeq {
		return
	}

	b.copied = mo.None[youtube.Tier]()
	b.refreshItems()
}

// refreshItems pushes the copied flag, palette and width down to the gallery items.
func (b *statefulBubble) refreshItems() {
	tier, copied := b.copied.Get()
	for _, item := range b.galleryC.Items() {
		if item, ok := item.(*listItem); ok {
			item.marked = copied && item.internal.Tier == tier
			item.palette = b.palette()
			// the delegate indents items by two cells plus the selection border
			item.width = b.galleryC.Width() - 4
		}
	}
}

func (b *statefulBubble) downloadSelected() tea.Cmd {
	thumb, ok := b.selectedThumbnail().Get()
	if !ok {
		return nil
	}

	ctx, id, dir := b.ctx, b.id, where.Downloads()
	return tea.Batch(
		ui.Notify(fmt.Sprintf("Downloading %s...", thumb.Tier), noticeFor),
		func() tea.Msg {
			path, err := save(ctx, thumb, id, dir)
			return savedMsg{path: path, err: err}
		},
	)
}

func (b *statefulBubble) onSaved(msg savedMsg) tea.Cmd {
	if msg.err != nil {
		log.Error(msg.err)
		return ui.NotifyError("Download failed: "+msg.err.Error(), noticeFor)
	}
	return ui.Notify("Saved to "+msg.path, noticeFor)
}

func (b *statefulBubble) openSelected() tea.Cmd {
	thumb, ok := b.selectedThumbnail().Get()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return openedMsg{err: startViewer(thumb.URL)}
	}
}

func (b *statefulBubble) onOpened(msg openedMsg) tea.Cmd {
	if msg.err != nil {
		log.Error(msg.err)
		return ui.NotifyError("Could not open the image: "+msg.err.Error(), noticeFor)
	}
	return nil
}

func (b *statefulBubble) toggleTheme() {
	b.dark = !b.dark
	b.applyTheme()
	b.refreshItems()
}
