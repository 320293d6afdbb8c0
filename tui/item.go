package tui

import (
	"fmt"

	"github.com/thumbgrab/thumbgrab/icon"
	"github.com/thumbgrab/thumbgrab/style"
	"github.com/thumbgrab/thumbgrab/youtube"
)

// listItem implements list.Item for one thumbnail.
type listItem struct {
	internal youtube.Thumbnail
	// marked while the copied flag is up
	marked  bool
	showURL bool

	palette style.Palette
	width   int
}

func (t *listItem) getMark() string {
	return style.Fg(t.palette.Success)(icon.Get(icon.Copy) + " Copied!")
}

func (t *listItem) Title() string {
	title := t.internal.Label
	if t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}
	return title
}

func (t *listItem) Description() string {
	if !t.showURL {
		return t.internal.Tier.File()
	}

	if t.width > 0 {
		return style.Truncate(t.width)(t.internal.URL)
	}
	return t.internal.URL
}

func (t *listItem) FilterValue() string {
	return t.internal.Label
}
