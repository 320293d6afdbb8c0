package mini

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/youtube"
)

type scriptedPrompter struct {
	inputs  []string
	choices []int
}

func (p *scriptedPrompter) Input(string, string) (string, error) {
	if len(p.inputs) == 0 {
		return "", errInterrupted
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func (p *scriptedPrompter) Select(_ string, options []string) (int, error) {
	if len(p.choices) == 0 {
		return 0, errInterrupted
	}
	i := p.choices[0]
	p.choices = p.choices[1:]
	if i < 0 {
		i += len(options)
	}
	return i, nil
}

type stubProber struct {
	exists []youtube.Tier
}

func (s stubProber) Probe(_ context.Context, id youtube.VideoID) (*youtube.Result, error) {
	result := &youtube.Result{ID: id, Thumbnails: youtube.Candidates("img.test", id)}
	for i := range result.Thumbnails {
		for _, tier := range s.exists {
			if result.Thumbnails[i].Tier == tier {
				result.Thumbnails[i].Exists = true
			}
		}
	}
	if len(result.Available()) == 0 {
		return result, youtube.ErrNoThumbnails
	}
	return result, nil
}

func TestMini(t *testing.T) {
	Convey("Given a mini session", t, func() {
		var copied string
		originalCopy, originalProgress := copyURL, progress
		defer func() { copyURL, progress = originalCopy, originalProgress }()

		copyURL = func(text string) error {
			copied = text
			return nil
		}
		progress = func(string) func() { return func() {} }

		var out bytes.Buffer
		prompter := &scriptedPrompter{}
		session := gallery.NewSession(stubProber{exists: []youtube.Tier{youtube.TierHigh, youtube.TierDefault}})
		m := newMini(context.Background(), &out, session, prompter)

		Convey("A link, a thumbnail and the copy action put the address on the clipboard", func() {
			prompter.inputs = []string{"https://youtu.be/dQw4w9WgXcQ"}
			prompter.choices = []int{1, 0, -1}

			So(m.loop(), ShouldBeNil)
			So(copied, ShouldEqual, "https://img.test/vi/dQw4w9WgXcQ/default.jpg")
			So(out.String(), ShouldContainSubstring, "2 thumbnails for dQw4w9WgXcQ")
			So(out.String(), ShouldContainSubstring, "Copied!")
		})

		Convey("An invalid link prints the message and asks again", func() {
			prompter.inputs = []string{"not a url", ""}

			So(m.loop(), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, gallery.MessageInvalidInput)
			So(m.state, ShouldEqual, quitState)
		})

		Convey("Back returns to the previous prompt", func() {
			m.pending = "https://youtu.be/dQw4w9WgXcQ"
			prompter.choices = []int{0, 3, 2}
			prompter.inputs = []string{""}

			So(m.loop(), ShouldBeNil)
			So(copied, ShouldBeEmpty)
		})

		Convey("A failed copy falls back to the manual message", func() {
			copyURL = func(string) error { return errors.New("no clipboard") }
			m.pending = "https://youtu.be/dQw4w9WgXcQ"
			prompter.choices = []int{0, 0, -1}

			So(m.loop(), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Failed to copy URL. Please try manually.")
		})

		Convey("Interrupting a prompt ends the loop quietly", func() {
			So(m.loop(), ShouldBeNil)
		})
	})
}
