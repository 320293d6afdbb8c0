package style

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPalette(t *testing.T) {
	Convey("Pick", t, func() {
		So(Pick(true), ShouldResemble, Dark)
		So(Pick(false), ShouldResemble, Light)
	})

	Convey("Renderers keep the text", t, func() {
		for _, p := range []Palette{Dark, Light} {
			So(p.Title("Gallery"), ShouldContainSubstring, "Gallery")
			So(p.ErrorTitle("Error"), ShouldContainSubstring, "Error")
			So(p.Hi("hqdefault"), ShouldContainSubstring, "hqdefault")
			So(p.Panel().Render("body"), ShouldContainSubstring, "body")
		}
		So(Tag(Dark.Base, Dark.Second)("sddefault"), ShouldContainSubstring, "sddefault")
		So(Italic("footer"), ShouldContainSubstring, "footer")
	})
}

func TestTruncate(t *testing.T) {
	Convey("Truncate", t, func() {
		long := "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"

		Convey("Cuts lines wider than the limit", func() {
			out := Truncate(20)(long)
			So(lipgloss.Width(out), ShouldEqual, 20)
			So(strings.HasPrefix(long, out), ShouldBeTrue)
		})

		Convey("Leaves short lines alone", func() {
			So(Truncate(100)("default"), ShouldEqual, "default")
		})
	})
}
