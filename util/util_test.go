package util

import (
	"regexp"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/thumbgrab/thumbgrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "thumbnail", "thumbnails"), ShouldEqual, "1 thumbnail")
		So(Quantify(5, "thumbnail", "thumbnails"), ShouldEqual, "5 thumbnails")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("downloads"), ShouldEqual, "Downloads")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<tier>\w+)\.(?P<ext>jpg)`)

		Convey("Should map named groups", func() {
			groups := ReGroups(re, "hqdefault.jpg")
			So(groups["tier"], ShouldEqual, "hqdefault")
			So(groups["ext"], ShouldEqual, "jpg")
		})

		Convey("Should return nil without a match", func() {
			So(ReGroups(re, "no image here"), ShouldBeNil)
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("downloads/nested", 0o755))
		lo.Must0(fs.WriteFile("downloads/nested/a.jpg", []byte("jpg"), 0o644))
		lo.Must0(fs.WriteFile("single.jpg", []byte("jpg"), 0o644))

		Convey("Should remove directories recursively", func() {
			So(Delete("downloads"), ShouldBeNil)
			So(lo.Must(fs.Exists("downloads/nested/a.jpg")), ShouldBeFalse)
		})

		Convey("Should remove plain files", func() {
			So(Delete("single.jpg"), ShouldBeNil)
			So(lo.Must(fs.Exists("single.jpg")), ShouldBeFalse)
		})

		Convey("Should report missing paths", func() {
			So(Delete("missing"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("input")
		s.Push("gallery")
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, "gallery")
		So(s.Pop(), ShouldEqual, "input")
		So(s.Pop(), ShouldEqual, "")
	})
}
