package youtube

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtractID(t *testing.T) {
	const want = VideoID("dQw4w9WgXcQ")

	Convey("Given links of every recognised shape", t, func() {
		links := []string{
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
			"https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"https://www.youtube.com/v/dQw4w9WgXcQ?version=3",
			"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			"https://www.youtube.com/user/someone#p/u/1/dQw4w9WgXcQ",
			"https://www.youtube.com/shorts/dQw4w9WgXcQ",
			"https://www.youtube.com/live/dQw4w9WgXcQ?si=abc",
			"https://youtu.be/dQw4w9WgXcQ?t=42",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123#t=1",
		}

		for _, link := range links {
			Convey("It extracts the same identifier from "+link, func() {
				id, err := ExtractID(link)
				So(err, ShouldBeNil)
				So(id, ShouldEqual, want)
			})
		}

		Convey("Eleven multibyte characters count as eleven", func() {
			id, err := ExtractID("https://youtu.be/ééééééééééé")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, VideoID("ééééééééééé"))
		})

		Convey("Surrounding whitespace is discarded", func() {
			id, err := ExtractID("  \thttps://youtu.be/dQw4w9WgXcQ \n")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, want)
		})
	})

	Convey("Given input without an 11-character segment", t, func() {
		inputs := map[string]string{
			"plain text":             "not a url",
			"empty":                  "",
			"whitespace":             "   ",
			"short id":               "https://youtu.be/abc",
			"long id":                "https://youtu.be/dQw4w9WgXcQextra",
			"empty watch":            "https://www.youtube.com/watch?v=",
			"bare id":                "dQw4w9WgXcQ",
			"unrelated host":         "https://example.com/video/123",
			"trailing slash":         "https://youtu.be/dQw4w9WgXcQ/",
			"channel page":           "https://www.youtube.com/@someone",
			"playlist only":          "https://www.youtube.com/playlist?list=PL123",
			"11 bytes, 9 characters": "https://youtu.be/ééabcdefg",
		}

		for name, input := range inputs {
			Convey("It fails cleanly for "+name, func() {
				id, err := ExtractID(input)
				So(err, ShouldEqual, ErrInvalidURL)
				So(id, ShouldBeEmpty)
			})
		}
	})
}

func TestVideoID(t *testing.T) {
	Convey("VideoID", t, func() {
		So(VideoID("dQw4w9WgXcQ").Valid(), ShouldBeTrue)
		So(VideoID("dQw4w9WgXc").Valid(), ShouldBeFalse)
		So(VideoID("").Valid(), ShouldBeFalse)
		So(VideoID("ééabcdefg").Valid(), ShouldBeFalse)
		So(VideoID("ééééééééééé").Valid(), ShouldBeTrue)
		So(VideoID("dQw4w9WgXcQ").String(), ShouldEqual, "dQw4w9WgXcQ")
	})
}
