package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/thumbgrab/thumbgrab/filesystem"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/network"
	"github.com/thumbgrab/thumbgrab/youtube"
)

const link = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// imageHost serves the listed tier files and 404s the rest.
func imageHost(files ...string) *httptest.Server {
	return httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, file := range files {
			if strings.HasSuffix(r.URL.Path, "/"+file+".jpg") {
				_, _ = w.Write([]byte(file))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func TestRun(t *testing.T) {
	Convey("Given an image host with two tiers", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		server := imageHost("hqdefault", "default")
		defer server.Close()

		original := network.Client
		network.Client = server.Client()
		defer func() { network.Client = original }()

		prober := youtube.NewProber(server.Client(), strings.TrimPrefix(server.URL, "https://"))
		session := gallery.NewSession(prober)
		defer session.Close()

		var out bytes.Buffer
		options := &Options{Out: &out, URL: link, Session: mo.Some(session)}

		Convey("Plain output lists the existing addresses", func() {
			So(Run(context.Background(), options), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			So(lines, ShouldHaveLength, 2)
			So(lines[0], ShouldEndWith, "/vi/dQw4w9WgXcQ/hqdefault.jpg")
			So(lines[1], ShouldEndWith, "/vi/dQw4w9WgXcQ/default.jpg")
		})

		Convey("All keeps absent candidates with their presence", func() {
			options.All = true
			So(Run(context.Background(), options), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			So(lines, ShouldHaveLength, 5)
			So(lines[0], ShouldStartWith, "maxresdefault\tabsent\t")
			So(lines[2], ShouldStartWith, "hqdefault\texists\t")
		})

		Convey("Json output carries the identifier and thumbnails", func() {
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.URL, ShouldEqual, link)
			So(output.ID, ShouldEqual, youtube.VideoID("dQw4w9WgXcQ"))
			So(output.Batch, ShouldNotBeEmpty)
			So(output.Thumbnails, ShouldHaveLength, 2)
			So(output.Thumbnails[0].Exists, ShouldBeTrue)
			So(output.Error, ShouldBeEmpty)
		})

		Convey("The best filter keeps only the highest existing tier", func() {
			filter, err := ParseTierFilter("best")
			So(err, ShouldBeNil)
			options.Tiers = mo.Some(filter)

			So(Run(context.Background(), options), ShouldBeNil)
			So(strings.TrimSpace(out.String()), ShouldEndWith, "hqdefault.jpg")
		})

		Convey("Download writes every existing tier and prints the paths", func() {
			options.Download = true
			options.Dir = "out"

			So(Run(context.Background(), options), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "youtube-thumbnail-dQw4w9WgXcQ-hqdefault.jpg")

			data, err := afero.ReadFile(filesystem.API(), "out/youtube-thumbnail-dQw4w9WgXcQ-default.jpg")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "default")
		})

		Convey("An invalid link fails with the invalid input message", func() {
			options.URL = "not a url"
			options.Json = true

			err := Run(context.Background(), options)
			So(errors.Is(err, youtube.ErrInvalidURL), ShouldBeTrue)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Error, ShouldEqual, gallery.MessageInvalidInput)
			So(output.Thumbnails, ShouldBeEmpty)
		})
	})

	Convey("Given an image host with no tiers", t, func() {
		server := imageHost()
		defer server.Close()

		prober := youtube.NewProber(server.Client(), strings.TrimPrefix(server.URL, "https://"))
		var out bytes.Buffer

		options := &Options{Out: &out, URL: link, Session: mo.Some(gallery.NewSession(prober))}

		Convey("Run fails with the no thumbnails message", func() {
			err := Run(context.Background(), options)
			So(errors.Is(err, youtube.ErrNoThumbnails), ShouldBeTrue)
			So(err.Error(), ShouldStartWith, gallery.MessageNoThumbnails)
			So(out.String(), ShouldBeEmpty)
		})

		Convey("All still lists the five absent candidates", func() {
			options.All = true
			err := Run(context.Background(), options)
			So(errors.Is(err, youtube.ErrNoThumbnails), ShouldBeTrue)

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			So(lines, ShouldHaveLength, 5)
			for _, line := range lines {
				So(line, ShouldContainSubstring, "\tabsent\t")
			}
		})

		Convey("Json with all carries the candidates next to the error", func() {
			options.All = true
			options.Json = true
			err := Run(context.Background(), options)
			So(errors.Is(err, youtube.ErrNoThumbnails), ShouldBeTrue)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Error, ShouldEqual, gallery.MessageNoThumbnails)
			So(output.Thumbnails, ShouldHaveLength, 5)
			So(output.Thumbnails[0].Tier, ShouldEqual, youtube.TierMax)
			So(output.Thumbnails[0].Exists, ShouldBeFalse)
			So(output.Thumbnails[0].Status, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestParseTierFilter(t *testing.T) {
	Convey("Given thumbnails where some tiers exist", t, func() {
		thumbs := youtube.Candidates("img.test", "dQw4w9WgXcQ")
		thumbs[1].Exists = true
		thumbs[3].Exists = true

		Convey("A list keeps the named tiers in tier order", func() {
			filter, err := ParseTierFilter("mq,maxres")
			So(err, ShouldBeNil)

			kept := filter(thumbs)
			So(kept, ShouldHaveLength, 2)
			So(kept[0].Tier, ShouldEqual, youtube.TierMax)
			So(kept[1].Tier, ShouldEqual, youtube.TierMedium)
		})

		Convey("Best picks the first existing tier", func() {
			filter, _ := ParseTierFilter("best")
			So(filter(thumbs)[0].Tier, ShouldEqual, youtube.TierStandard)
			So(filter(nil), ShouldBeEmpty)
		})

		Convey("Unknown names are rejected", func() {
			_, err := ParseTierFilter("hq,huge")
			So(err, ShouldNotBeNil)
		})
	})
}
