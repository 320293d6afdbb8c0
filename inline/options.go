package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/thumbgrab/thumbgrab/gallery"
	"github.com/thumbgrab/thumbgrab/youtube"
)

type TierFilter func([]youtube.Thumbnail) []youtube.Thumbnail

type Options struct {
	Out io.Writer
	URL string
	// Json switches the output to a single Output document.
	Json bool
	// All keeps absent candidates in the output.
	All      bool
	Download bool
	// Dir overrides the configured download directory.
	Dir     string
	Tiers   mo.Option[TierFilter]
	Session mo.Option[*gallery.Session]
}

// ParseTierFilter understands
//
//	best       - the highest existing tier
//	all        - every thumbnail, the default
//	hq,mq,...  - the listed tiers, by short or file name
func ParseTierFilter(description string) (TierFilter, error) {
	switch description {
	case "all":
		return func(thumbs []youtube.Thumbnail) []youtube.Thumbnail {
			return thumbs
		}, nil
	case "best":
		return func(thumbs []youtube.Thumbnail) []youtube.Thumbnail {
			best, ok := lo.Find(thumbs, func(t youtube.Thumbnail) bool {
				return t.Exists
			})
			if !ok {
				return []youtube.Thumbnail{}
			}
			return []youtube.Thumbnail{best}
		}, nil
	}

	var wanted []youtube.Tier
	for _, name := range strings.Split(description, ",") {
		tier, err := youtube.ParseTier(name)
		if err != nil {
			return nil, fmt.Errorf("invalid tier filter: %w", err)
		}
		wanted = append(wanted, tier)
	}

	return func(thumbs []youtube.Thumbnail) []youtube.Thumbnail {
		return lo.Filter(thumbs, func(t youtube.Thumbnail, _ int) bool {
			return lo.Contains(wanted, t.Tier)
		})
	}, nil
}
