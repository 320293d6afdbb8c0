package youtube

import (
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// Tier is one of the fixed thumbnail resolutions, ordered highest first.
type Tier int

const (
	TierMax Tier = iota
	TierStandard
	TierHigh
	TierMedium
	TierDefault
)

// Tiers lists every tier in resolution-descending order.
var Tiers = []Tier{TierMax, TierStandard, TierHigh, TierMedium, TierDefault}

var tierFiles = map[Tier]string{
	TierMax:      "maxresdefault",
	TierStandard: "sddefault",
	TierHigh:     "hqdefault",
	TierMedium:   "mqdefault",
	TierDefault:  "default",
}

var tierLabels = map[Tier]string{
	TierMax:      "Maximum Resolution (1280x720)",
	TierStandard: "Standard Definition (640x480)",
	TierHigh:     "High Quality (480x360)",
	TierMedium:   "Medium Quality (320x180)",
	TierDefault:  "Default (120x90)",
}

// File is the image file name without extension, e.g. "hqdefault".
func (t Tier) File() string {
	return tierFiles[t]
}

// Label is the human description shown next to the image.
func (t Tier) Label() string {
	return tierLabels[t]
}

func (t Tier) String() string {
	return t.File()
}

// MarshalText encodes the tier by its file name.
func (t Tier) MarshalText() ([]byte, error) {
	if _, ok := tierFiles[t]; !ok {
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
	return []byte(t.File()), nil
}

// UnmarshalText accepts anything ParseTier does.
func (t *Tier) UnmarshalText(text []byte) error {
	tier, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// JSONSchema describes a tier by its file name.
func (Tier) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: lo.ToAnySlice(lo.Map(Tiers, func(t Tier, _ int) string {
			return t.File()
		})),
	}
}

// ParseTier accepts a file name ("hqdefault") or its short form ("hq").
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	tier, ok := lo.Find(Tiers, func(t Tier) bool {
		return s != "" && (s == t.File() || s+"default" == t.File())
	})
	if !ok {
		return 0, fmt.Errorf("unknown tier %q", s)
	}
	return tier, nil
}

// Thumbnail is one candidate image address for a video.
type Thumbnail struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
	URL   string `json:"url"`
	// Exists is true when the existence check got a successful status.
	Exists bool `json:"exists"`
	// Status is the HTTP status observed, 0 when no response arrived.
	Status int `json:"status"`
}

// URL substitutes id into the address template of tier on host.
func URL(host string, id VideoID, tier Tier) string {
	return fmt.Sprintf("https://%s/vi/%s/%s.jpg", host, id, tier.File())
}

// FileName is the name a downloaded thumbnail is saved under.
func FileName(id VideoID, tier Tier) string {
	return fmt.Sprintf("youtube-thumbnail-%s-%s.jpg", id, tier.File())
}

// Candidates builds the five thumbnail candidates for id in tier order.
// Existence is left unknown.
func Candidates(host string, id VideoID) []Thumbnail {
	thumbs := make([]Thumbnail, len(Tiers))
	for i, tier := range Tiers {
		thumbs[i] = Thumbnail{
			Tier:  tier,
			Label: tier.Label(),
			URL:   URL(host, id, tier),
		}
	}
	return thumbs
}

// Result is the outcome of probing every candidate of one identifier.
type Result struct {
	ID         VideoID     `json:"id"`
	Batch      string      `json:"batch"`
	Thumbnails []Thumbnail `json:"thumbnails"`
}

// Available returns the thumbnails that exist, tier order kept.
func (r *Result) Available() []Thumbnail {
	return lo.Filter(r.Thumbnails, func(t Thumbnail, _ int) bool {
		return t.Exists
	})
}
