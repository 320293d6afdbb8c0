// Package youtube turns pasted video links into identifiers and probes which thumbnail tiers exist.
package youtube

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/thumbgrab/thumbgrab/util"
)

// IDLength is the length of every video identifier, in characters.
const IDLength = 11

// VideoID names one video on the platform.
type VideoID string

func (id VideoID) String() string {
	return string(id)
}

// Valid reports whether id is exactly IDLength characters long.
// Characters, not bytes: a multibyte capture is measured the way it reads.
func (id VideoID) Valid() bool {
	return utf8.RuneCountInString(string(id)) == IDLength
}

// The greedy leading match makes the last recognised prefix win.
var linkPattern = regexp.MustCompile(
	`^.*(?:youtu.be/|v/|u/\w/|embed/|shorts/|live/|watch\?v=|&v=)(?P<id>[^#&?]*).*`,
)

// ExtractID recognises the watch, short-host, embed, shorts, live and legacy
// user-relative link shapes and returns the identifier they carry.
//
// Surrounding whitespace is ignored. Anything that does not capture exactly
// eleven characters yields ErrInvalidURL, whether the shape was unknown or
// the captured segment had the wrong length.
func ExtractID(raw string) (VideoID, error) {
	groups := util.ReGroups(linkPattern, strings.TrimSpace(raw))
	if groups == nil {
		return "", ErrInvalidURL
	}

	id := VideoID(groups["id"])
	if !id.Valid() {
		return "", ErrInvalidURL
	}

	return id, nil
}
