package gallery

import (
	"errors"

	"github.com/thumbgrab/thumbgrab/youtube"
)

// Kind classifies an outcome for display.
type Kind int

const (
	KindOK Kind = iota
	KindInvalidInput
	KindNoThumbnails
	KindProbeFailure
)

const (
	MessageInvalidInput = "Invalid YouTube URL. Please enter a valid YouTube video link."
	MessageNoThumbnails = "No thumbnails found for this video."
	MessageProbeFailure = "Failed to load thumbnails. Please try again."
)

// Outcome is what one submission produced.
type Outcome struct {
	Ticket Ticket
	Result *youtube.Result
	Err    error

	// Stale is set when a newer submission began before this one finished.
	// Stale outcomes must not be displayed.
	Stale bool
}

// Kind maps Err onto the error taxonomy.
func (o Outcome) Kind() Kind {
	switch {
	case o.Err == nil:
		return KindOK
	case errors.Is(o.Err, youtube.ErrProbeFailed):
		return KindProbeFailure
	case errors.Is(o.Err, youtube.ErrInvalidURL):
		return KindInvalidInput
	case errors.Is(o.Err, youtube.ErrNoThumbnails):
		return KindNoThumbnails
	default:
		return KindProbeFailure
	}
}

// Message is the line shown to the user, empty on success.
func (o Outcome) Message() string {
	switch o.Kind() {
	case KindInvalidInput:
		return MessageInvalidInput
	case KindNoThumbnails:
		return MessageNoThumbnails
	case KindProbeFailure:
		return MessageProbeFailure
	default:
		return ""
	}
}

// Thumbnails returns the existing thumbnails, nil when there are none.
func (o Outcome) Thumbnails() []youtube.Thumbnail {
	if o.Err != nil || o.Result == nil {
		return nil
	}
	return o.Result.Available()
}
