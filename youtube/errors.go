package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL covers every input that does not yield an 11-character identifier.
	ErrInvalidURL = errors.New("invalid youtube url")

	// ErrNoThumbnails is returned when every candidate reported absent.
	ErrNoThumbnails = errors.New("no thumbnails available")

	// ErrProbeFailed marks a failure of the batch itself rather than of a single check.
	ErrProbeFailed = errors.New("probe failed")
)

// ProbeError wraps the cause of a failed probe batch.
type ProbeError struct {
	ID  VideoID
	Err error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s: %v", e.ID, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrProbeFailed) match any *ProbeError.
func (e *ProbeError) Is(target error) bool {
	return target == ErrProbeFailed
}
