// Package clip writes thumbnail addresses to the system clipboard.
package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// FailureMessage is shown when the address could not be copied.
const FailureMessage = "Failed to copy URL. Please try manually."

var ErrUnsupported = errors.New("clipboard is not available on this system")

// swapped in tests
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy places text on the clipboard.
func Copy(text string) error {
	if unsupported() {
		return ErrUnsupported
	}

	if err := writeAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
