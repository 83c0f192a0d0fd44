package cmd

import (
	"errors"
	"fmt"
)

// SilentExit signals an exit code without a cobra error message.
// Commands that report status through the exit code alone return it
// after printing whatever they have to say themselves.
type SilentExit struct {
	Code int
}

func (e *SilentExit) Error() string {
	return fmt.Sprintf("silent exit %d", e.Code)
}

// NewSilentExit creates a SilentExit with the given code.
func NewSilentExit(code int) *SilentExit {
	return &SilentExit{Code: code}
}

// IsSilentExit reports whether err carries a silent exit code.
func IsSilentExit(err error) (int, bool) {
	var se *SilentExit
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
