package evtap

import (
	"fmt"

	"github.com/pkg/errors"
)

// CodeNotFoundError is returned when a classifier cannot resolve an
// event code against its category's name table and the caller did not
// opt into the hex fallback via allowUnknown. It is the only error
// kind the classification core produces, and it is always recoverable:
// retrying is pointless (lookups are deterministic) but the caller may
// re-run the construction with allowUnknown set.
type CodeNotFoundError struct {
	Category string
	Code     uint16
}

func (e *CodeNotFoundError) Error() string {
	return fmt.Sprintf("%s code %d (0x%02X) not found", e.Category, e.Code, e.Code)
}

// IsCodeNotFound reports whether err, or the cause it wraps, is a
// CodeNotFoundError.
func IsCodeNotFound(err error) bool {
	if err == nil {
		return false
	}
	_, ok := errors.Cause(err).(*CodeNotFoundError)
	return ok
}
