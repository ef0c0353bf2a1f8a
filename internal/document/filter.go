package document

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for contradictory or malformed requests
var ErrInvalidArgument = errors.New("invalid argument")

// Filter selects how fragments are classified
type Filter uint8

const (
	Raw          Filter = 0
	TamilOnly    Filter = 1 << 0
	NonTamilOnly Filter = 1 << 1
)

// String returns the filter name used in logs and metrics
func (f Filter) String() string {
	switch f {
	case Raw:
		return "raw"
	case TamilOnly:
		return "tamil_only"
	case NonTamilOnly:
		return "non_tamil_only"
	default:
		return fmt.Sprintf("filter(%d)", uint8(f))
	}
}

// Validate rejects combined or unknown filters
func (f Filter) Validate() error {
	if f&TamilOnly != 0 && f&NonTamilOnly != 0 {
		return fmt.Errorf("%w: tamil-only and non-tamil-only filters are mutually exclusive", ErrInvalidArgument)
	}
	if f&^(TamilOnly|NonTamilOnly) != 0 {
		return fmt.Errorf("%w: unknown filter %d", ErrInvalidArgument, uint8(f))
	}
	return nil
}
