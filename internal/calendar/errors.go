package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Widget errors.
var (
	ErrInvalidSelection     = errors.New("day is not in the displayed month")
	ErrInvalidDisableTarget = errors.New("cannot disable a day outside the displayed month")
	ErrDayDisabled          = errors.New("day is disabled")
	ErrMissingMountTarget   = errors.New("mount target not found")
)

// DisableError reports the entries DisableDays rejected. The valid entries
// of the same call were still applied.
type DisableError struct {
	Rejected []int
}

func (e *DisableError) Error() string {
	parts := make([]string, len(e.Rejected))
	for i, d := range e.Rejected {
		parts[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidDisableTarget, strings.Join(parts, ", "))
}

// Unwrap lets errors.Is match ErrInvalidDisableTarget.
func (e *DisableError) Unwrap() error {
	return ErrInvalidDisableTarget
}
