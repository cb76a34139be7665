package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMultipleCountries is returned when a second country filter is
	// supplied; the servers endpoint accepts a single country scope.
	ErrMultipleCountries = errors.New("only one country filter can be used per run")

	// ErrNoServerFound is returned when no candidate survives filtering.
	ErrNoServerFound = errors.New("no server found matching the given filters")

	// ErrInvalidCount is returned for a non-positive result count.
	ErrInvalidCount = errors.New("count must be a positive integer")
)

// UnknownFilterError is returned when a token matches no country,
// technology or group.
type UnknownFilterError struct {
	Token string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter %q: not a country, technology or server group", e.Token)
}
