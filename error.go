package waypolicy

import "fmt"

type constError string

const (
	// ErrInvalidWays may be returned from the policy constructors.
	ErrInvalidWays = constError("invalid way count")
	// ErrInvalidWay is the panic value (wrapped) when
	// a way index is out of range for a state.
	ErrInvalidWay = constError("invalid way index")
)

func (errStr constError) Error() string { return string(errStr) }

func wayCountError(nWays int) error {
	return fmt.Errorf(
		"%w: must be within [%d,%d] but %d was requested",
		ErrInvalidWays, MinWays, MaxWays, nWays)
}

func wayIndexError(way, nWays int) error {
	return fmt.Errorf(
		"%w: must be within [0,%d) but %d was requested",
		ErrInvalidWay, nWays, way)
}
