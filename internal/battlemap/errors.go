package battlemap

import (
	"errors"
	"fmt"
)

var (
	ErrDimensionTooSmall   = errors.New("map dimension too small")
	ErrNoPlayerSpawnPoint  = errors.New("no player spawn point")
	ErrSpawnPointOutOfMap  = errors.New("spawn point out of map")
	ErrPointUnspawnable    = errors.New("map point unspawnable")
	ErrUnknownResourceType = errors.New("unknown resource type")
	ErrUnknownStatusCode   = errors.New("unknown map point status code")

	// ErrGridShape is returned when the point grid is not width columns of
	// height entries.
	ErrGridShape = errors.New("point grid does not match dimensions")

	// ErrMalformed wraps format failures the parser does not classify further
	// (bad integers, missing rows, short rows).
	ErrMalformed = errors.New("malformed map template")

	// ErrNotSupported is returned by template operations that have no defined
	// behavior yet.
	ErrNotSupported = errors.New("operation not supported")
)

// TooFewPointsError reports a grid with fewer playable cells than required.
type TooFewPointsError struct {
	Expected int
	Actual   int
}

func (e *TooFewPointsError) Error() string {
	return fmt.Sprintf("too few map points: %d / %d", e.Actual, e.Expected)
}
