package hexgrid

import "errors"

// Sentinel errors for hexgrid operations. All are recoverable,
// user-facing conditions: the caller aborts cleanly and re-invokes with
// adjusted inputs; retrying unchanged inputs reproduces the same error.
var (
	// ErrNonPositiveSize indicates a face dimension or radius that is
	// zero or negative.
	ErrNonPositiveSize = errors.New("hexgrid: size inputs must be positive")
	// ErrHexCount indicates a requested hex count below 1.
	ErrHexCount = errors.New("hexgrid: hex count must be at least 1")
	// ErrNegativeMargin indicates a negative margin.
	ErrNegativeMargin = errors.New("hexgrid: margin must not be negative")
	// ErrMarginTooLarge indicates the margin leaves no positive hexagon
	// size for the requested count. Returned wrapped with the count
	// attempted.
	ErrMarginTooLarge = errors.New("hexgrid: margin too large")
	// ErrNoFittingHexes indicates the region is too small for even one
	// hexagon under the current options.
	ErrNoFittingHexes = errors.New("hexgrid: no hexagons fit the region")
	// ErrNoValidRegions indicates classification accepted zero regions —
	// upstream region construction produced nothing in the expected area
	// window.
	ErrNoValidRegions = errors.New("hexgrid: no regions within the expected hexagon area window")
)
