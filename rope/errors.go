package rope

import "errors"

// Sentinel errors returned by rope operations. Callers should compare
// against these with errors.Is.
var (
	// ErrOutOfRange indicates an offset or range falls outside the rope's
	// current length in the metric it was expressed in.
	ErrOutOfRange = errors.New("rope: offset out of range")

	// ErrInvalidRange indicates a range whose end precedes its start.
	ErrInvalidRange = errors.New("rope: invalid range")

	// ErrInvalidBoundary indicates an offset that does not fall on a
	// valid boundary for the requested metric — for example, a byte
	// offset that splits a UTF-8 code point, or a UTF-16 offset that
	// splits a surrogate pair.
	ErrInvalidBoundary = errors.New("rope: offset does not fall on a valid boundary")

	// ErrSecondaryMetricDisabled indicates a UTF-16 operation was
	// requested on a Rope constructed without WithSecondaryMetric.
	ErrSecondaryMetricDisabled = errors.New("rope: secondary metric not enabled")
)
