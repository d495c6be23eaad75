package extract

import "errors"

var (
	// ErrEmptyImage indicates the source image has a zero width or height.
	ErrEmptyImage = errors.New("extract: image has zero width or height")
	// ErrPatternTooLarge indicates n exceeds the source image's extents
	// under non-periodic sampling.
	ErrPatternTooLarge = errors.New("extract: pattern size exceeds image extents")
	// ErrInvalidPatternSize indicates n was zero or negative.
	ErrInvalidPatternSize = errors.New("extract: pattern size must be positive")
)
