package figure

import (
	"errors"
	"fmt"
)

var (
	// ErrShouldNotHappen indicates a programming error in the code building a
	// figure, or a numerical procedure that failed to converge.
	ErrShouldNotHappen = errors.New("should not happen")
	// ErrAlreadyEnlarged is returned when an axis is enlarged a second time.
	ErrAlreadyEnlarged = errors.New("axis has already been enlarged")
	// ErrTooLarge indicates a bounding box beyond the sanity threshold.
	ErrTooLarge = errors.New("bounding box too large")
	// ErrImaginaryPart indicates a non-negligible imaginary part in a value
	// that should be real.
	ErrImaginaryPart = errors.New("non-negligible imaginary part")
	// ErrNoPicture is returned by operations that need a picture context but
	// got nil.
	ErrNoPicture = errors.New("no picture given")
)

// ShouldNotHappenError describes a fatal condition that indicates a bug in the
// client code, such as an unknown mark position, or a dichotomy that did not
// converge within its iteration budget.
type ShouldNotHappenError struct {
	Reason string
}

func (e *ShouldNotHappenError) Error() string {
	return "should not happen: " + e.Reason
}

func (e *ShouldNotHappenError) Unwrap() error { return ErrShouldNotHappen }

func shouldNotHappen(format string, args ...any) error {
	return &ShouldNotHappenError{Reason: fmt.Sprintf(format, args...)}
}

// TooLargeError reports the object, coordinate and value that made a bounding
// box exceed the sanity threshold.
type TooLargeError struct {
	Object     string
	Coordinate string
	Value      float64
	Threshold  float64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("bounding box of %s too large: %s = %g exceeds %g",
		e.Object, e.Coordinate, e.Value, e.Threshold)
}

func (e *TooLargeError) Unwrap() error { return ErrTooLarge }

// ImaginaryPartError reports a point of a curve whose evaluation had a
// non-negligible imaginary part.
type ImaginaryPartError struct {
	Param float64
	Real  Point
	Imag  Vec2
}

func (e *ImaginaryPartError) Error() string {
	return fmt.Sprintf("imaginary part %v at parameter %g (real part %v)", e.Imag, e.Param, e.Real)
}

func (e *ImaginaryPartError) Unwrap() error { return ErrImaginaryPart }
