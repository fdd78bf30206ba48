package twisty

import (
	"errors"
	"fmt"
)

// Sentinel errors for the twisty package.
var (
	// Notation errors
	ErrInvalidNotation  = errors.New("twisty: invalid move notation")
	ErrUnsupportedLayer = errors.New("twisty: unsupported layer")

	// Size errors
	ErrUnsupportedSize = errors.New("twisty: unsupported cube size")

	// Scramble errors
	ErrInvalidLength = errors.New("twisty: scramble length must be at least 1")
	ErrNoRandom      = errors.New("twisty: scramble needs a random source")
)

// NotationError reports a token the engine could not apply.
// It wraps ErrInvalidNotation or ErrUnsupportedLayer. A layer the cube does
// not have is still bad notation for that cube, so an ErrUnsupportedLayer
// error also matches ErrInvalidNotation.
type NotationError struct {
	Token string // the offending token as given
	Index int    // position in the sequence, -1 for a single token
	Size  int    // cube size the token was checked against, 0 if unknown
	Err   error
}

func (e *NotationError) Error() string {
	msg := fmt.Sprintf("%v %q", e.Err, e.Token)
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at position %d", e.Index)
	}
	if e.Size > 0 && errors.Is(e.Err, ErrUnsupportedLayer) {
		msg += fmt.Sprintf(" for %dx%d cube", e.Size, e.Size)
	}
	return msg
}

func (e *NotationError) Unwrap() error {
	return e.Err
}

func (e *NotationError) Is(target error) bool {
	return target == ErrInvalidNotation && errors.Is(e.Err, ErrUnsupportedLayer)
}

// SizeError reports a cube size outside the supported range.
type SizeError struct {
	Size int
	Min  int
	Max  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %d (supported %d..%d)", ErrUnsupportedSize, e.Size, e.Min, e.Max)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrUnsupportedSize
}

// withIndex stamps a sequence position onto a notation error.
func withIndex(err error, i int) error {
	var ne *NotationError
	if errors.As(err, &ne) {
		stamped := *ne
		stamped.Index = i
		return &stamped
	}
	return err
}

// withToken fills in the token text and size as the caller spelled them.
func withToken(err error, token string, size int) error {
	var ne *NotationError
	if errors.As(err, &ne) {
		stamped := *ne
		stamped.Token = token
		stamped.Size = size
		return &stamped
	}
	return err
}
