package pitch

import "fmt"

// ErrorKind classifies pitch parsing and lookup failures
type ErrorKind int

const (
	// ErrMalformedNoteName indicates a token that does not match the
	// note-name grammar (unknown letter, missing octave digits,
	// unparsable cents suffix)
	ErrMalformedNoteName ErrorKind = iota
	// ErrUnknownPitchClass indicates a letter+accidental combination
	// absent from the pitch class table
	ErrUnknownPitchClass
	// ErrInvalidTransposition indicates a transposition key letter that
	// is not one of the 12 recognized pitch classes
	ErrInvalidTransposition
	// ErrInvalidFrequency indicates a non-positive frequency or
	// reference frequency
	ErrInvalidFrequency
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedNoteName:
		return "malformed note name"
	case ErrUnknownPitchClass:
		return "unknown pitch class"
	case ErrInvalidTransposition:
		return "invalid transposition key"
	case ErrInvalidFrequency:
		return "invalid frequency"
	default:
		return "unknown error"
	}
}

// ParseError reports a conversion failure together with the offending
// input substring so callers can surface precise feedback
type ParseError struct {
	Kind   ErrorKind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q: %s", e.Kind, e.Input, e.Reason)
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Input)
}

func malformed(input, reason string) *ParseError {
	return &ParseError{Kind: ErrMalformedNoteName, Input: input, Reason: reason}
}
