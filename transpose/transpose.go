// Package transpose computes the signed half-step offsets that
// transposing instruments apply between written notes and concert
// pitch.
package transpose

import (
	"strings"

	"github.com/notefreq/notefreq/pitch"
)

// Spec describes an instrument's transposition: the concert-pitch note
// that sounds when the player fingers a written C, the shift
// direction, and any whole octaves shifted beyond the within-octave
// interval.
type Spec struct {
	Key          string `json:"key"`                // one of the 12 pitch-class names
	Down         bool   `json:"transpose_down"`     // shift direction
	ExtraOctaves int    `json:"extra_octave_shift"` // non-negative count, applied in the shift direction
}

// Offset converts a transposition spec into the signed half-step count
// consumed by the pitch conversions.
//
// A Bb clarinet (key Bb, down, 0 extra) yields -2; a Bb tenor
// saxophone (one extra octave down) yields -14; an Eb sopranino
// clarinet (up, 0 extra) yields +3.
func Offset(key string, down bool, extraOctaves int) (int, error) {
	norm := normalizeKey(key)

	m, ok := pitch.IndexInOctave(norm)
	if !ok {
		return 0, &pitch.ParseError{Kind: pitch.ErrInvalidTransposition, Input: key}
	}
	mC, _ := pitch.IndexInOctave("C")

	delta := m - mC

	if down {
		if delta > 0 {
			delta -= 12 // force the within-octave shift downward
		}
		delta -= 12 * extraOctaves
	} else {
		if delta < 0 {
			delta += 12 // force the within-octave shift upward
		}
		delta += 12 * extraOctaves
	}

	return delta, nil
}

// OffsetForSpec is Offset over a Spec value.
func OffsetForSpec(s Spec) (int, error) {
	return Offset(s.Key, s.Down, s.ExtraOctaves)
}

// normalizeKey trims and title-cases the key letter and folds the Cb
// and B# spellings onto their simple equivalents.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return key
	}

	runes := []rune(key)
	norm := strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))

	switch norm {
	case "Cb":
		return "B"
	case "B#":
		return "C"
	}
	return norm
}
