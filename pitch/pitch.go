package pitch

import (
	"fmt"
	"math"
)

// The 12-tone equal-tempered pitch model anchors every note to the
// reference A4 frequency:
//
//	k = half-steps from A4
//	n = octave number
//	m = half-steps from A within the octave
//	k = 12(n-4) + m
//	c = cents away from note k
//	freq = refA4 * 2^(k/12 + c/1200)

// noteNames and noteIndexes are parallel slices mapping every
// recognized letter+accidental spelling to its within-octave index m.
// Order matters: for a given m, the first entry is the canonical
// spelling (naturals and sharps), and the flat alias of a sharp sits
// one slot after it. E#, Fb, B#, and Cb are special spellings that are
// only produced on request.
var noteNames = []string{
	"C", "C#", "Db", "D", "D#", "Eb", "E", "Fb", "F", "E#",
	"F#", "Gb", "G", "G#", "Ab", "A", "A#", "Bb", "B", "B#", "Cb",
}

var noteIndexes = []int{
	-9, -8, -8, -7, -6, -6, -5, -5, -4, -4,
	-3, -3, -2, -1, -1, 0, 1, 1, 2, 3, -10,
}

// IndexInOctave returns the within-octave half-step index m for a
// letter+accidental spelling (C=-9 ... B=2, plus E#=-4, Fb=-5, B#=3,
// Cb=-10). The second return value is false when the spelling is not
// in the table.
func IndexInOctave(letter string) (int, bool) {
	for i, name := range noteNames {
		if name == letter {
			return noteIndexes[i], true
		}
	}
	return 0, false
}

// Pitch is the numeric decomposition of a parsed note name.
type Pitch struct {
	FreqHz float64 `json:"freq_hz"`
	K      int     `json:"hsteps_from_a4"`
	Octave int     `json:"octave_n"`
	M      int     `json:"hsteps_from_an"`
	Cents  float64 `json:"cents"`
}

// Note is a spelled pitch produced by the frequency-to-name direction.
type Note struct {
	Name   string  `json:"note_name"`   // full formatted name, cents suffix included when requested
	Letter string  `json:"note_letter"` // letter+accidental part, plain b/# form
	K      int     `json:"hsteps_from_a4"`
	Octave int     `json:"octave_n"`
	M      int     `json:"hsteps_from_an"`
	Cents  float64 `json:"cents"`
}

// NoteToPitch parses a note name and returns its full numeric
// decomposition along with the frequency in Hz.
//
// The note name is taken at concert pitch unless transpHalfSteps is
// nonzero, in which case it is read as the written note played by an
// instrument that shifts notes by transpHalfSteps from concert pitch
// (-2 for a Bb clarinet).
func NoteToPitch(noteName string, refA4Hz, transpHalfSteps float64) (Pitch, error) {
	parsed, err := ParseNoteName(noteName)
	if err != nil {
		return Pitch{}, err
	}

	m, ok := IndexInOctave(parsed.Letter)
	if !ok {
		return Pitch{}, &ParseError{Kind: ErrUnknownPitchClass, Input: parsed.Letter}
	}

	k := 12*(parsed.Octave-4) + m
	k += int(math.Round(transpHalfSteps))

	freq := refA4Hz * math.Exp2(float64(k)/12+parsed.Cents/1200)

	return Pitch{
		FreqHz: freq,
		K:      k,
		Octave: parsed.Octave,
		M:      m,
		Cents:  parsed.Cents,
	}, nil
}

// NoteToFrequency converts a note name to its frequency in Hz.
func NoteToFrequency(noteName string, refA4Hz, transpHalfSteps float64) (float64, error) {
	p, err := NoteToPitch(noteName, refA4Hz, transpHalfSteps)
	if err != nil {
		return 0, err
	}
	return p.FreqHz, nil
}

// FormatOptions controls the textual rendering of a converted note.
type FormatOptions struct {
	ShowCents       bool `json:"show_cents"`       // append the signed cents deviation
	CentsWhitespace bool `json:"cents_whitespace"` // pad the cents suffix with spaces
}

// FrequencyToNote finds the nearest equal-tempered note for a
// frequency and spells it under the given enharmonic preference.
//
// The transposition offset is subtracted here, not added as in the
// note-to-frequency direction: the reported name is the written note
// the instrument must play to sound this frequency, which shifts
// opposite to the instrument's own transposition.
func FrequencyToNote(freqHz, refA4Hz, transpHalfSteps float64, sp Spelling, fo FormatOptions) (Note, error) {
	if freqHz <= 0 || refA4Hz <= 0 {
		return Note{}, &ParseError{
			Kind:  ErrInvalidFrequency,
			Input: fmt.Sprintf("%g (ref %g)", freqHz, refA4Hz),
		}
	}

	p := math.Log2(freqHz/refA4Hz) - transpHalfSteps/12 // p = k/12 + c/1200
	k := int(math.Round(12 * p))

	spelled := Spell(k, sp)
	cents := 1200 * (p - float64(k)/12)

	name := spelled.Name
	if fo.ShowCents {
		name += formatCents(cents, fo.CentsWhitespace)
	}

	return Note{
		Name:   name,
		Letter: spelled.Letter,
		K:      k,
		Octave: spelled.Octave,
		M:      spelled.M,
		Cents:  cents,
	}, nil
}

// CentsOffset returns the signed cents deviation of freqHz from its
// nearest equal-tempered note under the given A4 reference.
func CentsOffset(freqHz, refA4Hz float64) float64 {
	p := math.Log2(freqHz / refA4Hz)
	k := math.Round(12 * p)
	return 1200 * (p - k/12)
}

// formatCents renders the signed cents suffix at one decimal place,
// e.g. " + 3.0 cents" padded or "+3.0cents" compact.
func formatCents(c float64, whitespace bool) string {
	sign := "+"
	if c < 0 {
		sign = "-"
	}
	if whitespace {
		return fmt.Sprintf(" %s %.1f cents", sign, math.Abs(c))
	}
	return fmt.Sprintf("%s%.1fcents", sign, math.Abs(c))
}
