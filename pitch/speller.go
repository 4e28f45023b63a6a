package pitch

import (
	"fmt"
	"strings"
)

// Spelling configures the enharmonic note-letter choice for the
// frequency-to-name direction. UseFlats dominates: the E#/B# options
// are inert when it is set, and the Fb/Cb options are inert when it is
// not.
type Spelling struct {
	UseFlats   bool `json:"use_flats"`
	UseESharp  bool `json:"use_esharp"`
	UseFb      bool `json:"use_fb"`
	UseBSharp  bool `json:"use_bsharp"`
	UseCb      bool `json:"use_cb"`
	FancyChars bool `json:"use_fancy_chars"` // render b/# as ♭/♯
}

// SpelledNote is a concrete letter choice for a pitch, including the
// octave and within-octave index adjustments that the B# and Cb
// spellings require.
type SpelledNote struct {
	Name   string // letter + octave, e.g. "Eb-1", "F#7"
	Letter string // letter+accidental part, plain b/# form
	K      int
	Octave int
	M      int
}

// Spell names the note k half-steps from A4 under the given
// preference set, without transposition.
func Spell(k int, sp Spelling) SpelledNote {
	// The within-octave index m runs -9..2, a shifted modulus of 12:
	//	k = 12(n-4) + m, m = ((k+9) mod 12) - 9
	// B# (m=3) and Cb (m=-10) sit outside that range and are produced
	// only as substitutions below.
	n := floorDiv(k+9, 12) + 4
	m := mod(k+9, 12) - 9

	// The table's first entry for each m is a natural or sharp
	// spelling, never E#, Fb, B#, or Cb.
	idx := indexOf(m)
	letter := noteNames[idx]

	if sp.UseFlats {
		if strings.Contains(letter, "#") {
			// The flat alias sits one table slot after the sharp.
			letter = noteNames[idx+1]
		} else {
			if sp.UseFb && letter == "E" {
				letter = "Fb"
			}
			if sp.UseCb && letter == "B" {
				// Cb belongs to the next octave's index space.
				letter = "Cb"
				m = -10
				n++
			}
		}
	} else {
		if sp.UseESharp && letter == "F" {
			letter = "E#"
		}
		if sp.UseBSharp && letter == "C" {
			letter = "B#"
			m = 3
			n--
		}
	}

	name := fmt.Sprintf("%s%d", letter, n)
	if sp.FancyChars {
		name = fancyAccidentals(name)
	}

	return SpelledNote{Name: name, Letter: letter, K: k, Octave: n, M: m}
}

// fancyAccidentals substitutes ♭/♯ for b/# as a pure text rewrite,
// applied after all letter decisions.
func fancyAccidentals(s string) string {
	s = strings.ReplaceAll(s, "b", "♭")
	s = strings.ReplaceAll(s, "#", "♯")
	return s
}

// indexOf returns the first table slot with within-octave index m.
func indexOf(m int) int {
	for i, idx := range noteIndexes {
		if idx == m {
			return i
		}
	}
	return 0 // unreachable for m in -9..2
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod is the non-negative remainder of a/b.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
