// Package keysig guesses the major key signature that best fits a set
// of note names via a similarity-scoring system.
package keysig

import "strings"

// Signature is a canonical major key signature and its member note
// spellings. Members include enharmonic aliases (the C major set
// accepts Cb and B# as aliases of B and C) so those spellings still
// contribute to the match score.
type Signature struct {
	Name    string
	Members []string
}

// signatures in canonical order: ascending accidental count, flat keys
// before their sharp-key enharmonic equivalent at the same count. On a
// score tie the earliest entry wins, which amounts to "fewest
// accidentals, flats preferred on exact ties".
var signatures = []Signature{
	{"C", strings.Fields("A B C D E F G Cb B# Fb E#")},
	{"F", strings.Fields("A Bb C D E F G A# B# Fb E#")},
	{"G", strings.Fields("A B C D E F# G Cb B# Fb")},
	{"Bb", strings.Fields("A Bb C D Eb F G A# B# D# E#")},
	{"D", strings.Fields("A B C# D E F# G Cb Db Fb Gb")},
	{"Eb", strings.Fields("Ab Bb C D Eb F G G# A# B# D# E#")},
	{"A", strings.Fields("A B C# D E F# G# Cb Db Fb Gb Ab")},
	{"Ab", strings.Fields("Ab Bb C Db Eb F G G# A# B# C# D# E#")},
	{"E", strings.Fields("A B C# D# E F# G# Cb Db Eb Fb Gb Ab")},
	{"Db/C#", strings.Fields("Ab Bb C Db Eb F Gb G# A# B# C# D# E# F#")},
	{"B/Cb", strings.Fields("A# B C# D# E F# G# Bb Cb Db Eb Fb Gb Ab")},
	{"Gb/F#", strings.Fields("Ab Bb Cb Db Eb F Gb G# A# B C# D# E# F#")},
}

// Signatures returns the canonical key signature table in tie-break
// order.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	copy(out, signatures)
	return out
}

// Result carries the guess together with every signature's score, for
// callers that want to inspect how decisive the match was.
type Result struct {
	Guess      string   `json:"guess"`
	Names      []string `json:"key_sigs"`
	Scores     []int    `json:"scores"`
	Normalized []string `json:"note_names_preproc"`
}

// Guess scores a list of note-letter strings against the 12 canonical
// major key signatures and returns the best match. Input names may
// carry any case and fancy accidentals; octave digits and anything
// after the accidental are ignored. An empty input yields C.
func Guess(noteNames []string) string {
	return GuessVerbose(noteNames, false).Guess
}

// GuessWithOptions is Guess with the cosmetic fancy-character output
// toggle. Fancy rendering never affects scoring.
func GuessWithOptions(noteNames []string, fancyChars bool) string {
	return GuessVerbose(noteNames, fancyChars).Guess
}

// GuessVerbose scores every signature and reports the full breakdown.
func GuessVerbose(noteNames []string, fancyChars bool) Result {
	normalized := make([]string, 0, len(noteNames))
	for _, name := range noteNames {
		if n := Normalize(name); n != "" {
			normalized = append(normalized, n)
		}
	}

	names := make([]string, len(signatures))
	scores := make([]int, len(signatures))
	best := 0
	for i, sig := range signatures {
		names[i] = sig.Name
		for _, note := range normalized {
			if contains(sig.Members, note) {
				scores[i]++
			}
		}
		if scores[i] > scores[best] {
			best = i
		}
	}

	guess := signatures[best].Name
	if fancyChars {
		guess = strings.ReplaceAll(guess, "b", "♭")
		guess = strings.ReplaceAll(guess, "#", "♯")
	}

	return Result{Guess: guess, Names: names, Scores: scores, Normalized: normalized}
}

// Normalize reduces a note name to its uppercase letter plus plain
// b/# accidental: "ab" -> "Ab", "f♯" -> "F#", "e3" -> "E". Returns ""
// for an empty input.
func Normalize(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return ""
	}

	letter := strings.ToUpper(string(runes[0]))
	if len(runes) == 1 {
		return letter
	}

	switch runes[1] {
	case 'b', '#':
		return letter + string(runes[1])
	case '♭':
		return letter + "b"
	case '♯':
		return letter + "#"
	default:
		return letter
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
