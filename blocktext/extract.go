package blocktext

import "regexp"

// separatorRuns splits a line into candidate note names.
var separatorRuns = regexp.MustCompile(`[,\s\p{Zs}|/]+`)

// ExtractNoteLetters collects the letter+accidental parts of the note
// names in a block, in encounter order, for feeding the key signature
// guesser. Comments are ignored; octave numbers and cents deviations
// are dropped; case and fancy accidentals are kept as written (the
// guesser normalizes).
func ExtractNoteLetters(block string) []string {
	var letters []string

	for _, tok := range splitKeepNewlines(block) {
		if tok == "\n" || tok == "\r" {
			continue
		}
		pre, _ := splitComment(tok)

		for _, cand := range separatorRuns.Split(pre, -1) {
			if cand == "" {
				continue
			}
			r := []rune(cand)
			if !isNoteLetter(r[0]) {
				continue
			}
			if len(r) > 1 && isAccidental(r[1]) {
				letters = append(letters, string(r[:2]))
			} else {
				letters = append(letters, string(r[:1]))
			}
		}
	}

	return letters
}

func isNoteLetter(r rune) bool {
	return (r >= 'A' && r <= 'G') || (r >= 'a' && r <= 'g')
}

func isAccidental(r rune) bool {
	return r == '#' || r == 'b' || r == '♯' || r == '♭'
}
