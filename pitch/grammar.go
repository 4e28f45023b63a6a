package pitch

import (
	"strconv"
	"strings"
	"unicode"
)

// The note-name grammar, written out so edge cases are testable in
// isolation rather than emerging from chained pattern splits:
//
//	note       := ws* letter accidental? ws* octave cents? ws*
//	letter     := [A-Ga-g]
//	accidental := "#" | "b" | "♯" | "♭" | "♮"   (♮ is stripped)
//	octave     := ("+"|"-")? ws* digits
//	cents      := ws* ("+"|"-") ws* number ws* letters?
//
// The trailing letters run admits the literal word "cents". Examples
// accepted: "E2 - 10 cents", "F6+21cents", "Ab3-14", "E#-1+3",
// "a-1 + 5".

// ParsedNote is the structural form of a note-name token.
type ParsedNote struct {
	Letter string  // canonical letter+accidental, e.g. "A", "Eb", "F#"
	Octave int     // signed octave number
	Cents  float64 // signed cents deviation, 0 when absent
}

// ParseNoteName parses a note-name token. It fails with a
// MalformedNoteName kind when the token does not match the grammar.
func ParseNoteName(s string) (ParsedNote, error) {
	p := &noteScanner{src: []rune(normalizeAccidentals(s)), orig: s}

	p.skipSpace()

	letter, err := p.scanLetter()
	if err != nil {
		return ParsedNote{}, err
	}

	p.skipSpace()

	octave, err := p.scanSignedInt()
	if err != nil {
		return ParsedNote{}, err
	}

	cents, err := p.scanCents()
	if err != nil {
		return ParsedNote{}, err
	}

	p.skipSpace()
	if !p.eof() {
		return ParsedNote{}, malformed(s, "unexpected trailing characters")
	}

	return ParsedNote{Letter: letter, Octave: octave, Cents: cents}, nil
}

// normalizeAccidentals rewrites fancy Unicode accidentals to their
// plain forms and drops natural signs.
func normalizeAccidentals(s string) string {
	s = strings.ReplaceAll(s, "♭", "b")
	s = strings.ReplaceAll(s, "♯", "#")
	s = strings.ReplaceAll(s, "♮", "")
	return s
}

type noteScanner struct {
	src  []rune
	pos  int
	orig string
}

func (p *noteScanner) eof() bool { return p.pos >= len(p.src) }

func (p *noteScanner) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *noteScanner) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

// scanLetter consumes the note letter and an optional accidental
// directly after it. The letter is canonicalized to uppercase.
func (p *noteScanner) scanLetter() (string, error) {
	if p.eof() {
		return "", malformed(p.orig, "empty note name")
	}
	r := p.peek()
	if r < 'A' || (r > 'G' && r < 'a') || r > 'g' {
		return "", malformed(p.orig, "note letter must be A-G")
	}
	p.pos++

	letter := string(unicode.ToUpper(r))
	if c := p.peek(); c == '#' || c == 'b' {
		letter += string(c)
		p.pos++
	}
	return letter, nil
}

// scanSignedInt consumes the octave number: an optional sign, optional
// whitespace, then at least one digit.
func (p *noteScanner) scanSignedInt() (int, error) {
	neg := false
	if c := p.peek(); c == '+' || c == '-' {
		neg = c == '-'
		p.pos++
		p.skipSpace()
	}

	start := p.pos
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, malformed(p.orig, "missing octave digits")
	}

	v, err := strconv.Atoi(string(p.src[start:p.pos]))
	if err != nil {
		return 0, malformed(p.orig, "octave out of range")
	}
	if neg {
		v = -v
	}
	return v, nil
}

// scanCents consumes the optional cents suffix: a mandatory sign, a
// real number, and an optional trailing word such as "cents".
func (p *noteScanner) scanCents() (float64, error) {
	p.skipSpace()
	if p.eof() {
		return 0, nil
	}

	c := p.peek()
	if c != '+' && c != '-' {
		return 0, malformed(p.orig, "expected +/- before cents deviation")
	}
	neg := c == '-'
	p.pos++
	p.skipSpace()

	start := p.pos
	seenDigit := false
	for !p.eof() {
		r := p.peek()
		if r >= '0' && r <= '9' {
			seenDigit = true
			p.pos++
		} else if r == '.' {
			p.pos++
		} else {
			break
		}
	}
	if !seenDigit {
		return 0, malformed(p.orig, "missing cents digits")
	}

	v, err := strconv.ParseFloat(string(p.src[start:p.pos]), 64)
	if err != nil {
		return 0, malformed(p.orig, "unparsable cents deviation")
	}
	if neg {
		v = -v
	}

	// Optional unit word ("cents"), letters only.
	p.skipSpace()
	for !p.eof() && unicode.IsLetter(p.peek()) {
		p.pos++
	}

	return v, nil
}
