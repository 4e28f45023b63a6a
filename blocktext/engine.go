// Package blocktext converts frequencies and note names inside
// free-form multi-line text, preserving formatting, separators, and
// comments.
//
// Lines are the unit of parsing. A trailing %-comment on a line is
// never scanned for convertible tokens. Tokens within the non-comment
// portion are separated by commas, whitespace, pipes, or slashes.
package blocktext

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/notefreq/notefreq/pitch"
)

// noteMainPattern matches the letter+accidental+octave core of a note
// name; any cents deviation trails it up to the next separator run.
var noteMainPattern = regexp.MustCompile(`[a-gA-G][#b♯♭♮]?[+-]?[0-9]+`)

// trailingSeparators peels the separator run off the end of the text
// between two note names, leaving a cents suffix to reattach.
var trailingSeparators = regexp.MustCompile(`[,\s\p{Zs}|/]+$`)

// hasDigit gates the frequency direction per line.
var hasDigit = regexp.MustCompile(`[0-9]`)

// FreqsToNotesOptions configures the frequency-to-note-name direction.
type FreqsToNotesOptions struct {
	Replace         bool           `json:"replace"` // replace in place; otherwise append a derived line
	RefA4Hz         float64        `json:"ref_a4_hz"`
	TranspHalfSteps float64        `json:"inst_transp_hsteps"`
	Spelling        pitch.Spelling `json:"spelling"`
	ShowCents       bool           `json:"show_cents"`
	CentsWhitespace bool           `json:"cents_whitespace"`
}

// DefaultFreqsToNotesOptions returns in-place replacement at concert
// pitch against A4 = 440 Hz, spelling accidentals as flats. Flats are
// the library-wide default spelling, which matters for key guessing:
// the G major signature lists F# but not Gb, so a sharps-spelled
// preliminary pass would bias pitch-class-6 notes toward G.
func DefaultFreqsToNotesOptions() FreqsToNotesOptions {
	return FreqsToNotesOptions{Replace: true, RefA4Hz: 440, Spelling: pitch.Spelling{UseFlats: true}}
}

// NotesToFreqsOptions configures the note-name-to-frequency direction.
type NotesToFreqsOptions struct {
	Replace          bool    `json:"replace"`
	RefA4Hz          float64 `json:"ref_a4_hz"`
	TranspHalfSteps  float64 `json:"inst_transp_hsteps"`
	SigFigs          int     `json:"sig_figs"`           // significant digits in the numeric output
	AppendUnits      bool    `json:"append_units"`       // suffix "Hz"
	SpaceBeforeUnits bool    `json:"space_before_units"` // " Hz" instead of "Hz"
}

// DefaultNotesToFreqsOptions returns in-place replacement at concert
// pitch against A4 = 440 Hz with 4 significant figures and no units.
func DefaultNotesToFreqsOptions() NotesToFreqsOptions {
	return NotesToFreqsOptions{Replace: true, RefA4Hz: 440, SigFigs: 4}
}

// Conversion is an engine result: the rewritten block plus the
// aggregate frequency and note-name lists in encounter order, for
// feeding the A4 estimator or the key signature guesser.
type Conversion struct {
	Text  string
	Freqs []float64
	Notes []string
}

// FreqsToNotes converts every frequency in the block to its note name.
// Conversion is all-or-nothing: the first malformed token fails the
// whole block.
func FreqsToNotes(block string, opts FreqsToNotesOptions) (Conversion, error) {
	conv := Conversion{}
	fo := pitch.FormatOptions{ShowCents: opts.ShowCents, CentsWhitespace: opts.CentsWhitespace}

	text, err := processLines(block, opts.Replace, func(pre string) (string, bool, error) {
		if !hasDigit.MatchString(pre) {
			return "", false, nil
		}

		var out strings.Builder
		for _, tok := range splitKeepSeparators(pre) {
			if !hasDigit.MatchString(tok) {
				out.WriteString(tok)
				continue
			}
			freq, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return "", false, errors.Wrapf(err, "malformed frequency %q", tok)
			}
			note, err := pitch.FrequencyToNote(freq, opts.RefA4Hz, opts.TranspHalfSteps, opts.Spelling, fo)
			if err != nil {
				return "", false, err
			}
			out.WriteString(note.Name)
			conv.Freqs = append(conv.Freqs, freq)
			conv.Notes = append(conv.Notes, note.Name)
		}
		return out.String(), true, nil
	})
	if err != nil {
		return Conversion{}, err
	}

	conv.Text = text
	return conv, nil
}

// NotesToFreqs converts every note name in the block to its frequency.
// Conversion is all-or-nothing: the first malformed note name fails
// the whole block.
func NotesToFreqs(block string, opts NotesToFreqsOptions) (Conversion, error) {
	conv := Conversion{}
	sigFigs := opts.SigFigs
	if sigFigs <= 0 {
		sigFigs = 4
	}

	text, err := processLines(block, opts.Replace, func(pre string) (string, bool, error) {
		locs := noteMainPattern.FindAllStringIndex(pre, -1)
		if locs == nil {
			return "", false, nil
		}

		var out strings.Builder
		out.WriteString(pre[:locs[0][0]]) // leading text stays verbatim

		for i, loc := range locs {
			main := pre[loc[0]:loc[1]]

			// Text up to the next note (or end of line) holds an
			// optional cents deviation followed by separators.
			trailEnd := len(pre)
			if i+1 < len(locs) {
				trailEnd = locs[i+1][0]
			}
			trail := pre[loc[1]:trailEnd]

			seps := ""
			if m := trailingSeparators.FindStringIndex(trail); m != nil {
				seps = trail[m[0]:]
				trail = trail[:m[0]]
			}

			full := main + trail
			freq, err := pitch.NoteToFrequency(full, opts.RefA4Hz, opts.TranspHalfSteps)
			if err != nil {
				return "", false, err
			}

			conv.Notes = append(conv.Notes, full)
			conv.Freqs = append(conv.Freqs, freq)

			out.WriteString(formatFreq(freq, sigFigs, opts.AppendUnits, opts.SpaceBeforeUnits))
			out.WriteString(seps)
		}
		return out.String(), true, nil
	})
	if err != nil {
		return Conversion{}, err
	}

	conv.Text = text
	return conv, nil
}

// convertLine rewrites the pre-comment portion of one line. The bool
// reports whether the line contained convertible tokens at all.
type convertLine func(pre string) (string, bool, error)

// processLines drives a conversion over the whole block: split into
// lines with their terminators preserved, strip and reattach trailing
// %-comments, and rebuild the output in one forward pass. In append
// mode the derived line is inserted directly beneath its original, so
// no insertion-index bookkeeping is needed.
func processLines(block string, replace bool, convert convertLine) (string, error) {
	var out strings.Builder

	for _, tok := range splitKeepNewlines(block) {
		if tok == "\n" || tok == "\r" {
			out.WriteString(tok)
			continue
		}

		pre, comment := splitComment(tok)
		converted, hadTokens, err := convert(pre)
		if err != nil {
			return "", err
		}
		if !hadTokens {
			out.WriteString(tok)
			continue
		}

		if replace {
			out.WriteString(converted)
			out.WriteString(comment)
		} else {
			// Original line untouched; derived line follows it with
			// no duplicate comment.
			out.WriteString(tok)
			out.WriteString("\n")
			out.WriteString(converted)
		}
	}

	return out.String(), nil
}

// splitKeepNewlines splits a block into content segments and
// single-character line terminators, so the output reconstructs
// byte-for-byte except where content changed.
func splitKeepNewlines(block string) []string {
	var toks []string
	start := 0
	for i := 0; i < len(block); i++ {
		if block[i] == '\n' || block[i] == '\r' {
			toks = append(toks, block[start:i], block[i:i+1])
			start = i + 1
		}
	}
	return append(toks, block[start:])
}

// splitComment separates the convertible portion of a line from a
// trailing %-comment. The comment keeps its % so reattachment is
// verbatim.
func splitComment(line string) (pre, comment string) {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		return line[:i], line[i:]
	}
	return line, ""
}

// splitKeepSeparators splits on the separator class, keeping each
// separator character as its own literal token. Whitespace is the
// full Unicode class, so no-break spaces separate tokens too.
func splitKeepSeparators(s string) []string {
	var toks []string
	start := 0
	for i, r := range s {
		if r == ',' || r == '|' || r == '/' || unicode.IsSpace(r) {
			toks = append(toks, s[start:i], string(r))
			start = i + utf8.RuneLen(r)
		}
	}
	return append(toks, s[start:])
}

// formatFreq renders a frequency with the given significant figures
// and optional Hz unit.
func formatFreq(v float64, sigFigs int, units, spaceBeforeUnits bool) string {
	s := strconv.FormatFloat(v, 'g', sigFigs, 64)
	if units {
		if spaceBeforeUnits {
			return s + " Hz"
		}
		return s + "Hz"
	}
	return s
}
