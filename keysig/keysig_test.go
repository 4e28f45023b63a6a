package keysig

import (
	"reflect"
	"testing"
)

func TestGuessTieBreakPrefersCanonicalOrder(t *testing.T) {
	// F, A, C are members of many keys; the tie must resolve to C,
	// first in the canonical order.
	if got := Guess([]string{"F", "A", "C"}); got != "C" {
		t.Errorf("Guess(F A C) = %q, want C", got)
	}
}

func TestGuessFlatKeys(t *testing.T) {
	tests := []struct {
		notes []string
		want  string
	}{
		{[]string{"Bb", "Eb"}, "Bb"},
		{[]string{"Bb", "Eb", "Ab"}, "Eb"},
		{[]string{"Bb", "Eb", "Ab", "Db"}, "Ab"},
		{[]string{"F#", "C#"}, "D"},
		{[]string{"F#"}, "G"},
		{[]string{"Bb"}, "F"},
	}
	for _, tt := range tests {
		if got := Guess(tt.notes); got != tt.want {
			t.Errorf("Guess(%v) = %q, want %q", tt.notes, got, tt.want)
		}
	}
}

func TestGuessAcceptsEnharmonicAliases(t *testing.T) {
	// Cb and B# score as members of C major.
	if got := Guess([]string{"Cb", "B#", "E", "G"}); got != "C" {
		t.Errorf("Guess(Cb B# E G) = %q, want C", got)
	}
}

func TestGuessNormalizesInput(t *testing.T) {
	// Lowercase letters, fancy accidentals, and trailing octave
	// digits must not affect scoring.
	a := Guess([]string{"bb", "e♭", "Ab3", "db"})
	b := Guess([]string{"Bb", "Eb", "Ab", "Db"})
	if a != b {
		t.Errorf("normalized guess %q != canonical guess %q", a, b)
	}
}

func TestGuessEmptyInput(t *testing.T) {
	if got := Guess(nil); got != "C" {
		t.Errorf("Guess(nil) = %q, want C", got)
	}
}

func TestGuessFancyOutput(t *testing.T) {
	got := GuessWithOptions([]string{"Bb", "Eb"}, true)
	if got != "B♭" {
		t.Errorf("fancy guess = %q, want B♭", got)
	}
	// Cosmetic only: plain output unchanged.
	if plain := Guess([]string{"Bb", "Eb"}); plain != "Bb" {
		t.Errorf("plain guess = %q, want Bb", plain)
	}
}

func TestGuessVerboseScores(t *testing.T) {
	res := GuessVerbose([]string{"F", "A", "C"}, false)
	if len(res.Scores) != 12 || len(res.Names) != 12 {
		t.Fatalf("verbose result sizes = %d names, %d scores", len(res.Names), len(res.Scores))
	}
	if res.Names[0] != "C" || res.Scores[0] != 3 {
		t.Errorf("C score = %d, want 3", res.Scores[0])
	}
	if res.Guess != "C" {
		t.Errorf("verbose guess = %q, want C", res.Guess)
	}
	if !reflect.DeepEqual(res.Normalized, []string{"F", "A", "C"}) {
		t.Errorf("normalized = %v", res.Normalized)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ab", "Ab"},
		{"A#", "A#"},
		{"f♯", "F#"},
		{"e♭", "Eb"},
		{"e3", "E"},
		{"C", "C"},
		{"", ""},
		{"g#4", "G#"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
