package transpose

import (
	"errors"
	"testing"

	"github.com/notefreq/notefreq/pitch"
)

func TestOffsetWorkedExamples(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		down   bool
		extra  int
		offset int
	}{
		{"Bb clarinet", "Bb", true, 0, -2},
		{"Bb tenor saxophone", "Bb", true, 1, -14},
		{"Eb sopranino clarinet", "Eb", false, 0, 3},
		{"concert pitch", "C", true, 0, 0},
		{"clarinet in A", "A", true, 0, -3},
		{"glockenspiel", "C", false, 2, 24},
		{"piccolo in C", "C", false, 1, 12},
		{"contrabass flute", "C", true, 2, -24},
		{"piccolo in Db", "Db", false, 1, 13},
		{"english horn", "F", true, 0, -7},
	}
	for _, tt := range tests {
		got, err := Offset(tt.key, tt.down, tt.extra)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.offset {
			t.Errorf("%s: Offset(%q, %v, %d) = %d, want %d",
				tt.name, tt.key, tt.down, tt.extra, got, tt.offset)
		}
	}
}

func TestOffsetNormalizesKey(t *testing.T) {
	tests := []struct {
		key    string
		down   bool
		offset int
	}{
		{" bb ", true, -2}, // trims and title-cases
		{"BB", true, -2},
		{"Cb", true, -1}, // folded to B
		{"B#", true, 0},  // folded to C
		{"eb", false, 3},
	}
	for _, tt := range tests {
		got, err := Offset(tt.key, tt.down, 0)
		if err != nil {
			t.Errorf("Offset(%q): %v", tt.key, err)
			continue
		}
		if got != tt.offset {
			t.Errorf("Offset(%q, %v, 0) = %d, want %d", tt.key, tt.down, got, tt.offset)
		}
	}
}

func TestOffsetInvalidKey(t *testing.T) {
	for _, key := range []string{"H", "", "Do", "C##"} {
		_, err := Offset(key, true, 0)
		if err == nil {
			t.Errorf("Offset(%q) succeeded, want error", key)
			continue
		}
		var pe *pitch.ParseError
		if !errors.As(err, &pe) || pe.Kind != pitch.ErrInvalidTransposition {
			t.Errorf("Offset(%q) error = %v, want invalid transposition kind", key, err)
		}
	}
}

func TestInstrumentsTable(t *testing.T) {
	insts := Instruments()
	if len(insts) != 33 {
		t.Fatalf("len(Instruments()) = %d, want 33", len(insts))
	}
	if insts[0].Name != "None / Concert Pitch" || insts[0].HalfSteps != 0 {
		t.Errorf("first preset = %+v, want concert pitch at 0", insts[0])
	}

	want := map[string]int{
		"Clarinet in Bb":          -2,
		"Tenor Saxophone":         -14,
		"Clarinet in Eb":          3,
		"Baritone Saxophone":      -21,
		"Euphonium (Treble Clef)": -26,
		"Glockenspiel":            24,
		"Piccolo in Db":           13,
		"Alto Flute":              -5,
		"Contrabass (String)":     -12,
	}
	for name, hs := range want {
		inst, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) missing", name)
			continue
		}
		if inst.HalfSteps != hs {
			t.Errorf("%s offset = %d, want %d", name, inst.HalfSteps, hs)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	inst, ok := Lookup("clarinet in bb")
	if !ok || inst.HalfSteps != -2 {
		t.Errorf("Lookup(clarinet in bb) = %+v, %v", inst, ok)
	}
	if _, ok := Lookup("kazoo"); ok {
		t.Error("Lookup(kazoo) found an instrument")
	}
}
