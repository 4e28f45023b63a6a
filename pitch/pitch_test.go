package pitch

import (
	"math"
	"testing"
)

func TestNoteToFrequencyA4(t *testing.T) {
	f, err := NoteToFrequency("A4", 440, 0)
	if err != nil {
		t.Fatalf("NoteToFrequency(A4): %v", err)
	}
	if f != 440.0 {
		t.Errorf("A4 at ref 440 = %v, want exactly 440", f)
	}
}

func TestFrequencyToNoteA4(t *testing.T) {
	n, err := FrequencyToNote(440, 440, 0, Spelling{}, FormatOptions{})
	if err != nil {
		t.Fatalf("FrequencyToNote(440): %v", err)
	}
	if n.Name != "A4" {
		t.Errorf("440 Hz at ref 440 = %q, want A4", n.Name)
	}
	if n.K != 0 || n.Octave != 4 || n.M != 0 {
		t.Errorf("decomposition = (k=%d n=%d m=%d), want (0 4 0)", n.K, n.Octave, n.M)
	}
	if math.Abs(n.Cents) > 1e-9 {
		t.Errorf("cents = %v, want 0", n.Cents)
	}
}

func TestNoteToFrequencyExamples(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"A4", 440},
		{"A5", 880},
		{"A3", 220},
		{"C4", 440 * math.Exp2(-9.0/12)},
		{"E2 - 10 cents", 440 * math.Exp2(-29.0/12-10.0/1200)},
		{"F6+21cents", 440 * math.Exp2(20.0/12+21.0/1200)},
		{"Ab3-14", 440 * math.Exp2(-13.0/12-14.0/1200)},
		{"E#-1+3", 440 * math.Exp2(-64.0/12+3.0/1200)},
		{"a-1 + 5", 440 * math.Exp2(-60.0/12+5.0/1200)},
	}
	for _, tt := range tests {
		got, err := NoteToFrequency(tt.name, 440, 0)
		if err != nil {
			t.Errorf("NoteToFrequency(%q): %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NoteToFrequency(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRoundTripAllLettersAndOctaves(t *testing.T) {
	letters := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	for _, letter := range letters {
		for oct := -1; oct <= 8; oct++ {
			in := letter + itoa(oct)
			f, err := NoteToFrequency(in, 440, 0)
			if err != nil {
				t.Fatalf("NoteToFrequency(%q): %v", in, err)
			}
			out, err := FrequencyToNote(f, 440, 0, Spelling{}, FormatOptions{})
			if err != nil {
				t.Fatalf("FrequencyToNote(%v): %v", f, err)
			}
			if out.Name != in {
				t.Errorf("round trip %q -> %v Hz -> %q", in, f, out.Name)
			}
		}
	}
}

func itoa(n int) string {
	if n < 0 {
		return "-" + itoa(-n)
	}
	if n < 10 {
		return string(rune('0' + n))
	}
	return itoa(n/10) + string(rune('0'+n%10))
}

func TestPitchInvariant(t *testing.T) {
	// k = 12(n-4) + m must hold for every decomposition.
	for k := -60; k <= 60; k++ {
		n := Spell(k, Spelling{})
		if n.K != 12*(n.Octave-4)+n.M {
			t.Errorf("k=%d: 12(%d-4)+%d = %d", k, n.Octave, n.M, 12*(n.Octave-4)+n.M)
		}
	}
}

func TestTranspositionSignConvention(t *testing.T) {
	// A Bb clarinet (offset -2) playing a written D5 sounds a concert
	// C5; a concert C5 must be written as D5 for that instrument.
	const offset = -2

	f, err := NoteToFrequency("D5", 440, offset)
	if err != nil {
		t.Fatalf("NoteToFrequency: %v", err)
	}
	c5, _ := NoteToFrequency("C5", 440, 0)
	if math.Abs(f-c5) > 1e-9 {
		t.Errorf("written D5 on Bb clarinet = %v Hz, want concert C5 = %v Hz", f, c5)
	}

	n, err := FrequencyToNote(c5, 440, offset, Spelling{}, FormatOptions{})
	if err != nil {
		t.Fatalf("FrequencyToNote: %v", err)
	}
	if n.Name != "D5" {
		t.Errorf("concert C5 written for Bb clarinet = %q, want D5", n.Name)
	}
}

func TestCentsFormatting(t *testing.T) {
	freq := 440 * math.Exp2(10.0/1200) // A4 + 10 cents

	padded, err := FrequencyToNote(freq, 440, 0, Spelling{}, FormatOptions{ShowCents: true, CentsWhitespace: true})
	if err != nil {
		t.Fatalf("FrequencyToNote: %v", err)
	}
	if padded.Name != "A4 + 10.0 cents" {
		t.Errorf("padded = %q, want %q", padded.Name, "A4 + 10.0 cents")
	}

	compact, err := FrequencyToNote(freq, 440, 0, Spelling{}, FormatOptions{ShowCents: true})
	if err != nil {
		t.Fatalf("FrequencyToNote: %v", err)
	}
	if compact.Name != "A4+10.0cents" {
		t.Errorf("compact = %q, want %q", compact.Name, "A4+10.0cents")
	}

	low := 440 * math.Exp2(-10.0/1200)
	down, err := FrequencyToNote(low, 440, 0, Spelling{}, FormatOptions{ShowCents: true, CentsWhitespace: true})
	if err != nil {
		t.Fatalf("FrequencyToNote: %v", err)
	}
	if down.Name != "A4 - 10.0 cents" {
		t.Errorf("negative = %q, want %q", down.Name, "A4 - 10.0 cents")
	}
}

func TestFrequencyToNoteRejectsNonPositive(t *testing.T) {
	if _, err := FrequencyToNote(0, 440, 0, Spelling{}, FormatOptions{}); err == nil {
		t.Error("FrequencyToNote(0) succeeded, want error")
	}
	if _, err := FrequencyToNote(440, -1, 0, Spelling{}, FormatOptions{}); err == nil {
		t.Error("FrequencyToNote with negative reference succeeded, want error")
	}
}

func TestCentsOffset(t *testing.T) {
	tests := []struct {
		freq, ref, want float64
	}{
		{440, 440, 0},
		{440 * math.Exp2(25.0/1200), 440, 25},
		{440 * math.Exp2(-25.0/1200), 440, -25},
		{880 * math.Exp2(10.0/1200), 440, 10},
	}
	for _, tt := range tests {
		got := CentsOffset(tt.freq, tt.ref)
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("CentsOffset(%v, %v) = %v, want %v", tt.freq, tt.ref, got, tt.want)
		}
	}
}
