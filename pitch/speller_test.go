package pitch

import "testing"

func TestSpellNaturalsAndSharps(t *testing.T) {
	tests := []struct {
		k    int
		name string
	}{
		{0, "A4"},
		{2, "B4"},
		{3, "C5"},
		{-9, "C4"},
		{-8, "C#4"},
		{-6, "D#4"},
		{1, "A#4"},
		{-12, "A3"},
		{12, "A5"},
		{-13, "G#3"},
	}
	for _, tt := range tests {
		got := Spell(tt.k, Spelling{})
		if got.Name != tt.name {
			t.Errorf("Spell(%d) = %q, want %q", tt.k, got.Name, tt.name)
		}
	}
}

func TestSpellFlats(t *testing.T) {
	sp := Spelling{UseFlats: true}
	tests := []struct {
		k    int
		name string
	}{
		{-8, "Db4"},
		{-6, "Eb4"},
		{-3, "Gb4"},
		{-1, "Ab4"},
		{1, "Bb4"},
	}
	for _, tt := range tests {
		got := Spell(tt.k, sp)
		if got.Name != tt.name {
			t.Errorf("Spell(%d, flats) = %q, want %q", tt.k, got.Name, tt.name)
		}
	}
}

func TestSpellSpecialNaturals(t *testing.T) {
	// Fb replaces E with no index change.
	fb := Spell(-5, Spelling{UseFlats: true, UseFb: true})
	if fb.Name != "Fb4" || fb.M != -5 || fb.Octave != 4 {
		t.Errorf("Fb spelling = %+v", fb)
	}

	// Cb replaces B and moves into the next octave's index space.
	cb := Spell(2, Spelling{UseFlats: true, UseCb: true})
	if cb.Name != "Cb5" || cb.M != -10 || cb.Octave != 5 {
		t.Errorf("Cb spelling = %+v", cb)
	}
	if cb.K != 12*(cb.Octave-4)+cb.M {
		t.Errorf("Cb breaks k = 12(n-4)+m: %+v", cb)
	}

	// E# replaces F.
	es := Spell(-4, Spelling{UseESharp: true})
	if es.Name != "E#4" || es.M != -4 {
		t.Errorf("E# spelling = %+v", es)
	}

	// B# replaces C and moves into the previous octave's index space.
	bs := Spell(3, Spelling{UseBSharp: true})
	if bs.Name != "B#4" || bs.M != 3 || bs.Octave != 4 {
		t.Errorf("B# spelling = %+v", bs)
	}
	if bs.K != 12*(bs.Octave-4)+bs.M {
		t.Errorf("B# breaks k = 12(n-4)+m: %+v", bs)
	}
}

func TestFlatsDominates(t *testing.T) {
	// With flats on, B# must never be produced.
	for k := -30; k <= 30; k++ {
		n := Spell(k, Spelling{UseFlats: true, UseBSharp: true, UseESharp: true})
		if n.Letter == "B#" || n.Letter == "E#" {
			t.Errorf("Spell(%d) produced %s despite flats preference", k, n.Letter)
		}
	}
	// With flats off, Cb and Fb must never be produced.
	for k := -30; k <= 30; k++ {
		n := Spell(k, Spelling{UseCb: true, UseFb: true})
		if n.Letter == "Cb" || n.Letter == "Fb" {
			t.Errorf("Spell(%d) produced %s despite sharps preference", k, n.Letter)
		}
	}
}

func TestFancyChars(t *testing.T) {
	flat := Spell(1, Spelling{UseFlats: true, FancyChars: true})
	if flat.Name != "B♭4" {
		t.Errorf("fancy flat = %q, want B♭4", flat.Name)
	}
	if flat.Letter != "Bb" {
		t.Errorf("Letter should stay plain: %q", flat.Letter)
	}

	sharp := Spell(-8, Spelling{FancyChars: true})
	if sharp.Name != "C♯4" {
		t.Errorf("fancy sharp = %q, want C♯4", sharp.Name)
	}
}
