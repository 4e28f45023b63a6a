package transpose

import "strings"

// Instrument is a named transposition preset with its derived
// half-step offset.
type Instrument struct {
	Name      string `json:"name"`
	Spec      Spec   `json:"spec"`
	HalfSteps int    `json:"inst_transp_hsteps"`
}

// presets lists the built-in instruments. Read-only reference data;
// the keys here are all valid, so deriving offsets cannot fail.
var presets = []struct {
	name string
	spec Spec
}{
	{"None / Concert Pitch", Spec{Key: "C", Down: true}},
	{"Alto Clarinet in Eb", Spec{Key: "Eb", Down: true}},
	{"Alto Flute", Spec{Key: "G", Down: true}},
	{"Alto Saxophone", Spec{Key: "Eb", Down: true}},
	{"Baritone Saxophone", Spec{Key: "Eb", Down: true, ExtraOctaves: 1}},
	{"Bass Clarinet in Bb", Spec{Key: "Bb", Down: true, ExtraOctaves: 1}},
	{"Bass Flute", Spec{Key: "C", Down: true, ExtraOctaves: 1}},
	{"Bassoon", Spec{Key: "C", Down: true}},
	{"Clarinet in A", Spec{Key: "A", Down: true}},
	{"Clarinet in Bb", Spec{Key: "Bb", Down: true}},
	{"Clarinet in Eb", Spec{Key: "Eb"}},
	{"Contrabass (String)", Spec{Key: "C", Down: true, ExtraOctaves: 1}},
	{"Contrabass Flute", Spec{Key: "C", Down: true, ExtraOctaves: 2}},
	{"Contrabassoon", Spec{Key: "C", Down: true, ExtraOctaves: 1}},
	{"English Horn", Spec{Key: "F", Down: true}},
	{"Euphonium (Treble Clef)", Spec{Key: "Bb", Down: true, ExtraOctaves: 2}},
	{"Flute", Spec{Key: "C", Down: true}},
	{"French Horn", Spec{Key: "F", Down: true}},
	{"Glockenspiel", Spec{Key: "C", ExtraOctaves: 2}},
	{"Marimba", Spec{Key: "C", Down: true}},
	{"Oboe", Spec{Key: "C", Down: true}},
	{"Piano", Spec{Key: "C", Down: true}},
	{"Piccolo in C", Spec{Key: "C", ExtraOctaves: 1}},
	{"Piccolo in Db", Spec{Key: "Db", ExtraOctaves: 1}},
	{"Soprano Saxophone", Spec{Key: "Bb", Down: true}},
	{"Tenor Saxophone", Spec{Key: "Bb", Down: true, ExtraOctaves: 1}},
	{"Trombone", Spec{Key: "C", Down: true}},
	{"Trumpet in Bb", Spec{Key: "Bb", Down: true}},
	{"Tuba", Spec{Key: "C", Down: true}},
	{"Violin", Spec{Key: "C", Down: true}},
	{"Viola", Spec{Key: "C", Down: true}},
	{"Violoncello", Spec{Key: "C", Down: true}},
	{"Xylophone", Spec{Key: "C", ExtraOctaves: 1}},
}

// Instruments returns the preset table with derived offsets, in a
// fixed display order starting with concert pitch.
func Instruments() []Instrument {
	out := make([]Instrument, 0, len(presets))
	for _, p := range presets {
		hs, _ := OffsetForSpec(p.spec)
		out = append(out, Instrument{Name: p.name, Spec: p.spec, HalfSteps: hs})
	}
	return out
}

// Lookup finds a preset instrument by name, case-insensitively.
func Lookup(name string) (Instrument, bool) {
	for _, inst := range Instruments() {
		if strings.EqualFold(inst.Name, name) {
			return inst, true
		}
	}
	return Instrument{}, false
}
