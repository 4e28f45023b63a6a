// Package config holds the caller-supplied conversion preferences and
// resolves the Auto enharmonic settings against a guessed key
// signature.
package config

import "github.com/notefreq/notefreq/pitch"

// AccidentalMode is the overall flats-vs-sharps preference.
type AccidentalMode string

const (
	AccidentalAuto   AccidentalMode = "Auto"
	AccidentalFlats  AccidentalMode = "Flats"
	AccidentalSharps AccidentalMode = "Sharps"
)

// Choice is a per-note enharmonic preference (use B#? use Cb? ...).
type Choice string

const (
	ChoiceAuto Choice = "Auto"
	ChoiceYes  Choice = "Yes"
	ChoiceNo   Choice = "No"
)

// Config is the full configuration surface consumed by the
// conversions. Values live only for the duration of a call; nothing is
// persisted.
type Config struct {
	RefA4Hz float64 `json:"ref_a4_hz"`

	// Enharmonic preferences.
	Accidentals AccidentalMode `json:"accidentals"`
	UseFb       Choice         `json:"use_fb"`
	UseCb       Choice         `json:"use_cb"`
	UseBSharp   Choice         `json:"use_bsharp"`
	UseESharp   Choice         `json:"use_esharp"`
	FancyChars  bool           `json:"use_fancy_chars"`

	// Output shaping.
	ShowCents        bool `json:"show_cents"`
	Replace          bool `json:"replace"`
	SigFigs          int  `json:"sig_figs"`
	AppendUnits      bool `json:"append_units"`
	SpaceBeforeUnits bool `json:"space_before_units"`

	// Instrument transposition in half-steps from concert pitch.
	TranspHalfSteps int `json:"inst_transp_hsteps"`
}

// Default returns the standard configuration: A4 = 440 Hz, everything
// enharmonic on Auto, in-place replacement, 4 significant figures, no
// cents display, concert pitch.
func Default() Config {
	return Config{
		RefA4Hz:     440,
		Accidentals: AccidentalAuto,
		UseFb:       ChoiceAuto,
		UseCb:       ChoiceAuto,
		UseBSharp:   ChoiceAuto,
		UseESharp:   ChoiceAuto,
		Replace:     true,
		SigFigs:     4,
	}
}

// NeedsKeyGuess reports whether any enharmonic setting is on Auto, in
// which case ResolveSpelling wants a guessed key signature from a
// preliminary conversion pass.
func (c Config) NeedsKeyGuess() bool {
	return c.Accidentals == AccidentalAuto ||
		c.UseFb == ChoiceAuto || c.UseCb == ChoiceAuto ||
		c.UseBSharp == ChoiceAuto || c.UseESharp == ChoiceAuto
}

// ResolveSpelling turns the preference set into the concrete spelling
// booleans. keyGuess is one of the 12 canonical signature labels in
// plain b/# form (or "" when no notes were available); it only matters
// for settings left on Auto.
//
// Flats/Sharps and Yes/No settings pass through untouched. Auto
// settings derive from the guessed key: 1-4 flats choose flats, 1-4
// sharps choose sharps, and for the remaining keys the per-note
// Yes/No choices vote (a Yes for a flat spelling or a No for a sharp
// spelling counts toward flats, and vice versa), with a final
// fewest-accidentals tie-break that prefers flats except for B/Cb
// (5 sharps vs 7 flats).
func (c Config) ResolveSpelling(keyGuess string) pitch.Spelling {
	var useFlats bool
	switch c.Accidentals {
	case AccidentalFlats:
		useFlats = true
	case AccidentalSharps:
		useFlats = false
	default:
		switch keyGuess {
		case "F", "Bb", "Eb", "Ab":
			useFlats = true
		case "G", "D", "A", "E":
			useFlats = false
		default:
			score := 0 // positive favors flats
			for _, p := range []Choice{c.UseFb, c.UseCb} {
				switch p {
				case ChoiceYes:
					score++
				case ChoiceNo:
					score--
				}
			}
			for _, p := range []Choice{c.UseBSharp, c.UseESharp} {
				switch p {
				case ChoiceYes:
					score--
				case ChoiceNo:
					score++
				}
			}
			switch {
			case score > 0:
				useFlats = true
			case score < 0:
				useFlats = false
			case keyGuess == "B/Cb":
				useFlats = false // 5 sharps beat 7 flats
			default:
				useFlats = true // Gb/F# has 6 of each; default to flats
			}
		}
	}

	sp := pitch.Spelling{UseFlats: useFlats, FancyChars: c.FancyChars}

	if c.UseFb == ChoiceYes || c.UseFb == ChoiceNo {
		sp.UseFb = c.UseFb == ChoiceYes
	} else {
		sp.UseFb = keyGuess == "B/Cb" && useFlats
	}

	if c.UseCb == ChoiceYes || c.UseCb == ChoiceNo {
		sp.UseCb = c.UseCb == ChoiceYes
	} else {
		sp.UseCb = (keyGuess == "Gb/F#" || keyGuess == "B/Cb") && useFlats
	}

	if c.UseBSharp == ChoiceYes || c.UseBSharp == ChoiceNo {
		sp.UseBSharp = c.UseBSharp == ChoiceYes
	} else {
		sp.UseBSharp = keyGuess == "Db/C#" && !useFlats
	}

	if c.UseESharp == ChoiceYes || c.UseESharp == ChoiceNo {
		sp.UseESharp = c.UseESharp == ChoiceYes
	} else {
		sp.UseESharp = (keyGuess == "Db/C#" || keyGuess == "Gb/F#") && !useFlats
	}

	return sp
}
