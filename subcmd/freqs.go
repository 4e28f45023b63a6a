package subcmd

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/notefreq/notefreq/blocktext"
	"github.com/notefreq/notefreq/config"
	"github.com/notefreq/notefreq/keysig"
	"github.com/notefreq/notefreq/logging"
)

// FreqsToNotes converts frequencies to note names in a block of text.
var FreqsToNotes = cli.Command{
	Name:      "f2n",
	Aliases:   []string{"freqs"},
	Usage:     "Converts frequencies in Hz to note names in a block of text",
	ArgsUsage: "[filename|-]",
	Flags: append(append([]cli.Flag{
		cli.Float64Flag{
			Name:  "a4",
			Usage: `Reference A4 frequency in Hz`,
			Value: 440,
		},
		cli.BoolFlag{
			Name:  "append, n",
			Usage: `Insert converted lines beneath the originals instead of replacing`,
		},
		cli.BoolFlag{
			Name:  "cents, c",
			Usage: `Show cents deviations in note names`,
		},
		cli.BoolFlag{
			Name:  "fancy, f",
			Usage: `Render accidentals as ♭/♯`,
		},
		cli.StringFlag{
			Name:  "accidentals, a",
			Usage: `Overall enharmonic preference: auto, flats, or sharps`,
			Value: "auto",
		},
		cli.StringFlag{
			Name:  "fb",
			Usage: `Spell E as Fb: auto, yes, or no`,
			Value: "auto",
		},
		cli.StringFlag{
			Name:  "cb",
			Usage: `Spell B as Cb: auto, yes, or no`,
			Value: "auto",
		},
		cli.StringFlag{
			Name:  "bsharp",
			Usage: `Spell C as B#: auto, yes, or no`,
			Value: "auto",
		},
		cli.StringFlag{
			Name:  "esharp",
			Usage: `Spell F as E#: auto, yes, or no`,
			Value: "auto",
		},
	}, transpositionFlags()...), logFlags()...),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)

		cfg, err := configFromFlags(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		block, err := readBlock(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		text, key, err := convertFreqsToNotes(block, cfg)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		if key != "" {
			status("Key signature guess: %s", key)
		}
		printResult(text)
		return nil
	},
}

// configFromFlags builds the conversion config shared by f2n and n2f.
func configFromFlags(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	cfg.RefA4Hz = ctx.Float64("a4")
	cfg.Replace = !ctx.Bool("append")
	cfg.ShowCents = ctx.Bool("cents")
	cfg.FancyChars = ctx.Bool("fancy")

	switch ctx.String("accidentals") {
	case "", "auto":
		cfg.Accidentals = config.AccidentalAuto
	case "flats":
		cfg.Accidentals = config.AccidentalFlats
	case "sharps":
		cfg.Accidentals = config.AccidentalSharps
	default:
		return cfg, errors.Errorf("invalid --accidentals %q (want auto, flats, or sharps)", ctx.String("accidentals"))
	}

	var err error
	if cfg.UseFb, err = parseChoice(ctx.String("fb")); err != nil {
		return cfg, err
	}
	if cfg.UseCb, err = parseChoice(ctx.String("cb")); err != nil {
		return cfg, err
	}
	if cfg.UseBSharp, err = parseChoice(ctx.String("bsharp")); err != nil {
		return cfg, err
	}
	if cfg.UseESharp, err = parseChoice(ctx.String("esharp")); err != nil {
		return cfg, err
	}

	cfg.TranspHalfSteps, err = resolveTransposition(ctx)
	return cfg, err
}

// convertFreqsToNotes runs the frequency-to-note conversion, with a
// preliminary pass to guess the key signature whenever any enharmonic
// setting is on Auto. The guessed key (or "" if none was needed or no
// notes were found) is returned for display.
func convertFreqsToNotes(block string, cfg config.Config) (string, string, error) {
	keyGuess := ""
	if cfg.NeedsKeyGuess() {
		probe := blocktext.DefaultFreqsToNotesOptions()
		probe.RefA4Hz = cfg.RefA4Hz
		probe.TranspHalfSteps = float64(cfg.TranspHalfSteps)

		prelim, err := blocktext.FreqsToNotes(block, probe)
		if err != nil {
			return "", "", err
		}
		if len(prelim.Notes) > 0 {
			keyGuess = keysig.Guess(prelim.Notes)
			logging.Debug("key signature guessed for enharmonic resolution",
				logging.Fields{"key": keyGuess})
		}
	}

	opts := blocktext.FreqsToNotesOptions{
		Replace:         cfg.Replace,
		RefA4Hz:         cfg.RefA4Hz,
		TranspHalfSteps: float64(cfg.TranspHalfSteps),
		Spelling:        cfg.ResolveSpelling(keyGuess),
		ShowCents:       cfg.ShowCents,
	}

	conv, err := blocktext.FreqsToNotes(block, opts)
	if err != nil {
		return "", "", err
	}

	logging.Info("converted frequencies to note names", logging.Fields{
		"count": len(conv.Notes),
	})
	return conv.Text, keyGuess, nil
}
