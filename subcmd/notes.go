package subcmd

import (
	"github.com/urfave/cli"

	"github.com/notefreq/notefreq/blocktext"
	"github.com/notefreq/notefreq/logging"
)

// NotesToFreqs converts note names to frequencies in a block of text.
var NotesToFreqs = cli.Command{
	Name:      "n2f",
	Aliases:   []string{"notes"},
	Usage:     "Converts note names to frequencies in Hz in a block of text",
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
		cli.IntFlag{
			Name:  "sigfigs, g",
			Usage: `Significant figures in frequency output`,
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "units, z",
			Usage: `Append "Hz" to each frequency`,
		},
		cli.BoolFlag{
			Name:  "space",
			Usage: `Put a space before the units suffix`,
		},
	}, transpositionFlags()...), logFlags()...),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)

		transp, err := resolveTransposition(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		block, err := readBlock(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		opts := blocktext.NotesToFreqsOptions{
			Replace:          !ctx.Bool("append"),
			RefA4Hz:          ctx.Float64("a4"),
			TranspHalfSteps:  float64(transp),
			SigFigs:          ctx.Int("sigfigs"),
			AppendUnits:      ctx.Bool("units"),
			SpaceBeforeUnits: ctx.Bool("space"),
		}

		conv, err := blocktext.NotesToFreqs(block, opts)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		logging.Info("converted note names to frequencies", logging.Fields{
			"count": len(conv.Freqs),
		})
		printResult(conv.Text)
		return nil
	},
}
