package subcmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/notefreq/notefreq/blocktext"
	"github.com/notefreq/notefreq/logging"
	"github.com/notefreq/notefreq/tuning"
)

// EstimateA4 estimates the reference A4 tuning from measured frequencies.
var EstimateA4 = cli.Command{
	Name:      "a4",
	Aliases:   []string{"estimate"},
	Usage:     "Estimates the A4 reference tuning from frequencies in a block of text",
	ArgsUsage: "[filename|-]",
	Flags: append([]cli.Flag{
		cli.Float64Flag{
			Name:  "guess, g",
			Usage: `Initial A4 guess in Hz, center of the search range`,
			Value: 440,
		},
		cli.Float64Flag{
			Name:  "maxerr, e",
			Usage: `Maximum acceptable error in cents`,
			Value: 1,
		},
		cli.Float64Flag{
			Name:  "range, r",
			Usage: `Search half-range around the guess in cents`,
			Value: 50,
		},
		cli.BoolFlag{
			Name:  "flat",
			Usage: `Use a single flat grid instead of nested coarse/fine passes`,
		},
	}, logFlags()...),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)

		if ctx.Float64("maxerr") <= 0 {
			return cli.NewExitError("--maxerr must be positive", 1)
		}
		if ctx.Float64("range") <= 0 {
			return cli.NewExitError("--range must be positive", 1)
		}

		block, err := readBlock(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		probe := blocktext.DefaultFreqsToNotesOptions()
		probe.RefA4Hz = ctx.Float64("guess")
		conv, err := blocktext.FreqsToNotes(block, probe)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if len(conv.Freqs) == 0 {
			return cli.NewExitError("no frequencies found in input", 1)
		}

		opts := tuning.Options{
			InitialGuessHz: ctx.Float64("guess"),
			MaxErrCents:    ctx.Float64("maxerr"),
			HalfRangeCents: ctx.Float64("range"),
			NestedGrids:    !ctx.Bool("flat"),
		}

		est := tuning.EstimateA4(conv.Freqs, opts)
		mean := tuning.MeanAbsCents(conv.Freqs, est)

		logging.Debug("tuning estimate finished", logging.Fields{
			"freqs":          len(conv.Freqs),
			"estimate_hz":    est,
			"mean_abs_cents": mean,
		})

		status("Mean absolute deviation: %.2f cents over %d frequencies",
			mean, len(conv.Freqs))
		printResult(fmt.Sprintf("%.2f\n", est))
		return nil
	},
}
