package subcmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/notefreq/notefreq/blocktext"
	"github.com/notefreq/notefreq/keysig"
)

// GuessKey guesses the major key signature from note names in a block
// of text.
var GuessKey = cli.Command{
	Name:      "key",
	Usage:     "Guesses the major key signature from note names in a block of text",
	ArgsUsage: "[filename|-]",
	Flags: append([]cli.Flag{
		cli.BoolFlag{
			Name:  "fancy, f",
			Usage: `Render accidentals as ♭/♯`,
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: `Print the score for every candidate signature`,
		},
	}, logFlags()...),
	Action: func(ctx *cli.Context) error {
		applyLogFlags(ctx)

		block, err := readBlock(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		letters := blocktext.ExtractNoteLetters(block)
		if len(letters) == 0 {
			return cli.NewExitError("no note names found in input", 1)
		}

		res := keysig.GuessVerbose(letters, ctx.Bool("fancy"))
		if ctx.Bool("verbose") {
			for i, name := range res.Names {
				status("%-5s %d", name, res.Scores[i])
			}
		}
		printResult(fmt.Sprintf("%s\n", res.Guess))
		return nil
	},
}
