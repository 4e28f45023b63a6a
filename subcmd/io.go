// Package subcmd implements the notefreq CLI commands. Each command is
// a thin shell: it reads a text block, maps flags onto the library's
// configuration surface, and prints the result.
package subcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/notefreq/notefreq/config"
	"github.com/notefreq/notefreq/logging"
	"github.com/notefreq/notefreq/transpose"
)

var statusColor = color.New(color.FgCyan)

// readBlock reads the text block to convert: the first positional
// argument names a file, "-" or no argument reads stdin.
func readBlock(ctx *cli.Context) (string, error) {
	if ctx.NArg() > 0 && ctx.Args()[0] != "-" {
		data, err := os.ReadFile(ctx.Args()[0])
		if err != nil {
			return "", errors.Wrap(err, "reading input file")
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(data), nil
}

// applyLogFlags maps the shared verbosity flags onto the global
// logger.
func applyLogFlags(ctx *cli.Context) {
	if ctx.Bool("debug") {
		logging.SetLevel(logging.DebugLevel)
	} else if ctx.Bool("silent") {
		logging.SetGlobalLogger(&logging.NoOpLogger{})
	} else if ctx.Bool("quiet") {
		logging.SetLevel(logging.WarnLevel)
	}
}

func logFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: `Show debug messages`,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress information messages`,
		},
		cli.BoolFlag{
			Name:  "silent, Q",
			Usage: `Do not output any messages`,
		},
	}
}

func transpositionFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "instrument, i",
			Usage: `Preset instrument name (see the instruments command)`,
		},
		cli.StringFlag{
			Name:  "key, k",
			Usage: `Custom transposition: instrument key letter (e.g. Bb)`,
		},
		cli.BoolFlag{
			Name:  "up, u",
			Usage: `Custom transposition shifts upward instead of downward`,
		},
		cli.IntFlag{
			Name:  "octaves, o",
			Usage: `Custom transposition: extra octave shift count`,
		},
	}
}

// resolveTransposition turns the --instrument or --key/--up/--octaves
// flags into a half-step offset. Concert pitch when neither is given.
func resolveTransposition(ctx *cli.Context) (int, error) {
	if name := ctx.String("instrument"); name != "" {
		inst, ok := transpose.Lookup(name)
		if !ok {
			return 0, errors.Errorf("unknown instrument %q", name)
		}
		logging.Debug("instrument preset resolved", logging.Fields{
			"instrument": inst.Name,
			"hsteps":     inst.HalfSteps,
		})
		return inst.HalfSteps, nil
	}

	if key := ctx.String("key"); key != "" {
		hs, err := transpose.Offset(key, !ctx.Bool("up"), ctx.Int("octaves"))
		if err != nil {
			return 0, err
		}
		logging.Debug("custom transposition resolved", logging.Fields{
			"key":    key,
			"hsteps": hs,
		})
		return hs, nil
	}

	return 0, nil
}

// parseChoice reads an Auto/Yes/No flag value.
func parseChoice(s string) (config.Choice, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return config.ChoiceAuto, nil
	case "yes", "y":
		return config.ChoiceYes, nil
	case "no", "n":
		return config.ChoiceNo, nil
	}
	return "", errors.Errorf("invalid preference %q (want auto, yes, or no)", s)
}

// status prints a user-facing progress note to stderr so piped output
// stays clean.
func status(format string, args ...any) {
	statusColor.Fprintf(os.Stderr, format+"\n", args...)
}

func printResult(text string) {
	fmt.Print(text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}
}
