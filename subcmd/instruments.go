package subcmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/notefreq/notefreq/transpose"
)

// ListInstruments prints the built-in transposing instrument presets.
var ListInstruments = cli.Command{
	Name:    "instruments",
	Aliases: []string{"inst"},
	Usage:   "Lists the built-in transposing instruments and their offsets",
	Action: func(ctx *cli.Context) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKEY\tDIRECTION\tEXTRA OCTAVES\tHALF STEPS")
		for _, inst := range transpose.Instruments() {
			dir := "up"
			if inst.Spec.Down {
				dir = "down"
			}
			if inst.HalfSteps == 0 {
				dir = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%+d\n",
				inst.Name, inst.Spec.Key, dir, inst.Spec.ExtraOctaves, inst.HalfSteps)
		}
		return w.Flush()
	},
}
