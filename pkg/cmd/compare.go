package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-surreal/pkg/game"
	"github.com/spf13/cobra"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [flags] position position",
	Short: "Compare two positions.",
	Long: `Compare two positions, reporting whether the first is less than,
	greater than, equivalent to, or incomparable (fuzzy) with the second.
	Positions are given in brace notation, or as .bin/.json files.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		x := mustReadPosition(args[0])
		y := mustReadPosition(args[1])
		comparator := game.NewComparator(getUint(cmd, "budget"))
		//
		xy, err := comparator.Le(x, y)
		if err == nil {
			var yx bool
			//
			if yx, err = comparator.Le(y, x); err == nil {
				fmt.Println(verdict(xy, yx))
				return
			}
		}
		// Budget exhausted
		fmt.Println(err)
		os.Exit(2)
	},
}

// Determine the four-way verdict from both directions of the comparison.
func verdict(xy bool, yx bool) string {
	switch {
	case xy && yx:
		return "="
	case xy:
		return "<"
	case yx:
		return ">"
	default:
		return "||"
	}
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
