package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-surreal/pkg/game"
	"github.com/spf13/cobra"
)

// valueCmd represents the value command
var valueCmd = &cobra.Command{
	Use:   "value [flags] position",
	Short: "Compute the exact value of a numeric position.",
	Long: `Compute the exact dyadic rational value of a numeric position via
	the simplicity rule.  Non-numeric positions denote no number and are
	rejected.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		x := mustReadPosition(args[0])
		//
		v, err := game.Value(x)
		if errors.Is(err, game.ErrNotNumeric) {
			fmt.Printf("%s: not numeric\n", args[0])
			os.Exit(1)
		} else if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(v.RatString())
	},
}

func init() {
	rootCmd.AddCommand(valueCmd)
}
