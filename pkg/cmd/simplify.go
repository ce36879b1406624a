package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-surreal/pkg/game"
	"github.com/spf13/cobra"
)

// simplifyCmd represents the simplify command
var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] position",
	Short: "Remove dominated options from a position.",
	Long: `Remove dominated options throughout a position, producing an
	equivalent (usually much smaller) position.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		x := mustReadPosition(args[0])
		y := game.Simplify(x)
		//
		if getFlag(cmd, "json") {
			bytes, err := game.ToJson(y)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			fmt.Println(string(bytes))
		} else {
			fmt.Println(y.String())
		}
		//
		fmt.Printf("%d nodes (was %d)\n", y.NodeCount(), x.NodeCount())
	},
}

func init() {
	simplifyCmd.Flags().Bool("json", false, "print result as JSON")
	rootCmd.AddCommand(simplifyCmd)
}
