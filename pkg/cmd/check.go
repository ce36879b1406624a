package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-surreal/pkg/game"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] position...",
	Short: "Check whether positions are numeric.",
	Long: `Check one or more positions against the numeric predicate: every
	Left option must lie strictly below every Right option, recursively.
	Positions failing the predicate denote no surreal number, and order
	comparisons between them can be fuzzy.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		results := make([]bool, len(args))
		// Positions are independent, so check them concurrently.
		var group errgroup.Group
		//
		for i, arg := range args {
			i, arg := i, arg
			group.Go(func() error {
				x, err := readPosition(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				//
				results[i] = game.Numeric(x)
				log.Debugf("checked %s (birthday %d)", arg, x.Birthday())
				//
				return nil
			})
		}
		//
		if err := group.Wait(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		failed := false
		//
		for i, arg := range args {
			if results[i] {
				fmt.Printf("%s: numeric\n", arg)
			} else {
				fmt.Printf("%s: not numeric\n", arg)
				failed = true
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
