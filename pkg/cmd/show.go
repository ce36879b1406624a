package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-surreal/pkg/game"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [flags] position",
	Short: "Show the tree structure of a position.",
	Long: `Show a position as an indented tree of Left (L) and Right (R)
	options, truncated to the terminal width.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		x := mustReadPosition(args[0])
		// Determine available width
		width := 80
		//
		if term.IsTerminal(0) {
			if w, _, err := term.GetSize(0); err == nil {
				width = w
			}
		}
		//
		showTree(x, "", width)
	},
}

// Print one node per line, indenting children and clipping lines at the
// available width.
func showTree(x *game.PreGame, indent string, width int) {
	line := indent + x.String()
	if width > 3 && len(line) > width {
		line = line[:width-3] + "..."
	}
	//
	fmt.Println(line)
	//
	for i := x.Lefts(); i.HasNext(); {
		showTree(i.Next(), indent+"L ", width)
	}
	//
	for j := x.Rights(); j.HasNext(); {
		showTree(j.Next(), indent+"R ", width)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
