package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/consensys/go-surreal/pkg/game"
	"github.com/consensys/go-surreal/pkg/notation"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a position given either as a brace-notation literal, or as the name
// of a file holding an encoded position (based on its extension).
func readPosition(arg string) (*game.PreGame, error) {
	ext := path.Ext(arg)
	//
	switch ext {
	case ".bin", ".json":
		bytes, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		//
		if ext == ".bin" {
			return game.FromBytes(bytes)
		}
		//
		return game.FromJson(bytes)
	default:
		return notation.Parse(arg)
	}
}

// Read a position, exiting with an error message on failure.
func mustReadPosition(arg string) *game.PreGame {
	x, err := readPosition(arg)
	// Handle error
	if err != nil {
		fmt.Printf("%s: %s\n", arg, err)
		os.Exit(2)
	}
	//
	return x
}
