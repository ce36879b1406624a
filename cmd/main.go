package main

import (
	"github.com/consensys/go-surreal/pkg/cmd"
)

func main() {
	cmd.Execute()
}
