package main

import (
	"fmt"
	"os"

	"github.com/SirTony/lumi/cli/cmd"
)

func main() {
	if err := cmd.BuildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
