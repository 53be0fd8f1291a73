package main

import (
	"os"

	"github.com/fweber/lexiscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
