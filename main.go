package main

import (
	"os"

	"github.com/nosziii/words/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
