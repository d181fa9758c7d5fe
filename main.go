package main

import (
	"os"

	"github.com/psychtest/psyquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
