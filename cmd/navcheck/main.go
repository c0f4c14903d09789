package main

import (
	"os"

	"modern-podcast/cmd/navcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
