package main

import (
	"os"

	"github.com/glbook-dev/glbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
