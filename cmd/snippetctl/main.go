package main

import (
	"os"

	"snippetkit/cmd/snippetctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
