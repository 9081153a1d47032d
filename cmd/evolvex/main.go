package main

import (
	"os"

	"evolvex/cmd/evolvex/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
