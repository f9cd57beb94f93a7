package main

import (
	"os"

	"github.com/Chinmay4285/Stock-Comparer/cmd/analyzer/commands"
)

// main is the entry point for the stock analyzer CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
