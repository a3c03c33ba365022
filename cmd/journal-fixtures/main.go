package main

import (
	"fmt"
	"journal-fixtures/cmd/journal-fixtures/commands"
	"os"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
