// Package main provides the entry point for the budgeteer CLI.
package main

import (
	"fmt"
	"os"

	"budgeteer/cmd/categorize"
	"budgeteer/cmd/root"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
