// Package main provides the pantry CLI, a personal pantry-inventory
// tracker backed by a relational pantry_items table.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
