// Add command creates a new pantry item.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var addName string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new pantry item",
	Long: `Add creates a new pantry item with the given name.

Items start at stock level "full".

Example:
  pantry add --name "Oat milk"
  pantry add --name "Coffee beans" --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "name for the item (required)")
	_ = addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fmt.Fprintln(os.Stderr, "add:", err)
		os.Exit(exitSysError)
	}
	defer backend.Detach()

	st := newStore(backend)
	if err := st.Add(cmd.Context(), addName); err != nil {
		// The store already logged the failure.
		os.Exit(exitSysError)
	}
	if st.Len() == 0 {
		// Blank name: declined without a remote call.
		fmt.Fprintln(os.Stderr, "nothing to add: name is empty")
		os.Exit(exitUserError)
	}

	item := st.Items()[0]
	if flagJSON {
		output, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		fmt.Println(string(output))
	} else {
		fmt.Printf("Added %s (%s)\n", item.Name, shortID(item.ItemID))
	}

	return nil
}
