// Cycle command advances an item one step through the stock-level
// lifecycle: full -> running_low -> less_than_two -> out_of_stock ->
// full.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle <id>",
	Short: "Advance an item to its next stock level",
	Long: `Cycle advances the item with the given ID one step through the
stock-level lifecycle. A unique ID prefix is accepted.

Example:
  pantry cycle 0198c2f1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, backend, err := openStore(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "cycle:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		id, err := resolveItemID(st, args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "item %q not found\n", args[0])
			} else {
				fmt.Fprintln(os.Stderr, "cycle:", err)
			}
			os.Exit(exitUserError)
		}

		next, ok := st.Cycle(cmd.Context(), id)
		if !ok {
			fmt.Fprintf(os.Stderr, "item %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		fmt.Printf("%s -> %s\n", shortID(id), next)
		return nil
	},
}
