// Remove command deletes a pantry item.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an item from the pantry",
	Long: `Remove deletes the item with the given ID. A unique ID prefix is
accepted.

Example:
  pantry remove 0198c2f1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, backend, err := openStore(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		id, err := resolveItemID(st, args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "item %q not found\n", args[0])
			} else {
				fmt.Fprintln(os.Stderr, "remove:", err)
			}
			os.Exit(exitUserError)
		}

		if err := st.Remove(cmd.Context(), id); err != nil {
			fmt.Fprintln(os.Stderr, "remove:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Removed %s\n", shortID(id))
		return nil
	},
}
