// List command displays all pantry items in display order.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pantry items",
	Long: `List fetches all items and displays them in display order:
out-of-stock items are grouped after everything else, both groups
newest first.

Example:
  pantry list
  pantry list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	st, backend, err := openStore(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		os.Exit(exitSysError)
	}
	defer backend.Detach()

	items := st.DisplayItems()

	if flagJSON {
		output, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal items: %w", err)
		}
		fmt.Println(string(output))
	} else {
		printItemTable(items)
	}

	return nil
}

// printItemTable prints items in a human-readable table format.
func printItemTable(items []types.Item) {
	if len(items) == 0 {
		fmt.Println("No items tracked.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tADDED")
	fmt.Fprintln(w, "--\t----\t------\t-----")
	for _, it := range items {
		name := it.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			shortID(it.ItemID),
			name,
			it.Status,
			it.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	output := sb.String()
	lines := strings.Split(output, "\n")
	for _, line := range lines {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d item(s)\n", len(items))
}
