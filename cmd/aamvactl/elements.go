package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scantools/aamvakit/aamva"
)

func init() {
	rootCmd.AddCommand(newElementsCmd())
}

func newElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List known AAMVA data element IDs",
		Long: `The elements command prints the data element IDs this tool knows
display names for, e.g. DAQ (Customer ID Number) or DCS (Family Name).
Payloads may carry IDs outside this table; those are parsed fine and shown
with their raw ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElements()
		},
	}
}

func runElements() error {
	ids := aamva.ElementIDs()
	sort.Strings(ids)

	if jsonOut {
		table := make(map[string]string, len(ids))
		for _, id := range ids {
			name, _ := aamva.ElementName(id)
			table[id] = name
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, id := range ids {
		name, _ := aamva.ElementName(id)
		fmt.Fprintf(tw, "%s\t%s\n", id, name)
	}
	return tw.Flush()
}
