package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDesignatorsCmd())
}

func newDesignatorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "designators <file|->",
		Short: "List the subfile directory of a payload",
		Long: `The designators command parses a payload and prints only its subfile
directory: one (type, offset, length) entry per declared subfile, in order of
appearance.

Example:
  aamvactl designators capture.txt
  aamvactl designators capture.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignators(args[0])
		},
	}
}

func runDesignators(path string) error {
	result, err := parsePayloadFile(path)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Designators)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tOFFSET\tLENGTH\tPARSED")
	for _, d := range result.Designators {
		_, parsed := result.Subfiles[d.Type]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%v\n", d.Type, d.Offset, d.Length, parsed)
	}
	return tw.Flush()
}
