package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/spf13/cobra"
)

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the OBJ keywords the parser recognizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEYWORD\tHANDLING")
			for _, k := range wavefront.Keywords() {
				handling := "skipped"
				if kind := wavefront.Resolve([]byte(k)); kind != wavefront.KeywordUnsupported {
					handling = kind.String()
				}
				fmt.Fprintf(tw, "%s\t%s\n", k, handling)
			}
			return tw.Flush()
		},
	}
}
