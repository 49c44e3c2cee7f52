// objtool is a CLI utility for parsing, checking and flattening Wavefront
// OBJ files.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "objtool <command>",
		Short:         "Wavefront OBJ parsing and flattening utility",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		Example: `  objtool info model.obj
  objtool flatten model.obj -o model.cbor
  objtool flatten --format json model.obj -o -
  objtool check assets/*.obj
  objtool watch model.obj`,
	}

	a.overrides = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newInfoCmd(a),
		newFlattenCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
		newKeywordsCmd(),
		newConfigCmd(a),
	)
	return root
}
