// Get command for the satchel CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/attr"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

var flagGetWire bool

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a stored item as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, tbl, err := itemsTable()
		if err != nil {
			return err
		}
		defer backend.Detach()

		rec, err := tbl.Get(args[0])
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "get: item not found:", args[0])
			os.Exit(exitUserError)
		}
		if err != nil {
			return err
		}

		if flagGetWire {
			return printJSON(attr.Map(rec.Attributes))
		}
		return printJSON(attr.Decode(attr.Map(rec.Attributes)))
	},
}

func init() {
	getCmd.Flags().BoolVar(&flagGetWire, "wire", false, "print the attribute-value wire form instead of plain JSON")
}
