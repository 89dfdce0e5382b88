// Encode command: JSON in, attribute-value wire JSON out.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/attr"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert a JSON value to attribute-value wire form",
	Long: `Encode reads a JSON value from the given file (or stdin) and prints
its attribute-value wire form. Every JSON value encodes; there is no
failure path beyond malformed input JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		data, err := readInput(name)
		if err != nil {
			return err
		}
		g, err := parseGeneric(data)
		if err != nil {
			return err
		}
		return printJSON(attr.Encode(g))
	},
}
