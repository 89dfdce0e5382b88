// Decode command: attribute-value wire JSON in, JSON out.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/attr"
)

var flagStrict bool

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Convert attribute-value wire form to a JSON value",
	Long: `Decode reads an attribute-value in wire form from the given file (or
stdin) and prints the plain JSON value. Number text that does not parse
is kept verbatim as a string; --strict discards it as null instead.
Set variants flatten to arrays.`,
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

		var v attr.Value
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("parse wire value: %w", err)
		}

		policy := attr.PolicyLenient
		if flagStrict {
			policy = attr.PolicyStrict
		}
		return printJSON(attr.DecodeWithPolicy(v, policy))
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&flagStrict, "strict", false, "emit null for unparseable number text instead of keeping it as a string")
}
