// Put command for the satchel CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/attr"
)

var flagPutID string

var putCmd = &cobra.Command{
	Use:   "put [file]",
	Short: "Store a JSON object as an item",
	Long: `Put reads a JSON object from the given file (or stdin), encodes it to
attribute-value form, and stores it. Without --id a new item ID is
generated; with --id an existing item is replaced.`,
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
		obj, ok := g.(map[string]any)
		if !ok {
			return fmt.Errorf("put: input must be a JSON object, got %T", g)
		}

		item := attr.Encode(obj).MapValue()

		backend, tbl, err := itemsTable()
		if err != nil {
			return err
		}
		defer backend.Detach()

		id, err := tbl.Put(flagPutID, item)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	putCmd.Flags().StringVar(&flagPutID, "id", "", "item ID (default: generate a new one)")
}
