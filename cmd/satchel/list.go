// List command for the satchel CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/attr"
)

var listCmd = &cobra.Command{
	Use:   "list [key=value ...]",
	Short: "List stored items, newest first",
	Long: `List prints stored items as JSON, newest first. Optional key=value
arguments keep only items whose decoded attribute equals the value;
values parse as JSON where possible ("count=5" matches the number 5,
"kind=fruit" matches the string "fruit").`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := parseFilter(args)
		if err != nil {
			return err
		}

		backend, tbl, err := itemsTable()
		if err != nil {
			return err
		}
		defer backend.Detach()

		recs, err := tbl.List(filter)
		if err != nil {
			return err
		}

		out := make([]map[string]any, 0, len(recs))
		for _, rec := range recs {
			out = append(out, map[string]any{
				"item_id":    rec.ItemID,
				"attributes": attr.Decode(attr.Map(rec.Attributes)),
				"created_at": rec.CreatedAt,
				"updated_at": rec.UpdatedAt,
			})
		}
		return printJSON(out)
	},
}
