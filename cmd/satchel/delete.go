// Delete command for the satchel CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, tbl, err := itemsTable()
		if err != nil {
			return err
		}
		defer backend.Detach()

		err = tbl.Delete(args[0])
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "delete: item not found:", args[0])
			os.Exit(exitUserError)
		}
		if err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}
