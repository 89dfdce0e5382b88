// Package main provides the satchel CLI: convert between JSON and the
// attribute-value wire form, and put/get items in a local store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
