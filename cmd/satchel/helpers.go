// Shared helpers for satchel CLI commands.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mesh-intelligence/satchel/internal/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	err = backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	})
	if err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// itemsTable attaches the backend and returns the items table. The caller
// must defer backend.Detach().
func itemsTable() (*sqlite.Backend, types.Table, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}
	tbl, err := backend.Table(types.ItemsTable)
	if err != nil {
		backend.Detach()
		return nil, nil, err
	}
	return backend, tbl, nil
}

// readInput returns the contents of the named file, or stdin when the
// name is empty or "-".
func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// parseGeneric parses JSON text into the generic value model with numbers
// kept as json.Number, so large integers survive encoding.
func parseGeneric(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return v, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// parseFilter turns key=value arguments into a List filter. Values are
// parsed as JSON when possible (numbers become int64 or float64 to match
// decoded attribute values) and fall back to plain strings.
func parseFilter(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	filter := make(map[string]any, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("filter %q is not key=value", arg)
		}
		filter[k] = parseFilterValue(v)
	}
	return filter, nil
}

func parseFilterValue(text string) any {
	g, err := parseGeneric([]byte(text))
	if err != nil {
		return text
	}
	if n, ok := g.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	}
	return g
}
