// JSONL read/write helpers with atomic persistence. items.jsonl carries
// one item per line: {"item_id":..., "attributes":{...wire JSON...},
// "created_at":..., "updated_at":...}.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/satchel/pkg/attr"
)

const itemsFile = "items.jsonl"

// itemJSON is the JSONL record shape for one item.
type itemJSON struct {
	ItemID     string     `json:"item_id"`
	Attributes attr.Value `json:"attributes"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

// initJSONL creates an empty items.jsonl if the file does not exist.
func (b *Backend) initJSONL() error {
	path := filepath.Join(b.dataDir, itemsFile)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return os.WriteFile(path, nil, 0o644)
}

// loadItemsJSONL reads items.jsonl and inserts each valid record into the
// SQLite items table. Malformed lines are skipped; the next full rewrite
// drops them.
func (b *Backend) loadItemsJSONL() error {
	records, err := readJSONL(filepath.Join(b.dataDir, itemsFile))
	if err != nil {
		return err
	}
	for _, raw := range records {
		var rec itemJSON
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if rec.ItemID == "" || rec.Attributes.Kind() != attr.KindMap {
			continue
		}
		attrJSON, err := json.Marshal(rec.Attributes)
		if err != nil {
			continue
		}
		if _, err := b.db.Exec(`
			INSERT INTO items (item_id, attributes, created_at, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(item_id) DO UPDATE SET
				attributes = excluded.attributes,
				updated_at = excluded.updated_at`,
			rec.ItemID, string(attrJSON), rec.CreatedAt, rec.UpdatedAt); err != nil {
			return fmt.Errorf("loading item %s: %w", rec.ItemID, err)
		}
	}
	return nil
}

// persistItemsJSONL reads all rows from SQLite and rewrites items.jsonl
// atomically. The caller must hold the backend lock.
func (t *table) persistItemsJSONL() error {
	rows, err := t.backend.db.Query(
		"SELECT item_id, attributes, created_at, updated_at FROM items ORDER BY created_at, item_id")
	if err != nil {
		return fmt.Errorf("reading items for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec itemJSON
		var attrJSON string
		if err := rows.Scan(&rec.ItemID, &attrJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning item for JSONL: %w", err)
		}
		if err := json.Unmarshal([]byte(attrJSON), &rec.Attributes); err != nil {
			return fmt.Errorf("parsing item attributes for JSONL: %w", err)
		}
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling item for JSONL: %w", err)
		}
		records = append(records, line)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return writeJSONL(filepath.Join(t.backend.dataDir, itemsFile), records)
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line
// as a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
