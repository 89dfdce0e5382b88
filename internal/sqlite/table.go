package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/mesh-intelligence/satchel/pkg/attr"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// table implements types.Table for the items table. Attribute maps are
// stored as wire-form JSON (a single M payload) in the attributes column
// and in items.jsonl.
type table struct {
	backend *Backend
}

func newTable(b *Backend) *table {
	return &table{backend: b}
}

// Get retrieves a record by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (t *table) Get(id string) (*types.Record, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return nil, types.ErrStoreDetached
	}

	row := t.backend.db.QueryRow(
		"SELECT item_id, attributes, created_at, updated_at FROM items WHERE item_id = ?", id)
	return scanRecord(row.Scan)
}

// Put creates or updates a record. If id is empty, generates a UUID v7.
// The attribute map must marshal to wire JSON; nil maps are rejected.
func (t *table) Put(id string, item types.Item) (string, error) {
	if item == nil {
		return "", types.ErrInvalidData
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return "", types.ErrStoreDetached
	}

	attrJSON, err := json.Marshal(attr.Map(item))
	if err != nil {
		return "", fmt.Errorf("marshaling attributes: %w", err)
	}

	now := time.Now().UTC()
	if id == "" {
		id = newUUID()
	}

	_, err = t.backend.db.Exec(`
		INSERT INTO items (item_id, attributes, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			attributes = excluded.attributes,
			updated_at = excluded.updated_at`,
		id, string(attrJSON),
		now.Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("upserting item: %w", err)
	}

	if err := t.persistItemsJSONL(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a record by ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if not found.
func (t *table) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	if !t.backend.attached {
		return types.ErrStoreDetached
	}

	res, err := t.backend.db.Exec("DELETE FROM items WHERE item_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return t.persistItemsJSONL()
}

// List returns records newest first. A non-empty filter keeps records
// whose decoded attribute values equal every filter entry; a filter value
// of nil matches attributes that decode to nil.
func (t *table) List(filter map[string]any) ([]*types.Record, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	if !t.backend.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := t.backend.db.Query(
		"SELECT item_id, attributes, created_at, updated_at FROM items ORDER BY created_at DESC, item_id DESC")
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	defer rows.Close()

	results := []*types.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		if matchesFilter(rec.Attributes, filter) {
			results = append(results, rec)
		}
	}
	return results, rows.Err()
}

// scanRecord reads one items row through the given scan function.
func scanRecord(scan func(dest ...any) error) (*types.Record, error) {
	var rec types.Record
	var attrJSON, createdAt, updatedAt string
	err := scan(&rec.ItemID, &attrJSON, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	var av attr.Value
	if err := json.Unmarshal([]byte(attrJSON), &av); err != nil {
		return nil, fmt.Errorf("parsing item attributes: %w", err)
	}
	rec.Attributes = av.MapValue()
	if rec.Attributes == nil {
		return nil, fmt.Errorf("parsing item attributes: %w", types.ErrInvalidData)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing item created_at: %w", err)
	}
	rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing item updated_at: %w", err)
	}
	return &rec, nil
}

// matchesFilter compares the decoded form of the item's attributes against
// the filter, entry by entry. Decoding uses the lenient numeric fallback
// so filters written in the JSON model compare naturally.
func matchesFilter(item types.Item, filter map[string]any) bool {
	for k, want := range filter {
		av, ok := item[k]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(attr.Decode(av), want) {
			return false
		}
	}
	return true
}
