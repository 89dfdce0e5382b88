// Package types defines the Store and Table interfaces, the Item shape,
// configuration, and standard errors for the satchel item store.
package types

import (
	"errors"
	"time"

	"github.com/mesh-intelligence/satchel/pkg/attr"
)

// Item is one stored item: a top-level map from attribute name to
// attribute value, the shape produced by attr.MarshalItem.
type Item = map[string]attr.Value

// Record pairs an item with its storage identity and timestamps.
type Record struct {
	// ItemID is a UUID v7, generated on first Put when the caller does
	// not supply one.
	ItemID string

	// Attributes is the item body in attribute-value form.
	Attributes Item

	// CreatedAt is the timestamp of creation.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every Put.
	UpdatedAt time.Time
}

// Store is backend-agnostic access to item tables. Callers attach to a
// backend, access tables by name, and detach when done.
type Store interface {
	// Table returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a known table.
	Table(name string) (Table, error)

	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, table operations return ErrStoreDetached.
	Detach() error
}

// Table provides item operations for a single table.
type Table interface {
	// Get retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Get(id string) (*Record, error)

	// Put creates or updates a record. When id is empty a new UUID v7
	// is generated. Returns the actual ID used.
	Put(id string, item Item) (string, error)

	// Delete removes the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Delete(id string) error

	// List returns all records, newest first. A non-nil filter keeps
	// only records whose decoded attributes match every filter entry.
	List(filter map[string]any) ([]*Record, error)
}

// ItemsTable is the single standard table name.
const ItemsTable = "items"

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrTableNotFound   = errors.New("table not found")
)

// Table operation errors.
var (
	ErrNotFound    = errors.New("item not found")
	ErrInvalidID   = errors.New("invalid item ID")
	ErrInvalidData = errors.New("invalid item data")
)
