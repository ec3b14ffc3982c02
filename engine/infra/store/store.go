package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Timestamp field names stamped onto every persisted record.
const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Record is a schemaless document plus store-managed metadata. Data holds
// the entity fields; CreatedAt/UpdatedAt are stamped by the store on every
// write and mirrored into Data as RFC 3339 strings.
type Record struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter is a simple equality predicate on a single field.
type Filter struct {
	Field  string
	Equals any
}

// Eq builds an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Equals: value}
}

// Store is the document-store port: named collections of schemaless
// records with store-assigned ids and server-stamped timestamps.
// Implementations must be safe for concurrent use.
type Store interface {
	// Insert persists a new record and returns it with its assigned id.
	Insert(ctx context.Context, collection string, data map[string]any) (*Record, error)

	// Get retrieves a record by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, collection, id string) (*Record, error)

	// Update merges data into an existing record and restamps updatedAt.
	// Returns ErrNotFound when the record is absent.
	Update(ctx context.Context, collection, id string, data map[string]any) (*Record, error)

	// Delete removes a record. Deleting a missing id is idempotent.
	Delete(ctx context.Context, collection, id string) error

	// Find returns records matching every filter (conjunction). Filters are
	// exact-equality only; result order is store-defined.
	Find(ctx context.Context, collection string, filters ...Filter) ([]*Record, error)

	// Close releases underlying resources.
	Close() error
}
