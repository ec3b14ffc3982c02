package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/stepwise-hq/stepwise/engine/core"
)

// MemoryStore is an in-memory implementation of Store. It is safe for
// concurrent use and intended for dev/tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]*Record
	inserted    map[string]int
	counter     int
	closed      bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]*Record),
		inserted:    make(map[string]int),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, data map[string]any) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	cp, err := deepCopy(data)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rec := &Record{
		ID:        fmt.Sprintf("%s:%s", collection, core.NewID()),
		Data:      cp,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stampTimestamps(rec.Data, now, now)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("store is closed")
	}
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]*Record)
	}
	s.counter++
	s.inserted[rec.ID] = s.counter
	s.collections[collection][rec.ID] = rec
	return copyRecord(rec)
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("store is closed")
	}
	rec, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRecord(rec)
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, data map[string]any) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	cp, err := deepCopy(data)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("store is closed")
	}
	rec, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range cp {
		rec.Data[k] = v
	}
	rec.UpdatedAt = time.Now().UTC()
	stampTimestamps(rec.Data, rec.CreatedAt, rec.UpdatedAt)
	return copyRecord(rec)
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context canceled: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("store is closed")
	}
	delete(s.collections[collection], id)
	delete(s.inserted, id)
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filters ...Filter) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, fmt.Errorf("store is closed")
	}
	var out []*Record
	for _, rec := range s.collections[collection] {
		if matches(rec, filters) {
			cp, err := copyRecord(rec)
			if err != nil {
				return nil, err
			}
			out = append(out, cp)
		}
	}
	// Map iteration order is random; return records in insertion order so
	// "store-defined order" is at least stable within a process.
	sortByInsertion(out, s.inserted)
	return out, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func matches(rec *Record, filters []Filter) bool {
	for _, f := range filters {
		got, ok := rec.Data[f.Field]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(normalizeValue(got), normalizeValue(f.Equals)) {
			return false
		}
	}
	return true
}

// normalizeValue routes a value through a JSON round trip so filter values
// compare equal to stored values regardless of original Go type.
func normalizeValue(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

func deepCopy(data map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("deep copy failed: %w", err)
	}
	out := make(map[string]any, len(data))
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("deep copy failed: %w", err)
	}
	return out, nil
}

func copyRecord(rec *Record) (*Record, error) {
	cp, err := deepCopy(rec.Data)
	if err != nil {
		return nil, err
	}
	return &Record{ID: rec.ID, Data: cp, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}, nil
}

func stampTimestamps(data map[string]any, createdAt, updatedAt time.Time) {
	data[FieldCreatedAt] = createdAt.Format(time.RFC3339Nano)
	data[FieldUpdatedAt] = updatedAt.Format(time.RFC3339Nano)
}

func sortByInsertion(records []*Record, order map[string]int) {
	sort.Slice(records, func(i, j int) bool {
		return order[records[i].ID] < order[records[j].ID]
	})
}
