package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// SurrealStore implements Store on top of the SurrealDB websocket RPC
// client. SurrealDB assigns record ids of the form "<table>:<random>";
// those ids are used verbatim as the service's opaque identifiers.
type SurrealStore struct {
	db *surrealdb.DB
}

// SurrealConfig carries the connection parameters for the database.
type SurrealConfig struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// NewSurrealStore connects, signs in and selects the namespace/database.
func NewSurrealStore(cfg SurrealConfig) (*SurrealStore, error) {
	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb at %s: %w", cfg.URL, err)
	}
	if _, err := db.Signin(map[string]any{"user": cfg.Username, "pass": cfg.Password}); err != nil {
		db.Close()
		return nil, fmt.Errorf("surrealdb signin failed: %w", err)
	}
	if _, err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("surrealdb use %s/%s failed: %w", cfg.Namespace, cfg.Database, err)
	}
	return &SurrealStore{db: db}, nil
}

func (s *SurrealStore) Insert(ctx context.Context, collection string, data map[string]any) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	payload, err := deepCopy(data)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	stampTimestamps(payload, now, now)
	raw, err := s.db.Create(collection, payload)
	if err != nil {
		return nil, fmt.Errorf("surrealdb create on %s failed: %w", collection, err)
	}
	records, err := decodeRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("surrealdb create on %s returned no record", collection)
	}
	return records[0], nil
}

func (s *SurrealStore) Get(ctx context.Context, collection, id string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	raw, err := s.db.Select(qualifyID(collection, id))
	if err != nil {
		return nil, fmt.Errorf("surrealdb select %s failed: %w", id, err)
	}
	records, err := decodeRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

func (s *SurrealStore) Update(ctx context.Context, collection, id string, data map[string]any) (*Record, error) {
	if _, err := s.Get(ctx, collection, id); err != nil {
		return nil, err
	}
	payload, err := deepCopy(data)
	if err != nil {
		return nil, err
	}
	payload[FieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339Nano)
	raw, err := s.db.Change(qualifyID(collection, id), payload)
	if err != nil {
		return nil, fmt.Errorf("surrealdb change %s failed: %w", id, err)
	}
	records, err := decodeRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

func (s *SurrealStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context canceled: %w", err)
	}
	if _, err := s.db.Delete(qualifyID(collection, id)); err != nil {
		return fmt.Errorf("surrealdb delete %s failed: %w", id, err)
	}
	return nil
}

func (s *SurrealStore) Find(ctx context.Context, collection string, filters ...Filter) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("SELECT * FROM type::table($tb)")
	vars := map[string]any{"tb": collection}
	for i, f := range filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		// Field names are compile-time constants from the repositories,
		// never caller input; only values are bound.
		param := fmt.Sprintf("v%d", i)
		fmt.Fprintf(&sb, "%s = $%s", f.Field, param)
		vars[param] = f.Equals
	}
	raw, err := s.db.Query(sb.String(), vars)
	if err != nil {
		return nil, fmt.Errorf("surrealdb query on %s failed: %w", collection, err)
	}
	return decodeQueryRecords(raw)
}

func (s *SurrealStore) Close() error {
	s.db.Close()
	return nil
}

// qualifyID accepts both bare and table-qualified ids.
func qualifyID(collection, id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return collection + ":" + id
}

// decodeQueryRecords unwraps the per-statement envelopes returned by the
// query RPC ([{"result": [...], "status": "OK", "time": "..."}]).
func decodeQueryRecords(raw any) ([]*Record, error) {
	envelopes, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected surrealdb query response shape %T", raw)
	}
	var out []*Record
	for _, e := range envelopes {
		envelope, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected surrealdb query envelope shape %T", e)
		}
		if status, _ := envelope["status"].(string); status != "" && status != "OK" {
			return nil, fmt.Errorf("surrealdb query statement failed with status %s", status)
		}
		records, err := decodeRecords(envelope["result"])
		if err != nil {
			return nil, err
		}
		out = append(out, records...)
	}
	return out, nil
}

// decodeRecords maps raw RPC payloads (a record object or a list of them)
// into Records. This is the explicit mapping boundary between the store's
// schemaless documents and the service's typed entities.
func decodeRecords(raw any) ([]*Record, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		rec, err := recordFromObject(v)
		if err != nil {
			return nil, err
		}
		return []*Record{rec}, nil
	case []any:
		out := make([]*Record, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("unexpected surrealdb record shape %T", item)
			}
			rec, err := recordFromObject(obj)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unexpected surrealdb response shape %T", raw)
	}
}

func recordFromObject(obj map[string]any) (*Record, error) {
	id, _ := obj["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("surrealdb record is missing an id")
	}
	data := make(map[string]any, len(obj))
	for k, v := range obj {
		if k == "id" {
			continue
		}
		data[k] = v
	}
	rec := &Record{ID: id, Data: data}
	rec.CreatedAt = parseTimestamp(data[FieldCreatedAt])
	rec.UpdatedAt = parseTimestamp(data[FieldUpdatedAt])
	return rec, nil
}

func parseTimestamp(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
