// Package repo implements the aggregate repositories over the document
// store port. All mapping between schemaless store records and typed
// entities happens here, so nothing above this boundary can silently
// persist extra fields.
package repo

import (
	"github.com/stepwise-hq/stepwise/engine/infra/store"
)

func getString(rec *store.Record, field string) string {
	v, _ := rec.Data[field].(string)
	return v
}

// getStringSlice tolerates both []string (memory store) and []any
// (anything that went through a JSON decode).
func getStringSlice(rec *store.Record, field string) []string {
	switch v := rec.Data[field].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
