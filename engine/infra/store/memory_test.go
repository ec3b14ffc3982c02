package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("Should insert and get a record with timestamps", func(t *testing.T) {
		s := NewMemoryStore()
		rec, err := s.Insert(ctx, "blocks", map[string]any{"checkpoint": "dig hole"})
		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())
		assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)

		got, err := s.Get(ctx, "blocks", rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "dig hole", got.Data["checkpoint"])
	})

	t.Run("Should return ErrNotFound for a missing id", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.Get(ctx, "blocks", "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should merge fields on update", func(t *testing.T) {
		s := NewMemoryStore()
		rec, err := s.Insert(ctx, "blocks", map[string]any{"checkpoint": "dig", "color": "red"})
		require.NoError(t, err)

		updated, err := s.Update(ctx, "blocks", rec.ID, map[string]any{"color": "blue"})
		require.NoError(t, err)
		assert.Equal(t, "dig", updated.Data["checkpoint"])
		assert.Equal(t, "blue", updated.Data["color"])
	})

	t.Run("Should return ErrNotFound when updating a missing record", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.Update(ctx, "blocks", "ghost", map[string]any{"color": "blue"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should treat delete of a missing record as a no-op", func(t *testing.T) {
		s := NewMemoryStore()
		assert.NoError(t, s.Delete(ctx, "blocks", "ghost"))
	})

	t.Run("Should filter by equality and keep insertion order", func(t *testing.T) {
		s := NewMemoryStore()
		var ids []string
		for _, project := range []string{"p1", "p2", "p1"} {
			rec, err := s.Insert(ctx, "blocks", map[string]any{"projectId": project})
			require.NoError(t, err)
			ids = append(ids, rec.ID)
		}
		recs, err := s.Find(ctx, "blocks", Eq("projectId", "p1"))
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, ids[0], recs[0].ID)
		assert.Equal(t, ids[2], recs[1].ID)
	})

	t.Run("Should deep copy data so callers cannot mutate stored state", func(t *testing.T) {
		s := NewMemoryStore()
		rec, err := s.Insert(ctx, "blocks", map[string]any{"refs": []string{"a"}})
		require.NoError(t, err)

		got, err := s.Get(ctx, "blocks", rec.ID)
		require.NoError(t, err)
		got.Data["refs"] = "clobbered"

		again, err := s.Get(ctx, "blocks", rec.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "clobbered", again.Data["refs"])
	})
}
