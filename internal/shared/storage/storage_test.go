package storage_test

import (
	"context"
	"testing"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	t.Run("success_missing_key_is_not_an_error", func(t *testing.T) {
		raw, ok, err := s.Load(ctx, "users")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, raw)
	})

	t.Run("success_save_and_load", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "users", []byte(`[{"id":"u1"}]`)))

		raw, ok, err := s.Load(ctx, "users")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":"u1"}]`, string(raw))
	})

	t.Run("success_last_writer_wins", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "users", []byte(`[]`)))

		raw, ok, _ := s.Load(ctx, "users")
		assert.True(t, ok)
		assert.JSONEq(t, `[]`, string(raw))
	})

	t.Run("success_delete_then_missing", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "users"))

		_, ok, err := s.Load(ctx, "users")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	s, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("success_roundtrip_with_namespaced_key", func(t *testing.T) {
		key := "addresses:user-123"
		require.NoError(t, s.Save(ctx, key, []byte(`[{"city":"Chennai"}]`)))

		raw, ok, err := s.Load(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, string(raw), "Chennai")
	})

	t.Run("success_delete_absent_key_is_noop", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, "never-written"))
	})

	t.Run("success_keys_do_not_collide", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "carts:a", []byte(`1`)))
		require.NoError(t, s.Save(ctx, "carts:b", []byte(`2`)))

		raw, _, _ := s.Load(ctx, "carts:a")
		assert.Equal(t, "1", string(raw))
	})
}

func TestLoadSaveJSON(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	type rec struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	t.Run("success_typed_roundtrip", func(t *testing.T) {
		require.NoError(t, storage.SaveJSON(ctx, s, "rec", rec{ID: "1", Name: "one"}))

		var got rec
		ok, err := storage.LoadJSON(ctx, s, "rec", &got)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, rec{ID: "1", Name: "one"}, got)
	})

	t.Run("success_missing_leaves_out_untouched", func(t *testing.T) {
		got := rec{ID: "keep"}
		ok, err := storage.LoadJSON(ctx, s, "absent", &got)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "keep", got.ID)
	})
}
