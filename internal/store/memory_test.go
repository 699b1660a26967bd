package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", []byte("v1"), 0))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// hapus key yang tidak ada bukan error
	assert.NoError(t, s.Delete(ctx, "k"))
}

func TestMemoryStore_TTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "session", []byte("1"), time.Minute))

	now = now.Add(59 * time.Second)
	_, err := s.Get(ctx, "session")
	assert.NoError(t, err)

	now = now.Add(time.Second)
	_, err = s.Get(ctx, "session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ValueIsCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value, 0))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	got[1] = 'y'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var out doc
	assert.ErrorIs(t, GetJSON(ctx, s, "doc", &out), ErrNotFound)

	require.NoError(t, SetJSON(ctx, s, "doc", doc{Name: "a", Count: 2}))
	require.NoError(t, GetJSON(ctx, s, "doc", &out))
	assert.Equal(t, doc{Name: "a", Count: 2}, out)
}

func TestRevokedKey(t *testing.T) {
	assert.Equal(t, "session:revoked:abc", RevokedKey("abc"))
}
