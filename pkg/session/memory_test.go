package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	id, err := s.Create(ctx, Data{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, id, 32)

	data, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 7, data.UserID)

	require.NoError(t, s.Delete(ctx, id))

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing ID is not an error
	assert.NoError(t, s.Delete(ctx, "no-such-session"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(50 * time.Millisecond)
	ctx := context.Background()

	id, err := s.Create(ctx, Data{UserID: 7})
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreIDsAreUnique(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := s.Create(ctx, Data{UserID: 1})
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate session ID")
		seen[id] = true
	}
}
