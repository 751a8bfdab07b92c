package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "a", "tok", time.Minute))

	got, err := s.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "tok", got)

	now = now.Add(time.Minute)
	got, err = s.Load(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, got, "expirada")
	assert.Zero(t, s.Len(), "se purga al leer")
}

func TestMemoryStore_SaveSweepsAbandonedSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "abandonada", "tok", time.Minute))
	require.NoError(t, s.Save(ctx, "sin-ttl", "tok", 0))

	// antes del intervalo no se barre
	now = now.Add(30 * time.Second)
	require.NoError(t, s.Save(ctx, "b", "tok", time.Hour))
	assert.Equal(t, 3, s.Len())

	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Save(ctx, "c", "tok", time.Hour))
	assert.Equal(t, 3, s.Len(), "la abandonada se purga sin volver a leerla")

	got, err := s.Load(ctx, "sin-ttl")
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestMemoryStore_DeleteMissing(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Delete(context.Background(), "nada"))
}
