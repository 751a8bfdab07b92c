package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/Inventario-web/internal/session"
	"github.com/jhoicas/Inventario-web/pkg/jwt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newManager(store session.Store, strict bool) *session.Manager {
	return session.NewManager(store, session.Options{TTL: time.Hour, Strict: strict}, zerolog.Nop())
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.Generate("test-secret", "ana", role, time.Hour)
	require.NoError(t, err)
	return tok
}

type failingStore struct{ session.Store }

func (failingStore) Load(context.Context, string) (string, error) {
	return "", errors.New("redis caído")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Session / Manager
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_LoginLifecycle(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	m := newManager(store, false)

	s, err := m.Open(ctx, "")
	require.NoError(t, err)
	assert.False(t, s.IsLoggedIn())
	assert.Equal(t, "", s.UserRole())

	require.NoError(t, s.SetToken(ctx, tokenForRole(t, "ADMIN")))
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "ADMIN", s.UserRole())
	assert.True(t, s.Changed())
	require.NotEmpty(t, s.ID())

	reopened, err := m.Open(ctx, s.ID())
	require.NoError(t, err)
	assert.True(t, reopened.IsLoggedIn())
	assert.Equal(t, "ADMIN", reopened.UserRole())

	require.NoError(t, reopened.Logout(ctx))
	assert.False(t, reopened.IsLoggedIn())
	assert.Equal(t, "", reopened.UserRole())
	require.NoError(t, reopened.Logout(ctx), "logout repetido no falla")

	again, err := m.Open(ctx, s.ID())
	require.NoError(t, err)
	assert.False(t, again.IsLoggedIn())
}

func TestSession_SetTokenRotatesID(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	m := newManager(store, false)

	s := m.Anonymous()
	require.NoError(t, s.SetToken(ctx, tokenForRole(t, "USER")))
	first := s.ID()
	require.NoError(t, s.SetToken(ctx, tokenForRole(t, "ADMIN")))

	assert.NotEqual(t, first, s.ID())
	assert.Equal(t, 1, store.Len(), "el id anterior se borra")
}

func TestSession_SetTokenEmpty(t *testing.T) {
	s := newManager(session.NewMemoryStore(), false).Anonymous()
	assert.Error(t, s.SetToken(context.Background(), ""))
}

func TestSession_UndecodableTokenKeepsLogin(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "sid", "garbage", time.Hour))

	s, err := newManager(store, false).Open(ctx, "sid")
	require.NoError(t, err)

	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "", s.UserRole())
}

func TestSession_StrictModeDropsUndecodableToken(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "sid", "garbage", time.Hour))

	s, err := newManager(store, true).Open(ctx, "sid")
	assert.ErrorIs(t, err, session.ErrUndecodableToken)
	assert.False(t, s.IsLoggedIn())
	assert.Zero(t, store.Len())
}

func TestManager_OpenUnknownID(t *testing.T) {
	s, err := newManager(session.NewMemoryStore(), false).Open(context.Background(), "desconocido")
	require.NoError(t, err)
	assert.False(t, s.IsLoggedIn())
	assert.True(t, s.Changed(), "la cookie huérfana se limpia")
}

func TestManager_OpenStoreError(t *testing.T) {
	s, err := newManager(failingStore{}, false).Open(context.Background(), "sid")
	assert.Error(t, err)
	require.NotNil(t, s)
	assert.False(t, s.IsLoggedIn())
}

func TestTokenFromContext(t *testing.T) {
	ctx := context.Background()
	_, ok := session.TokenFromContext(ctx)
	assert.False(t, ok)

	s := newManager(session.NewMemoryStore(), false).Anonymous()
	require.NoError(t, s.SetToken(ctx, "abc"))
	tok, ok := session.TokenFromContext(session.WithContext(ctx, s))
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)
}
