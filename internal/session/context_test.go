package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/padel_booking_bot/internal/calendar"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestContext(store Store) *Context {
	return NewContext(store, TokenKey(42), calendar.FixedClock(testNow), zap.NewNop())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenKey(t *testing.T) {
	assert.Equal(t, "session:42:authToken", TokenKey(42))
}

func TestInitializeWithoutStoredToken(t *testing.T) {
	ctx := context.Background()
	sc := newTestContext(NewMemoryStore())

	require.NoError(t, sc.Initialize(ctx))
	assert.False(t, sc.Authenticated())
	assert.Empty(t, sc.Token())
}

func TestInitializeLoadsStoredToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, TokenKey(42), "opaque-token"))

	sc := newTestContext(store)
	require.NoError(t, sc.Initialize(ctx))

	assert.Equal(t, "opaque-token", sc.Token())
}

func TestInitializeKeepsValidJWT(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	token := signedToken(t, testNow.Add(time.Hour))
	require.NoError(t, store.Set(ctx, TokenKey(42), token))

	sc := newTestContext(store)
	require.NoError(t, sc.Initialize(ctx))

	assert.Equal(t, token, sc.Token())
}

func TestInitializePurgesExpiredJWT(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, TokenKey(42), signedToken(t, testNow.Add(-time.Minute))))

	sc := newTestContext(store)
	require.NoError(t, sc.Initialize(ctx))

	assert.False(t, sc.Authenticated())
	_, ok, err := store.Get(ctx, TokenKey(42))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetPersistsToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sc := newTestContext(store)

	require.NoError(t, sc.Set(ctx, "abc"))
	assert.Equal(t, "abc", sc.Token())

	stored, ok, err := store.Get(ctx, TokenKey(42))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", stored)

	assert.ErrorIs(t, sc.Set(ctx, ""), ErrEmptyToken)
}

func TestClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sc := newTestContext(store)
	require.NoError(t, sc.Set(ctx, "abc"))

	for i := 0; i < 2; i++ {
		require.NoError(t, sc.Clear(ctx))
		assert.Empty(t, sc.Token())
		_, ok, err := store.Get(ctx, TokenKey(42))
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestConcurrentClearsConverge(t *testing.T) {
	ctx := context.Background()
	sc := newTestContext(NewMemoryStore())
	require.NoError(t, sc.Set(ctx, "abc"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, sc.Clear(ctx))
		}()
	}
	wg.Wait()

	assert.False(t, sc.Authenticated())
}

type failingStore struct {
	*MemoryStore
}

func (s failingStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

func TestClearDropsLocalTokenEvenIfStoreFails(t *testing.T) {
	ctx := context.Background()
	sc := newTestContext(failingStore{NewMemoryStore()})
	require.NoError(t, sc.Set(ctx, "abc"))

	assert.Error(t, sc.Clear(ctx))
	assert.Empty(t, sc.Token())
}
