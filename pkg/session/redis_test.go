package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galatea/pkg/persona"
)

func newRedisTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreFromClient(client, "galatea", time.Hour), mr
}

func TestRedisStoreRoundtrip(t *testing.T) {
	store, _ := newRedisTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	sess := New("s1", "nova", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	sess.BondScore = 42
	sess.Tier = persona.TierRomantic
	sess.Turns = 7
	sess.MarkOffer("voice", OfferGranted)
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "nova", got.PersonaID)
	assert.Equal(t, 42, got.BondScore)
	assert.Equal(t, persona.TierRomantic, got.Tier)
	assert.Equal(t, 7, got.Turns)
	assert.Equal(t, OfferGranted, got.Offers["voice"])
}

func TestRedisStoreKeyPrefix(t *testing.T) {
	store, mr := newRedisTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, New("s1", "bonnie", time.Now())))
	assert.True(t, mr.Exists("galatea:session:s1"))
}

func TestRedisStoreTTL(t *testing.T) {
	store, mr := newRedisTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, New("s1", "bonnie", time.Now())))

	mr.FastForward(2 * time.Hour)
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreOutageSurfacesError(t *testing.T) {
	store, mr := newRedisTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, New("s1", "bonnie", time.Now())))
	mr.Close()

	_, err := store.Get(ctx, "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.Error(t, store.Put(ctx, New("s2", "bonnie", time.Now())))
}
