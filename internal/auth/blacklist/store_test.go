package blacklist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	keys map[string]int // key -> ttl seconds
}

func (f *fakeKV) SetNX(_ context.Context, key string, _ []byte, ttlSeconds int) (bool, error) {
	if _, ok := f.keys[key]; ok {
		return false, nil
	}
	f.keys[key] = ttlSeconds
	return true, nil
}

func (f *fakeKV) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.keys[key]
	return ok, nil
}

func TestRevokeAndIsRevoked(t *testing.T) {
	kv := &fakeKV{keys: map[string]int{}}
	s := NewStore(kv)
	ctx := context.Background()

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl := kv.keys["jti:jti-1"]
	assert.InDelta(t, 3600, ttl, 5)
}

func TestRevokeExpiredTokenStillBlocks(t *testing.T) {
	kv := &fakeKV{keys: map[string]int{}}
	s := NewStore(kv)
	ctx := context.Background()

	// exp already in the past, entry still gets a short ttl
	require.NoError(t, s.Revoke(ctx, "jti-2", time.Now().Add(-time.Minute)))

	revoked, err := s.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, 60, kv.keys["jti:jti-2"])
}
