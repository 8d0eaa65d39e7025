package blacklist

import (
	"context"
	"time"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

// KV is the minimal slice of the cache the blacklist needs.
type KV interface {
	SetNX(ctx context.Context, key string, val []byte, ttlSeconds int) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// Store keeps revoked token ids in a shared KV until they expire on
// their own, so entries never outlive the tokens they block.
type Store struct {
	kv KV
}

var _ domain.TokenBlacklist = (*Store)(nil)

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Revoke(ctx context.Context, jti string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl < time.Minute {
		ttl = time.Minute
	}
	_, err := s.kv.SetNX(ctx, domain.CacheKeyTokenJTI(jti), []byte("1"), int(ttl.Seconds()))
	return err
}

func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.kv.Exists(ctx, domain.CacheKeyTokenJTI(jti))
}
