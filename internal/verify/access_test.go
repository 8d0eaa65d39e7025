package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

type fakeSigner struct {
	lastKey string
	lastTTL time.Duration
	err     error
}

func (f *fakeSigner) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	f.lastKey, f.lastTTL = key, ttl
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.local/signed/" + key, nil
}

func TestResolveAccessAbsoluteURLPassThrough(t *testing.T) {
	s := &fakeSigner{}
	r := &AccessResolver{Signer: s, Bucket: "posbankum-docs"}

	for _, ref := range []string{
		"https://cdn.example.id/docs/sk.pdf",
		"HTTP://legacy.example.id/a.png",
	} {
		url, err := r.ResolveAccess(context.Background(), ref)
		require.NoError(t, err)
		assert.Equal(t, ref, url)
	}
	assert.Empty(t, s.lastKey, "signer must not be consulted for absolute URLs")
}

func TestResolveAccessStripsBucketPrefix(t *testing.T) {
	s := &fakeSigner{}
	r := &AccessResolver{Signer: s, Bucket: "posbankum-docs", TTL: 10 * time.Minute}

	url, err := r.ResolveAccess(context.Background(), "posbankum-docs/u1/sarpras/1_foto.webp")
	require.NoError(t, err)
	assert.Equal(t, "u1/sarpras/1_foto.webp", s.lastKey)
	assert.Equal(t, 10*time.Minute, s.lastTTL)
	assert.Contains(t, url, s.lastKey)

	// plain keys are signed as-is with the default TTL
	r2 := &AccessResolver{Signer: s, Bucket: "posbankum-docs"}
	_, err = r2.ResolveAccess(context.Background(), "u1/sk_posbankum/2_sk.pdf")
	require.NoError(t, err)
	assert.Equal(t, "u1/sk_posbankum/2_sk.pdf", s.lastKey)
	assert.Equal(t, DefaultAccessTTL, s.lastTTL)
}

func TestResolveAccessUnavailable(t *testing.T) {
	s := &fakeSigner{err: errors.New("object missing")}
	r := &AccessResolver{Signer: s, Bucket: "posbankum-docs"}

	_, err := r.ResolveAccess(context.Background(), "u1/sarpras/1.pdf")
	assert.ErrorIs(t, err, domain.ErrAccessUnavailable)
}

func TestResolveAccessEmptyReference(t *testing.T) {
	r := &AccessResolver{Signer: &fakeSigner{}, Bucket: "posbankum-docs"}
	_, err := r.ResolveAccess(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrBadParams)
}
