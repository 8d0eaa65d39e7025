package verify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

// URLSigner is the slice of object storage the access resolver needs.
type URLSigner interface {
	SignedURL(ctx context.Context, storageKey string, ttl time.Duration) (string, error)
}

// AccessResolver turns a stored file reference into a retrievable,
// time-bounded URL. References from old rows sometimes carry the bucket
// name as a redundant prefix; that gets stripped before signing.
type AccessResolver struct {
	Signer URLSigner
	Bucket string
	TTL    time.Duration
}

const DefaultAccessTTL = 10 * time.Minute

// ResolveAccess: absolute URLs pass through unchanged, anything else is
// treated as an object key and signed. Signer failures surface as
// ErrAccessUnavailable; retrying is the caller's decision.
func (r *AccessResolver) ResolveAccess(ctx context.Context, reference string) (string, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return "", fmt.Errorf("empty file reference: %w", domain.ErrBadParams)
	}
	if isAbsoluteURL(ref) {
		return ref, nil
	}
	key := strings.TrimPrefix(ref, r.Bucket+"/")
	ttl := r.TTL
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	url, err := r.Signer.SignedURL(ctx, key, ttl)
	if err != nil {
		return "", fmt.Errorf("sign %q: %v: %w", key, err, domain.ErrAccessUnavailable)
	}
	return url, nil
}

func isAbsoluteURL(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
