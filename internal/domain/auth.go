package domain

import (
	"context"
	"time"
)

type Token = string

type TokenClaims struct {
	JTI       string // unique token id, used for revocation
	AccountID AccountID
	Email     string
	Role      Role
	UnitID    *UnitID // owners carry their unit id in the token
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Password hashing (argon2id implementation in internal/auth/password)
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encodedHash string) (bool, error)
}

// Token issuing/parsing (JWT implementation in internal/auth/token)
type TokenManager interface {
	Issue(ctx context.Context, a Account) (Token, TokenClaims, error)
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}

// Token revocation, e.g. on logout (Redis-backed)
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, exp time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
