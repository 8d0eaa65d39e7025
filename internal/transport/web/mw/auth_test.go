package mw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

type fakeTokens struct {
	claims domain.TokenClaims
	err    error
}

func (f *fakeTokens) Issue(context.Context, domain.Account) (domain.Token, domain.TokenClaims, error) {
	return "", domain.TokenClaims{}, errors.New("not implemented")
}

func (f *fakeTokens) Parse(_ context.Context, raw domain.Token) (domain.TokenClaims, error) {
	if f.err != nil {
		return domain.TokenClaims{}, f.err
	}
	return f.claims, nil
}

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) Revoke(_ context.Context, jti string, _ time.Time) error {
	f.revoked[jti] = true
	return nil
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func validClaims() domain.TokenClaims {
	return domain.TokenClaims{
		JTI:       "jti-1",
		AccountID: uuid.New(),
		Email:     "admin@example.go.id",
		Role:      domain.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRequireAuth(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		parseErr   error
		revoked    bool
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "parse fails", header: "Bearer bad", parseErr: errors.New("boom"), wantStatus: http.StatusUnauthorized},
		{name: "revoked", header: "Bearer ok", revoked: true, wantStatus: http.StatusUnauthorized},
		{name: "ok", header: "Bearer ok", wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims := validClaims()
			bl := &fakeBlacklist{revoked: map[string]bool{}}
			if tc.revoked {
				bl.revoked[claims.JTI] = true
			}
			deps := AuthDeps{
				Tokens:    &fakeTokens{claims: claims, err: tc.parseErr},
				Blacklist: bl,
			}

			var got domain.Account
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				a, ok := domain.AccountFromCtx(r.Context())
				require.True(t, ok)
				got = a
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			RequireAuth(deps, next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, claims.AccountID, got.ID)
				assert.Equal(t, domain.RoleAdmin, got.Role)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		a := domain.Account{ID: uuid.New(), Role: domain.RoleAdmin}
		req = req.WithContext(domain.WithAccount(req.Context(), a))
		rec := httptest.NewRecorder()
		RequireRole(domain.RoleAdmin, next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		a := domain.Account{ID: uuid.New(), Role: domain.RoleOwner}
		req = req.WithContext(domain.WithAccount(req.Context(), a))
		rec := httptest.NewRecorder()
		RequireRole(domain.RoleAdmin, next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no account unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		RequireRole(domain.RoleAdmin, next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
