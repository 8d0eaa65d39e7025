package mw

import (
	"net/http"
	"strings"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

type AuthDeps struct {
	Tokens    domain.TokenManager
	Blacklist domain.TokenBlacklist
}

const unauthBody = `{"error":{"code":1001,"text":"unauthorized"}}`
const forbiddenBody = `{"error":{"code":1003,"text":"forbidden"}}`

// RequireAuth validates the Bearer token, rejects revoked sessions and
// puts the account into the request context.
func RequireAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			writeJSONError(w, http.StatusUnauthorized, unauthBody)
			return
		}
		claims, err := deps.Tokens.Parse(r.Context(), raw)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, unauthBody)
			return
		}
		if revoked, _ := deps.Blacklist.IsRevoked(r.Context(), claims.JTI); revoked {
			writeJSONError(w, http.StatusUnauthorized, unauthBody)
			return
		}
		a := domain.Account{
			ID:     claims.AccountID,
			Email:  claims.Email,
			Role:   claims.Role,
			UnitID: claims.UnitID,
		}
		next.ServeHTTP(w, r.WithContext(domain.WithAccount(r.Context(), a)))
	})
}

// RequireRole narrows an authenticated route to one role.
func RequireRole(role domain.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := domain.AccountFromCtx(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, unauthBody)
			return
		}
		if a.Role != role {
			writeJSONError(w, http.StatusForbidden, forbiddenBody)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func extractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
