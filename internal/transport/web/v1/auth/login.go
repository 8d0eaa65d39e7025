package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
)

type HandlerLogin struct {
	Log      *log.Logger
	Accounts domain.AccountsRepo
	Hasher   domain.PasswordHasher
	Tokens   domain.TokenManager
}

type loginRequest struct {
	Email string `json:"email"`
	Pswd  string `json:"pswd"`
}

type loginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UnitID string `json:"unit_id,omitempty"`
}

// Login godoc
// @Summary     Authenticate account
// @Description Returns a JWT for valid email and password. Owner tokens carry their unit id.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "email, pswd"
// @Success     200 {object} domain.APIEnvelope{response=loginResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/auth [post]
func (h *HandlerLogin) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req loginRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrBadParams)
			return
		}
	} else {
		_ = r.ParseForm()
		req.Email = r.FormValue("email")
		req.Pswd = r.FormValue("pswd")
	}

	if req.Email == "" || req.Pswd == "" {
		logx.Error(h.Log, reqID, op, "empty email or pswd", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	a, err := h.Accounts.AccountByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		logx.Error(h.Log, reqID, op, "account not found", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	ok, err := h.Hasher.Verify(req.Pswd, a.PassHash)
	if err != nil || !ok {
		logx.Error(h.Log, reqID, op, "password verify failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	token, claims, err := h.Tokens.Issue(r.Context(), a)
	if err != nil {
		logx.Error(h.Log, reqID, op, "issue token failed", err, "account_id", a.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	resp := loginResponse{Token: token, Role: string(a.Role)}
	if claims.UnitID != nil {
		resp.UnitID = claims.UnitID.String()
	}

	logx.Info(h.Log, reqID, op, "ok", "account_id", a.ID, "role", a.Role)
	v1.WriteOKResponse(w, r, resp)
}
