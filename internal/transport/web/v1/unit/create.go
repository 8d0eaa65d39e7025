package unit

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
)

type createRequest struct {
	Name        string `json:"nama"`
	KabupatenID string `json:"id_kabupaten"`
	KecamatanID string `json:"id_kecamatan"`
	Email       string `json:"email_akun"`
	Pswd        string `json:"pswd"`
}

type createResponse struct {
	Unit      domain.Unit `json:"unit"`
	AccountID string      `json:"account_id"`
}

// Create godoc
// @Summary     Create unit with owner account
// @Description Registers a new post and provisions the owner account bound to it. Admin only.
// @Tags        units
// @Accept      json
// @Produce     json
// @Param       request body createRequest true "nama, id_kabupaten, id_kecamatan, email_akun, pswd"
// @Success     200 {object} domain.APIEnvelope{response=createResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/units [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "unit.create"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.KabupatenID == "" || req.KecamatanID == "" {
		logx.Error(h.Log, reqID, op, "missing fields", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if !domain.ValidEmail(req.Email) || !domain.ValidPassword(req.Pswd) {
		logx.Error(h.Log, reqID, op, "email or password rejected", domain.ErrBadParams, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	u, err := h.Units.CreateUnit(r.Context(), domain.Unit{
		Name:        req.Name,
		KabupatenID: req.KabupatenID,
		KecamatanID: req.KecamatanID,
		Email:       req.Email,
	})
	if err != nil {
		logx.Error(h.Log, reqID, op, "create unit failed", err, "nama", req.Name)
		v1.WriteDomainError(w, r, err)
		return
	}

	hash, err := h.Hasher.Hash(req.Pswd)
	if err != nil {
		logx.Error(h.Log, reqID, op, "hash failed", err)
		_ = h.Units.DeleteUnit(r.Context(), u.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	acc, err := h.Accounts.CreateAccount(r.Context(), req.Email, hash, domain.RoleOwner, &u.ID)
	if err != nil {
		// unit without a login is useless, undo the first insert
		logx.Error(h.Log, reqID, op, "provision account failed", err, "email", req.Email)
		_ = h.Units.DeleteUnit(r.Context(), u.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	v1.InvalidateReports(r.Context(), h.Cache)

	logx.Info(h.Log, reqID, op, "ok", "unit_id", u.ID, "account_id", acc.ID)
	v1.WriteOKResponse(w, r, createResponse{Unit: u, AccountID: acc.ID.String()})
}
