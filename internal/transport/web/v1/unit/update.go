package unit

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/google/uuid"
)

type updateRequest struct {
	Name        string `json:"nama"`
	KabupatenID string `json:"id_kabupaten"`
	KecamatanID string `json:"id_kecamatan"`
}

// Update godoc
// @Summary     Update unit fields
// @Description Renames or re-binds a post to another region. Admin only.
// @Tags        units
// @Accept      json
// @Produce     json
// @Param       id      path string        true "unit id"
// @Param       request body updateRequest true "nama, id_kabupaten, id_kecamatan"
// @Success     200 {object} domain.APIEnvelope{response=domain.Unit}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/units/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "unit.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	cur, err := h.Units.UnitByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "load unit failed", err, "unit_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	if s := strings.TrimSpace(req.Name); s != "" {
		cur.Name = s
	}
	if req.KabupatenID != "" {
		cur.KabupatenID = req.KabupatenID
	}
	if req.KecamatanID != "" {
		cur.KecamatanID = req.KecamatanID
	}

	u, err := h.Units.UpdateUnit(r.Context(), cur)
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "unit_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	v1.InvalidateReports(r.Context(), h.Cache)

	logx.Info(h.Log, reqID, op, "ok", "unit_id", u.ID)
	v1.WriteOKResponse(w, r, u)
}
