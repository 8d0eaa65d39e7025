package unit

import (
	"net/http"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/google/uuid"
)

// Delete godoc
// @Summary     Delete unit
// @Description Removes a post. Its accounts and submissions go with it (FK cascade). Admin only.
// @Tags        units
// @Produce     json
// @Param       id path string true "unit id"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/units/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "unit.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if err := h.Units.DeleteUnit(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "unit_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	v1.InvalidateReports(r.Context(), h.Cache)

	logx.Info(h.Log, reqID, op, "ok", "unit_id", id)
	v1.WriteOKResponse(w, r, map[string]bool{id.String(): true})
}
