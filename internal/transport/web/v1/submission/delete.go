package submission

import (
	"net/http"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/NadilaEriani/posbankum/internal/verify"
	"github.com/google/uuid"
)

// Delete godoc
// @Summary     Delete a rejected submission
// @Description Only rejected submissions may be removed; pending and approved rows stay for the audit trail.
// @Tags        submissions
// @Produce     json
// @Param       id path string true "submission id"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/submissions/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "submission.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := domain.AccountFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	cur, err := h.Subs.SubmissionByID(r.Context(), id)
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}
	if !canManage(me, cur.UnitID) {
		logx.Error(h.Log, reqID, op, "foreign unit", domain.ErrForbidden, "submission_id", id)
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}

	if err := verify.CanDelete(cur); err != nil {
		logx.Error(h.Log, reqID, op, "delete refused", err, "submission_id", id, "status", cur.RawStatus)
		v1.WriteDomainError(w, r, err)
		return
	}

	if err := h.Subs.DeleteSubmission(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "db delete failed", err, "submission_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	// blob cleanup is best effort, the row is already gone
	if cur.StorageKey != "" {
		_ = h.Storage.Delete(r.Context(), cur.StorageKey)
	}

	v1.InvalidateReports(r.Context(), h.Cache)

	logx.Info(h.Log, reqID, op, "ok", "submission_id", id)
	v1.WriteOKResponse(w, r, map[string]bool{id.String(): true})
}
