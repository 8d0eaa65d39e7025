package submission

import (
	"net/http"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/google/uuid"
)

type accessResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// Access godoc
// @Summary     Short-lived download URL for a submission file
// @Description Legacy absolute URLs pass through unchanged; bucket keys get a presigned GET.
// @Tags        submissions
// @Produce     json
// @Param       id path string true "submission id"
// @Success     200 {object} domain.APIEnvelope{response=accessResponse}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     502 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/submissions/{id}/access [get]
func (h *Handler) AccessURL(w http.ResponseWriter, r *http.Request) {
	const op = "submission.access"
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
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}

	url, err := h.Access.ResolveAccess(r.Context(), cur.StorageKey)
	if err != nil {
		logx.Error(h.Log, reqID, op, "resolve failed", err, "submission_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "submission_id", id)
	v1.WriteOKResponse(w, r, accessResponse{URL: url, ExpiresIn: int(h.Access.TTL.Seconds())})
}
