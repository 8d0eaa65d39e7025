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

// Approve godoc
// @Summary     Approve a pending submission
// @Description Verdict is allowed only while the submission is pending. Admin only.
// @Tags        submissions
// @Produce     json
// @Param       id path string true "submission id"
// @Success     200 {object} domain.APIEnvelope{response=domain.Submission}
// @Failure     404 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/submissions/{id}/approve [post]
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "submission.approve", verify.Approve)
}

// Reject godoc
// @Summary     Reject a pending submission
// @Description Verdict is allowed only while the submission is pending. Admin only.
// @Tags        submissions
// @Produce     json
// @Param       id path string true "submission id"
// @Success     200 {object} domain.APIEnvelope{response=domain.Submission}
// @Failure     404 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/submissions/{id}/reject [post]
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, "submission.reject", verify.Reject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, op string, verdict func(domain.Submission) (domain.Submission, error)) {
	reqID := mw.RequestIDFromCtx(r.Context())

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

	next, err := verdict(cur)
	if err != nil {
		logx.Error(h.Log, reqID, op, "verdict refused", err, "submission_id", id, "status", cur.RawStatus)
		v1.WriteDomainError(w, r, err)
		return
	}

	updated, err := h.Subs.SetStatus(r.Context(), id, next.RawStatus)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db set status failed", err, "submission_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	v1.InvalidateReports(r.Context(), h.Cache)

	logx.Info(h.Log, reqID, op, "ok", "submission_id", id, "status", updated.RawStatus)
	v1.WriteOKResponse(w, r, updated)
}
