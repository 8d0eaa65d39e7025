package submission

import (
	"net/http"
	"time"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/NadilaEriani/posbankum/internal/verify"
	"github.com/google/uuid"
)

// Resubmit godoc
// @Summary     Replace the file of a reviewed submission
// @Description Swaps the file on the same record and resets it to pending. Allowed only after a verdict (approved or rejected).
// @Tags        submissions
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path     string true "submission id"
// @Param       file formData file   true "PDF or image, max 10MB"
// @Success     200 {object} domain.APIEnvelope{response=domain.Submission}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/submissions/{id}/file [put]
func (h *Handler) Resubmit(w http.ResponseWriter, r *http.Request) {
	const op = "submission.resubmit"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

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

	if err := r.ParseMultipartForm(domain.MaxUploadBytes); err != nil {
		logx.Error(h.Log, reqID, op, "parse form failed", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	fh, hdr, err := r.FormFile("file")
	if err != nil {
		logx.Error(h.Log, reqID, op, "missing file", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	defer fh.Close()

	mime := hdr.Header.Get("Content-Type")
	if !domain.AllowedUploadMIME(mime) || hdr.Size <= 0 || hdr.Size > domain.MaxUploadBytes {
		logx.Error(h.Log, reqID, op, "file rejected", domain.ErrBadParams, "mime", mime, "size", hdr.Size)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	now := time.Now().UTC()
	key := objectKey(cur.UnitID, h.Norm.Normalize(cur.RawCategory), hdr.Filename, now)
	res, err := h.Storage.Put(r.Context(), key, fh, hdr.Size, mime)
	if err != nil {
		logx.Error(h.Log, reqID, op, "storage put failed", err, "key", key)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	meta := domain.FileMeta{
		StorageKey: res.StorageKey,
		FileName:   hdr.Filename,
		MIME:       mime,
		SizeBytes:  res.Size,
	}
	next, err := verify.Replace(cur, meta, now)
	if err != nil {
		// verdict gate failed, drop the blob we just wrote
		logx.Error(h.Log, reqID, op, "replace refused", err, "submission_id", id, "status", cur.RawStatus)
		_ = h.Storage.Delete(r.Context(), res.StorageKey)
		v1.WriteDomainError(w, r, err)
		return
	}

	oldKey := cur.StorageKey
	updated, err := h.Subs.ReplaceFile(r.Context(), id, meta, next.RawStatus)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db replace failed", err, "submission_id", id)
		_ = h.Storage.Delete(r.Context(), res.StorageKey)
		v1.WriteDomainError(w, r, err)
		return
	}

	// old blob is unreachable now; best effort cleanup
	if oldKey != "" && oldKey != res.StorageKey {
		_ = h.Storage.Delete(r.Context(), oldKey)
	}

	v1.InvalidateReports(r.Context(), h.Cache)

	logx.Info(h.Log, reqID, op, "ok", "submission_id", updated.ID)
	v1.WriteOKResponse(w, r, updated)
}
