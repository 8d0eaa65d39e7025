package submission

import (
	"net/http"
	"slices"
	"time"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/NadilaEriani/posbankum/internal/verify"
	"github.com/google/uuid"
)

// Upload godoc
// @Summary     Upload a checklist document
// @Description multipart: kategori (form field) + file. New submissions start as pending.
// @Tags        submissions
// @Accept      multipart/form-data
// @Produce     json
// @Param       id       path     string true "unit id"
// @Param       kategori formData string true "document category label"
// @Param       file     formData file   true "PDF or image, max 10MB"
// @Success     200 {object} domain.APIEnvelope{response=domain.Submission}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/units/{id}/submissions [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "submission.upload"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	me, ok := domain.AccountFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}
	unitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if !canManage(me, unitID) {
		logx.Error(h.Log, reqID, op, "foreign unit", domain.ErrForbidden, "unit_id", unitID, "account_id", me.ID)
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}
	if _, err := h.Units.UnitByID(r.Context(), unitID); err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(domain.MaxUploadBytes); err != nil {
		logx.Error(h.Log, reqID, op, "parse form failed", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	rawCategory := r.FormValue("kategori")
	cat := h.Norm.Normalize(rawCategory)
	if !slices.Contains(verify.RequiredCategories(), cat) {
		logx.Error(h.Log, reqID, op, "category outside checklist", domain.ErrBadParams, "kategori", rawCategory)
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
	if !domain.AllowedUploadMIME(mime) {
		logx.Error(h.Log, reqID, op, "mime rejected", domain.ErrBadParams, "mime", mime)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if hdr.Size <= 0 || hdr.Size > domain.MaxUploadBytes {
		logx.Error(h.Log, reqID, op, "size rejected", domain.ErrBadParams, "size", hdr.Size)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	now := time.Now().UTC()
	key := objectKey(unitID, cat, hdr.Filename, now)
	res, err := h.Storage.Put(r.Context(), key, fh, hdr.Size, mime)
	if err != nil {
		logx.Error(h.Log, reqID, op, "storage put failed", err, "key", key)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	sub := verify.NewUpload(unitID, rawCategory, domain.FileMeta{
		StorageKey: res.StorageKey,
		FileName:   hdr.Filename,
		MIME:       mime,
		SizeBytes:  res.Size,
	}, now)

	created, err := h.Subs.CreateSubmission(r.Context(), sub)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db create failed", err, "unit_id", unitID)
		_ = h.Storage.Delete(r.Context(), res.StorageKey)
		v1.WriteDomainError(w, r, err)
		return
	}

	v1.InvalidateReports(r.Context(), h.Cache)

	logx.Info(h.Log, reqID, op, "ok", "submission_id", created.ID, "kategori", cat)
	v1.WriteOKResponse(w, r, created)
}
