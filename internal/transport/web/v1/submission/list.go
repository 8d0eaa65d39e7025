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

type checklistRow struct {
	Category   domain.Category    `json:"kategori"`
	State      verify.DocState    `json:"state"`
	Submission *domain.Submission `json:"submission,omitempty"`
}

type checklistResponse struct {
	UnitID   string         `json:"id_posbankum"`
	Complete bool           `json:"complete"`
	Rows     []checklistRow `json:"rows"`
	// History holds every stored submission, newest first, so the UI
	// can show superseded uploads too.
	History []domain.Submission `json:"history"`
}

// Checklist godoc
// @Summary     Unit document checklist
// @Description One row per required category with its current submission and state, plus the full upload history.
// @Tags        submissions
// @Produce     json
// @Param       id path string true "unit id"
// @Success     200 {object} domain.APIEnvelope{data=checklistResponse}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/units/{id}/submissions [get]
func (h *Handler) Checklist(w http.ResponseWriter, r *http.Request) {
	const op = "submission.checklist"
	reqID := mw.RequestIDFromCtx(r.Context())

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
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}
	if _, err := h.Units.UnitByID(r.Context(), unitID); err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}

	subs, err := h.Subs.SubmissionsByUnit(r.Context(), unitID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "load submissions failed", err, "unit_id", unitID)
		v1.WriteDomainError(w, r, err)
		return
	}

	required := verify.RequiredCategories()
	current := h.Norm.ResolveCurrent(subs)
	report := h.Norm.ComputeCompleteness(unitID, required, current)

	out := checklistResponse{
		UnitID:   unitID.String(),
		Complete: report.Complete,
		Rows:     make([]checklistRow, 0, len(report.Docs)),
		History:  subs,
	}
	for _, d := range report.Docs {
		row := checklistRow{Category: d.Category, State: d.State}
		if s, ok := current[d.Category]; ok {
			sc := s
			row.Submission = &sc
		}
		out.Rows = append(out.Rows, row)
	}

	v1.WriteOKData(w, r, out)
}
