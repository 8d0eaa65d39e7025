package report

import (
	"encoding/json"
	"net/http"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/NadilaEriani/posbankum/internal/verify"
	"github.com/google/uuid"
)

// Unit godoc
// @Summary     Completeness report for one unit
// @Description Per-category document states and the overall complete flag. Cached until the next write.
// @Tags        reports
// @Produce     json
// @Param       id path string true "unit id"
// @Success     200 {object} domain.APIEnvelope{data=verify.UnitReport}
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/reports/units/{id} [get]
func (h *Handler) Unit(w http.ResponseWriter, r *http.Request) {
	const op = "report.unit"
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
	if me.Role != domain.RoleAdmin && (me.UnitID == nil || *me.UnitID != unitID) {
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}

	ver := v1.ReportVersion(r.Context(), h.Cache)
	ckey := domain.CacheKeyUnitReport(ver, unitID)
	if b, err := h.Cache.Get(r.Context(), ckey); err == nil && b != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", reqID)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
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

	current := h.Norm.ResolveCurrent(subs)
	rep := h.Norm.ComputeCompleteness(unitID, verify.RequiredCategories(), current)

	env := domain.OkData(rep)
	if buf, err := json.Marshal(env); err == nil {
		_ = h.Cache.Set(r.Context(), ckey, buf, h.TTL)
	}

	logx.Info(h.Log, reqID, op, "ok", "unit_id", unitID, "complete", rep.Complete)
	v1.WriteEnvelope(w, r, http.StatusOK, env)
}
