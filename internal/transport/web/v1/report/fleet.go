package report

import (
	"encoding/json"
	"net/http"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/NadilaEriani/posbankum/internal/verify"
)

// Fleet godoc
// @Summary     Fleet-wide completeness report
// @Description All units with their per-category states; tab filters to complete or incomplete units. Admin only.
// @Tags        reports
// @Produce     json
// @Param       tab query string false "all|complete|incomplete (default all)"
// @Success     200 {object} domain.APIEnvelope{data=verify.FleetReport}
// @Security    BearerAuth
// @Router      /api/reports/fleet [get]
func (h *Handler) Fleet(w http.ResponseWriter, r *http.Request) {
	const op = "report.fleet"
	reqID := mw.RequestIDFromCtx(r.Context())

	tab := r.URL.Query().Get("tab")
	switch tab {
	case "", "all":
		tab = "all"
	case "complete", "incomplete":
	default:
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	ver := v1.ReportVersion(r.Context(), h.Cache)
	ckey := domain.CacheKeyFleet(ver, "tab="+tab)
	if b, err := h.Cache.Get(r.Context(), ckey); err == nil && b != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", reqID)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	snap, err := h.snapshot(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "snapshot failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	fleet := h.Norm.ComputeFleet(verify.RequiredCategories(), snap)
	if tab != "all" {
		wantComplete := tab == "complete"
		kept := fleet.Reports[:0]
		for _, rep := range fleet.Reports {
			if rep.Complete == wantComplete {
				kept = append(kept, rep)
			}
		}
		fleet.Reports = kept
	}

	env := domain.OkData(fleet)
	if buf, err := json.Marshal(env); err == nil {
		_ = h.Cache.Set(r.Context(), ckey, buf, h.TTL)
	}

	logx.Info(h.Log, reqID, op, "ok", "tab", tab, "units", fleet.Stats.UnitsEvaluated)
	v1.WriteEnvelope(w, r, http.StatusOK, env)
}

// Dashboard godoc
// @Summary     Dashboard counters
// @Description Units evaluated, pending documents and incomplete units in one call. Admin only.
// @Tags        reports
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{data=verify.FleetStats}
// @Security    BearerAuth
// @Router      /api/reports/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	const op = "report.dashboard"
	reqID := mw.RequestIDFromCtx(r.Context())

	ver := v1.ReportVersion(r.Context(), h.Cache)
	ckey := domain.CacheKeyFleet(ver, "dashboard")
	if b, err := h.Cache.Get(r.Context(), ckey); err == nil && b != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", reqID)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	snap, err := h.snapshot(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "snapshot failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	fleet := h.Norm.ComputeFleet(verify.RequiredCategories(), snap)

	env := domain.OkData(fleet.Stats)
	if buf, err := json.Marshal(env); err == nil {
		_ = h.Cache.Set(r.Context(), ckey, buf, h.TTL)
	}

	logx.Info(h.Log, reqID, op, "ok", "units", fleet.Stats.UnitsEvaluated)
	v1.WriteEnvelope(w, r, http.StatusOK, env)
}
