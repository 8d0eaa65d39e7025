package unit

import (
	"net/http"
	"strconv"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
	"github.com/google/uuid"
)

// Get godoc
// @Summary     Get unit by id
// @Tags        units
// @Produce     json
// @Param       id path string true "unit id"
// @Success     200 {object} domain.APIEnvelope{response=domain.Unit}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Security    BearerAuth
// @Router      /api/units/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "unit.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	u, err := h.Units.UnitByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "load failed", err, "unit_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	v1.WriteOKResponse(w, r, u)
}

// List godoc
// @Summary     List units
// @Description Directory search: name substring plus two-level region filter.
// @Tags        units
// @Produce     json
// @Param       q            query string false "name substring"
// @Param       id_kabupaten query string false "kabupaten filter"
// @Param       id_kecamatan query string false "kecamatan filter"
// @Param       limit        query int    false "limit (default 100)"
// @Success     200 {object} domain.APIEnvelope{data=object}
// @Security    BearerAuth
// @Router      /api/units [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "unit.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	f := domain.UnitFilter{
		Query:       r.URL.Query().Get("q"),
		KabupatenID: r.URL.Query().Get("id_kabupaten"),
		KecamatanID: r.URL.Query().Get("id_kecamatan"),
		Limit:       100,
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 1000 {
			f.Limit = n
		}
	}

	units, err := h.Units.UnitsList(r.Context(), f)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	v1.WriteOKData(w, r, map[string]any{"units": units})
}
