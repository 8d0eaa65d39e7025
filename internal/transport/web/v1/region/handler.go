package region

import (
	"log"
	"net/http"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/logx"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	v1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1"
)

// Reference data for the region pickers. Read only.
type Handler struct {
	Log     *log.Logger
	Regions domain.RegionsRepo
}

// Kabupaten godoc
// @Summary     List kabupaten
// @Tags        regions
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{data=object}
// @Router      /api/regions/kabupaten [get]
func (h *Handler) Kabupaten(w http.ResponseWriter, r *http.Request) {
	const op = "region.kabupaten"
	reqID := mw.RequestIDFromCtx(r.Context())

	list, err := h.Regions.KabupatenList(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, map[string]any{"kabupaten": list})
}

// Kecamatan godoc
// @Summary     List kecamatan of one kabupaten
// @Tags        regions
// @Produce     json
// @Param       id path string true "kabupaten id"
// @Success     200 {object} domain.APIEnvelope{data=object}
// @Failure     400 {object} domain.APIEnvelope
// @Router      /api/regions/kabupaten/{id}/kecamatan [get]
func (h *Handler) Kecamatan(w http.ResponseWriter, r *http.Request) {
	const op = "region.kecamatan"
	reqID := mw.RequestIDFromCtx(r.Context())

	kabID := r.PathValue("id")
	if kabID == "" {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	list, err := h.Regions.KecamatanByKabupaten(r.Context(), kabID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err, "id_kabupaten", kabID)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOKData(w, r, map[string]any{"kecamatan": list})
}
