package report

import (
	"context"
	"log"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/verify"
)

type Handler struct {
	Log   *log.Logger
	Units domain.UnitsRepo
	Subs  domain.SubmissionsRepo
	Cache domain.Cache
	Norm  *verify.Normalizer

	TTL int // cache TTL, seconds
}

// snapshotLimit bounds one fleet read. The deployment tracks a few
// hundred posts per province, so one page is the whole fleet.
const snapshotLimit = 5000

// snapshot reads every unit and its submissions in one pass. A failed
// submission fetch yields a partial snapshot instead of an error so
// reports degrade to "indeterminate" rather than 500.
func (h *Handler) snapshot(ctx context.Context) (domain.Snapshot, error) {
	units, err := h.Units.UnitsList(ctx, domain.UnitFilter{Limit: snapshotLimit})
	if err != nil {
		return domain.Snapshot{}, err
	}

	ids := make([]domain.UnitID, 0, len(units))
	for _, u := range units {
		ids = append(ids, u.ID)
	}

	subs, err := h.Subs.SubmissionsByUnits(ctx, ids)
	if err != nil {
		return domain.Snapshot{
			Units:   units,
			Partial: true,
			Reason:  "submission fetch failed",
		}, nil
	}

	return domain.Snapshot{Units: units, Submissions: subs}, nil
}
