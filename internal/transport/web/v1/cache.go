package v1

import (
	"context"
	"strconv"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

// InvalidateReports bumps the report cache version so every cached
// report (unit and fleet) becomes unreachable at once. Best effort:
// a cache outage must not fail the write that triggered it.
func InvalidateReports(ctx context.Context, c domain.Cache) {
	_, _ = c.Incr(ctx, domain.CacheKeyReportVersion())
}

// ReportVersion reads the current cache version; 0 on any error so
// callers fall back to a cold lookup key.
func ReportVersion(ctx context.Context, c domain.Cache) int64 {
	b, err := c.Get(ctx, domain.CacheKeyReportVersion())
	if err != nil || len(b) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
