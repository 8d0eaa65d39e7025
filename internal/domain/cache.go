package domain

import (
	"context"
	"strconv"
)

// Cache keys live in one place so they do not drift across handlers.
// Report caches embed a version counter so writes can invalidate the
// whole report family with one INCR.
func CacheKeyReportVersion() string { return "report:ver" }
func CacheKeyUnitReport(ver int64, id UnitID) string {
	return "report:" + strconv.FormatInt(ver, 10) + ":unit:" + id.String()
}
func CacheKeyFleet(ver int64, pageKey string) string {
	return "report:" + strconv.FormatInt(ver, 10) + ":fleet:" + pageKey
}
func CacheKeyTokenJTI(jti string) string { return "jti:" + jti }

// Minimal k/v contract. Implementation is Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	// Version counters for report invalidation
	Incr(ctx context.Context, key string) (int64, error)
	Ping(context.Context) error
	Close()
}
