package web

import (
	"log"
	"net/http"

	_ "github.com/NadilaEriani/posbankum/internal/docs"
	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	authv1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1/auth"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/health"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/region"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/report"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/submission"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/unit"
	httpSwagger "github.com/swaggo/http-swagger"
)

type handlers struct {
	health *health.Handler
	login  *authv1.HandlerLogin
	logout *authv1.HandlerLogout
	unit   *unit.Handler
	region *region.Handler
	sub    *submission.Handler
	report *report.Handler
}

func newRouter(h handlers, auth mw.AuthDeps, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	authed := func(hf http.HandlerFunc) http.Handler {
		return mw.RequireAuth(auth, hf)
	}
	admin := func(hf http.HandlerFunc) http.Handler {
		return mw.RequireAuth(auth, mw.RequireRole(domain.RoleAdmin, hf))
	}

	// health
	mux.HandleFunc("GET /api/healthz", h.health.Liveness)
	mux.HandleFunc("GET /api/readyz", h.health.Readiness)

	// auth
	mux.HandleFunc("POST /api/auth", h.login.Login)
	mux.HandleFunc("DELETE /api/auth", h.logout.Logout)

	// region reference data (feeds the public registration pickers)
	mux.HandleFunc("GET /api/regions/kabupaten", h.region.Kabupaten)
	mux.HandleFunc("GET /api/regions/kabupaten/{id}/kecamatan", h.region.Kecamatan)

	// unit directory
	mux.Handle("POST /api/units", admin(h.unit.Create))
	mux.Handle("GET /api/units", admin(h.unit.List))
	mux.Handle("GET /api/units/{id}", authed(h.unit.Get))
	mux.Handle("PUT /api/units/{id}", admin(h.unit.Update))
	mux.Handle("DELETE /api/units/{id}", admin(h.unit.Delete))

	// submissions
	mux.Handle("POST /api/units/{id}/submissions", authed(limitBody(domain.MaxUploadBytes+1<<20, h.sub.Upload)))
	mux.Handle("GET /api/units/{id}/submissions", authed(h.sub.Checklist))
	mux.Handle("PUT /api/submissions/{id}/file", authed(limitBody(domain.MaxUploadBytes+1<<20, h.sub.Resubmit)))
	mux.Handle("DELETE /api/submissions/{id}", authed(h.sub.Delete))
	mux.Handle("POST /api/submissions/{id}/approve", admin(h.sub.Approve))
	mux.Handle("POST /api/submissions/{id}/reject", admin(h.sub.Reject))
	mux.Handle("GET /api/submissions/{id}/access", authed(h.sub.AccessURL))

	// reports
	mux.Handle("GET /api/reports/units/{id}", authed(h.report.Unit))
	mux.Handle("GET /api/reports/fleet", admin(h.report.Fleet))
	mux.Handle("GET /api/reports/dashboard", admin(h.report.Dashboard))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mw.WithRequestID(mw.Logging(logger)(mux))
}

// limitBody caps the request body; multipart parsing needs headroom
// above the raw file limit.
func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
