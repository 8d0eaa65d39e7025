package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/NadilaEriani/posbankum/internal/config"
	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/transport/web/mw"
	authv1 "github.com/NadilaEriani/posbankum/internal/transport/web/v1/auth"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/health"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/region"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/report"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/submission"
	"github.com/NadilaEriani/posbankum/internal/transport/web/v1/unit"
	"github.com/NadilaEriani/posbankum/internal/verify"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, rep Repos, auth AuthDeps, bs domain.BlobStorage, cache domain.Cache) *Server {
	sub := func(name string) *log.Logger {
		return log.New(logger.Writer(), logger.Prefix()+"["+name+"] ", logger.Flags())
	}

	norm := verify.NewNormalizer(verify.DefaultAliasTable())
	access := &verify.AccessResolver{
		Signer: bs,
		Bucket: cfg.S3Bucket,
		TTL:    cfg.SignTTL,
	}

	h := handlers{
		health: &health.Handler{Log: sub("health"), DB: rep.Units, Cache: cache, Storage: bs},
		login: &authv1.HandlerLogin{
			Log: sub("auth"), Accounts: rep.Accounts,
			Hasher: auth.Hasher, Tokens: auth.Tokens,
		},
		logout: &authv1.HandlerLogout{Log: sub("auth"), Tokens: auth.Tokens, Blacklist: auth.Blacklist},
		unit: &unit.Handler{
			Log: sub("unit"), Units: rep.Units, Accounts: rep.Accounts,
			Hasher: auth.Hasher, Cache: cache,
		},
		region: &region.Handler{Log: sub("region"), Regions: rep.Regions},
		sub: &submission.Handler{
			Log: sub("submission"), Units: rep.Units, Subs: rep.Subs,
			Storage: bs, Cache: cache, Norm: norm, Access: access,
		},
		report: &report.Handler{
			Log: sub("report"), Units: rep.Units, Subs: rep.Subs,
			Cache: cache, Norm: norm, TTL: cfg.ReportCacheTTL,
		},
	}

	mwAuth := mw.AuthDeps{Tokens: auth.Tokens, Blacklist: auth.Blacklist}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(h, mwAuth, logger),
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
