package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/cms"
	"terrazaeden.com/web/internal/config"
	"terrazaeden.com/web/internal/graphql"
	mw "terrazaeden.com/web/internal/middleware"
	"terrazaeden.com/web/internal/observability"
	"terrazaeden.com/web/internal/raffle"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverLogger := logger.Named("http").With(zap.String("addr", srv.Addr))
	errCh := make(chan error, 1)
	go func() {
		serverLogger.Info("terraza eden web listening",
			zap.Bool("dev", cfg.Server.Dev),
			zap.String("env", cfg.Server.Environment),
			zap.Int("brands", a.catalog.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}

// newApp loads the dataset and templates and wires the raffle signer.
func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	cat, err := catalog.Load(cfg.Site.DataFile)
	if err != nil {
		return nil, err
	}
	v, err := newViews(cfg.Site.TemplatesDir, cfg.Server.Dev)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	var signer raffle.Signer
	if cfg.GraphQL.Local {
		logger.Warn("raffle signups are accepted locally; nothing reaches the promotions backend")
		signer = raffle.LocalSigner{}
	} else {
		client := graphql.NewClient(cfg.GraphQL.URL, graphql.WithTimeout(cfg.GraphQL.Timeout))
		signer = raffle.NewGraphQLSigner(client, cfg.Raffle.TenantID)
	}

	ttl := cms.DefaultCacheTTL()
	if cfg.Server.Dev {
		ttl = 0
	}
	return &app{
		cfg:          cfg,
		logger:       logger,
		catalog:      cat,
		views:        v,
		raffle:       raffle.NewService(cat, signer, cfg.Raffle.Referrer),
		guard:        raffle.NewGuard(),
		content:      cms.NewStore(cfg.Site.ContentDir, ttl),
		assetVersion: assetVersion(cfg.Site.PublicDir),
	}, nil
}

func assetVersion(publicDir string) string {
	return mw.AssetVersion(filepath.Join(publicDir, "assets", "app.css"))
}
