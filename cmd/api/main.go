package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/caixa/internal/auth"
	"github.com/MrJamesThe3rd/caixa/internal/config"
	"github.com/MrJamesThe3rd/caixa/internal/database"
	"github.com/MrJamesThe3rd/caixa/internal/export"
	caixaHttp "github.com/MrJamesThe3rd/caixa/internal/http"
	cashbookHandler "github.com/MrJamesThe3rd/caixa/internal/http/cashbook"
	catalogHandler "github.com/MrJamesThe3rd/caixa/internal/http/catalog"
	exportHandler "github.com/MrJamesThe3rd/caixa/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/caixa/internal/http/importcsv"
	txHandler "github.com/MrJamesThe3rd/caixa/internal/http/transaction"
	"github.com/MrJamesThe3rd/caixa/internal/importer"
	"github.com/MrJamesThe3rd/caixa/internal/ledger"
	"github.com/MrJamesThe3rd/caixa/internal/ledger/localstore"
	ledgerStore "github.com/MrJamesThe3rd/caixa/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scope := ledger.Anonymous()

	var store ledger.Store

	if cfg.Authenticated() {
		userID, err := auth.Parse(cfg.Auth.Secret, cfg.Auth.Token)
		if err != nil {
			slog.Error("failed to verify session token", "error", err)
			os.Exit(1)
		}

		scope = ledger.ForUser(userID)

		db, err := database.Connect(ctx, cfg.ConnectionString())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		store = ledgerStore.New(db)
	}

	cache, err := localstore.Open(localstore.Config{
		Path:       cfg.Cache.Dir,
		SyncWrites: true,
	})
	if err != nil {
		slog.Error("failed to open local cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	engine := ledger.New(store, cache, slog.Default())

	if _, err := engine.SetScope(ctx, scope); err != nil {
		slog.Error("failed to load snapshot", "scope", scope, "error", err)
		os.Exit(1)
	}

	// Remote write failures are not retried; keep them visible.
	go func() {
		for f := range engine.Failures() {
			slog.Warn("pending remote failure", "op", f.Op, "at", f.At, "error", f.Err)
		}
	}()

	var (
		exportService = export.NewService()
		importService = importer.NewService(engine)
	)

	var (
		cashbookH = cashbookHandler.NewHandler(engine)
		txH       = txHandler.NewHandler(engine)
		catalogH  = catalogHandler.NewHandler(engine)
		exportH   = exportHandler.NewHandler(exportService, engine)
		importH   = importHandler.NewHandler(importService)
	)

	router := caixaHttp.New(
		auth.Middleware(cfg.Auth.Secret, scope.UserID()),
		cashbookH, txH, catalogH, exportH, importH,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: cfg.Server.Timeout}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "scope", scope)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	// Drain in-flight remote writes before the process exits.
	engine.Flush()
}
