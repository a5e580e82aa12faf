package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/glasanje/cliparse"
	"github.com/danielhkuo/glasanje/db"
	"github.com/danielhkuo/glasanje/definitions"
	"github.com/danielhkuo/glasanje/logger"
	"github.com/danielhkuo/glasanje/router"
	"github.com/danielhkuo/glasanje/sse"
	"github.com/danielhkuo/glasanje/store"
	"github.com/danielhkuo/glasanje/views"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zl.Sync()
	logger.Install(zl)

	settings, err := cliparse.LoadDBSettings(cfg.SettingsPath)
	if err != nil {
		return err
	}

	set, err := definitions.Load(cfg.DataDir)
	if err != nil {
		return err
	}

	dialect, err := db.DialectFor(cfg.DatabaseType)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect and verify
	dbConn, err := sql.Open(cliparse.DriverName(cfg.DatabaseType), settings.DSN(cfg.DatabaseType))
	if err != nil {
		return err
	}
	defer dbConn.Close()
	db.Configure(dbConn)

	if err := dbConn.PingContext(ctx); err != nil {
		return err
	}

	index, err := db.Initialize(ctx, dbConn, dialect, set)
	if err != nil {
		return err
	}
	slog.Info("database ready", "type", cfg.DatabaseType, "polls", index.Len())

	pages, err := views.New()
	if err != nil {
		return err
	}

	broker := sse.NewBroker()
	go broker.Listen(ctx)

	server := http.Server{
		Handler:           router.NewRouter(store.New(dbConn, index), pages, broker, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server closed")
	return nil
}
