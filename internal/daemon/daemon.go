package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fapmap/trophy/internal/api"
	"github.com/fapmap/trophy/internal/app/trophy"
	"github.com/fapmap/trophy/internal/domain"
	_ "github.com/fapmap/trophy/internal/infra/metrics" // Register Prometheus metrics
	"github.com/fapmap/trophy/internal/infra/sqlite"
)

// Daemon is the core trophy runtime. It wires together all services.
type Daemon struct {
	Config       Config
	DB           *sqlite.DB
	Engine       *trophy.Engine
	Notification *trophy.NotificationService
	Server       *api.Server
	cancel       context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		dir = trophyHome()
	}

	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	engine := trophy.New(db)

	policy := domain.NotificationPolicy{
		MaxPerDay:  cfg.Notifications.MaxPerDay,
		QuietStart: cfg.Notifications.QuietStart,
		QuietEnd:   cfg.Notifications.QuietEnd,
	}
	notifs := trophy.NewNotificationServiceWithPolicy(db, policy)

	srv := api.NewServer(db, engine, notifs)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:       cfg,
		DB:           db,
		Engine:       engine,
		Notification: notifs,
		Server:       srv,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("Trophy engine serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
