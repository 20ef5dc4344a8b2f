package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	bidding "agri-auction/internal/biddingService"
	"agri-auction/internal/config"
	"agri-auction/internal/external"
	lifecycle "agri-auction/internal/lifecycleService"
	"agri-auction/internal/lookup"
	"agri-auction/internal/migrations"
	"agri-auction/internal/repository"
	"agri-auction/internal/repository/postgres"
	"agri-auction/internal/scheduler"
	"agri-auction/internal/server"
	settlement "agri-auction/internal/settlementService"
	"agri-auction/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("Failed to load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg.Database)
	if err != nil {
		utils.Fatal("Failed to open repository", map[string]any{"driver": cfg.Database.Driver, "error": err.Error()})
	}
	defer closeRepo()

	wallet := external.NewMemoryWallet()
	notifier := external.NewAsyncNotifier(newNotifier(cfg.Notifications), cfg.Notifications.QueueSize)
	defer notifier.Close()

	biddingOpts := []bidding.Option{
		bidding.WithWallet(wallet),
		bidding.WithNotifier(notifier),
		bidding.WithDefaultCurrency(cfg.Bidding.DefaultCurrency),
	}
	// demo data only seeds the memory store; user checks need the seeded directory
	demo := cfg.Database.SeedDemoData && cfg.Database.Driver == "memory"
	var users *external.MemoryDirectory
	if demo {
		users = external.NewMemoryDirectory()
		biddingOpts = append(biddingOpts, bidding.WithUserDirectory(users))
	}
	biddingSvc := bidding.NewBiddingService(repo, biddingOpts...)
	settlementSvc := settlement.NewSettlementService(repo,
		settlement.WithWallet(wallet),
		settlement.WithOrders(external.NewMemoryOrders()),
	)
	lifecycleSvc := lifecycle.NewLifecycleService(repo, settlementSvc,
		lifecycle.WithWallet(wallet),
		lifecycle.WithNotifier(notifier),
		lifecycle.WithBatchSize(cfg.Sweeper.BatchSize),
	)

	if demo {
		if err := seedDemoData(ctx, biddingSvc, users, wallet); err != nil {
			utils.Warn("Failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	if cfg.Sweeper.Enabled {
		runner, err := newSweeper(ctx, *cfg, lifecycleSvc)
		if err != nil {
			utils.Fatal("Failed to start auction sweeper", map[string]any{"error": err.Error()})
		}
		runner.Start()
		defer runner.Stop()
	}

	router := server.SetupRouter(server.Services{
		Bidding:     biddingSvc,
		Lifecycle:   lifecycleSvc,
		Settlements: settlementSvc,
		Catalog:     lookup.NewCatalog(),
	}, *cfg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		utils.Info("Starting auction server", map[string]any{"addr": srv.Addr, "driver": cfg.Database.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("Server stopped unexpectedly", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	utils.Info("Shutting down auction server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("Graceful shutdown failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// openRepository returns the configured store and a function releasing it
func openRepository(ctx context.Context, cfg config.DatabaseConfig) (repository.AuctionDB, func(), error) {
	if cfg.Driver != "postgres" {
		return repository.NewMemoryRepo(), func() {}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	poolCfg.MaxConns = cfg.MaxConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return postgres.NewRepository(pool), pool.Close, nil
}

func newNotifier(cfg config.NotificationsConfig) external.Notifier {
	if cfg.WebhookURL != "" {
		return external.WebhookNotifier{URL: cfg.WebhookURL}
	}
	return external.LogNotifier{}
}

// newSweeper schedules the due-auction sweep, locked through redis when one is configured
func newSweeper(ctx context.Context, cfg config.Config, svc *lifecycle.LifecycleService) (*scheduler.Runner, error) {
	var opts []scheduler.Option
	if cfg.Redis.Addr != "" {
		client, err := scheduler.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scheduler.WithLocker(scheduler.NewRedisLocker(client, cfg.Redis.LockTTL)))
	}

	runner := scheduler.New(ctx, opts...)
	if _, err := runner.Add(scheduler.SweepJobName, cfg.Sweeper.Spec, scheduler.SweepJob(svc)); err != nil {
		return nil, err
	}
	return runner, nil
}
