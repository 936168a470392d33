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
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/02priyeshraj/Table_Ordering_Backend/config"
	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/logger"
	middleware "github.com/02priyeshraj/Table_Ordering_Backend/middlewares"
	"github.com/02priyeshraj/Table_Ordering_Backend/routes"
	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New("table-ordering", cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	repos, closeRepos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepos()

	tokens := helper.NewTokenHelper(cfg.JWTSecret, cfg.TokenTTL)
	rates := helper.BillRates{TaxRate: cfg.TaxRate, ServiceFeeRate: cfg.ServiceFeeRate}

	sessions := service.NewSessionService(repos.Sessions, repos.Orders, cfg.SessionTimeout)
	menus := service.NewMenuService(repos.Menus)
	auth := service.NewAuthService(repos.Users, tokens, log)

	if cfg.StorageDriver == config.DriverMemory {
		if err := seedMemory(ctx, auth, menus, repos, log); err != nil {
			return err
		}
	}

	limiter, closeLimiter, err := loginLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	handler := routes.NewRouter(routes.Controllers{
		Sessions:  controller.NewSessionController(sessions),
		Menu:      controller.NewMenuController(menus),
		Cart:      controller.NewCartController(service.NewCartService(repos.Sessions, repos.Menus)),
		Orders:    controller.NewOrderController(service.NewOrderService(repos.Sessions, repos.Orders, repos.Menus, rates, log)),
		Bills:     controller.NewBillController(service.NewBillService(repos.Sessions, repos.Orders, rates)),
		Auth:      controller.NewAuthController(auth),
		Inventory: controller.NewInventoryController(service.NewInventoryService(repos.Menus)),
		Analytics: controller.NewAnalyticsController(service.NewAnalyticsService(repos.Orders)),
	}, middleware.NewAuthenticator(tokens, cfg.AdminToken), limiter, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("server listening",
		slog.String("port", cfg.Port),
		slog.String("storage", cfg.StorageDriver),
		slog.Bool("static_admin_token", cfg.AdminToken != ""),
	)

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func openRepositories(ctx context.Context, cfg config.Config, log *slog.Logger) (service.Repositories, func(), error) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Warn("using in-memory storage; data is lost on restart")
		return service.MemoryRepositories(), func() {}, nil
	}

	client, err := config.DBinstance(ctx, cfg.MongoURI)
	if err != nil {
		return service.Repositories{}, nil, err
	}
	closeClient := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("disconnect mongodb", slog.String("error", err.Error()))
		}
	}

	db := config.OpenDatabase(client, cfg.MongoDatabase)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		closeClient()
		return service.Repositories{}, nil, err
	}
	log.Info("connected to mongodb", slog.String("database", cfg.MongoDatabase))
	return service.MongoRepositories(db), closeClient, nil
}

func loginLimiter(ctx context.Context, cfg config.Config, log *slog.Logger) (middleware.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		return middleware.NewMemoryLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Info("login rate limit backed by redis", slog.String("addr", cfg.RedisAddr))
	return middleware.NewRedisLimiter(rdb, "admin-login", cfg.LoginRateLimit, cfg.LoginRateWindow), func() { _ = rdb.Close() }, nil
}

func seedMemory(ctx context.Context, auth *service.AuthService, menus *service.MenuService, repos service.Repositories, log *slog.Logger) error {
	seeder := service.NewSeeder(auth, menus, repos.Menus, log)
	if _, err := seeder.SeedStaff(ctx, service.DefaultStaffAccounts("Admin123!", "Kitchen123!")); err != nil {
		return err
	}
	_, err := seeder.SeedMenu(ctx, service.SampleMenu())
	return err
}
