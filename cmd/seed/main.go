package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/config"
	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/logger"
	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

func main() {
	staff := flag.Bool("staff", true, "create the default admin and kitchen accounts")
	menu := flag.Bool("menu", true, "load the sample menu into an empty catalog")
	adminPassword := flag.String("admin-password", "Admin123!", "password for the admin account")
	kitchenPassword := flag.String("kitchen-password", "Kitchen123!", "password for the kitchen account")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New("table-ordering-seed", cfg.LogLevel)

	if cfg.StorageDriver != config.DriverMongo {
		log.Error("seeding needs STORAGE_DRIVER=mongo; the memory driver seeds itself on start")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, cfg, log, *staff, *menu, *adminPassword, *kitchenPassword); err != nil {
		log.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("seeding completed")
}

func seed(ctx context.Context, cfg config.Config, log *slog.Logger, staff, menu bool, adminPassword, kitchenPassword string) error {
	client, err := config.DBinstance(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	db := config.OpenDatabase(client, cfg.MongoDatabase)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	repos := service.MongoRepositories(db)

	auth := service.NewAuthService(repos.Users, helper.NewTokenHelper(cfg.JWTSecret, cfg.TokenTTL), log)
	seeder := service.NewSeeder(auth, service.NewMenuService(repos.Menus), repos.Menus, log)

	if staff {
		if _, err := seeder.SeedStaff(ctx, service.DefaultStaffAccounts(adminPassword, kitchenPassword)); err != nil {
			return err
		}
	}
	if menu {
		if _, err := seeder.SeedMenu(ctx, service.SampleMenu()); err != nil {
			return err
		}
	}
	return nil
}
