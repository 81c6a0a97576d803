package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/stockroom/core/internal/adapters/repository"
	"github.com/stockroom/core/internal/application/services"
	"github.com/stockroom/core/internal/infrastructure/config"
	"github.com/stockroom/core/internal/infrastructure/database"
	"github.com/stockroom/core/internal/infrastructure/logger"
	"github.com/stockroom/core/internal/infrastructure/server"
	"github.com/stockroom/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the StockRoom API server",
		Long:  "Start the StockRoom API server, loading the inventory from the configured backend and saving it again on shutdown",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewDemoCommand creates the demo command
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted sequence of inventory operations",
		Run: func(cmd *cobra.Command, args []string) {
			runDemo()
		},
	}
}

// NewReportCommand creates the report command
func NewReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the low-stock report for the persisted inventory",
		Run: func(cmd *cobra.Command, args []string) {
			threshold, _ := cmd.Flags().GetInt("threshold")
			runReport(threshold)
		},
	}

	reportCmd.Flags().Int("threshold", ports.DefaultLowStockThreshold, "Low-stock threshold")
	return reportCmd
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage Postgres migrations for the postgres storage backend (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("up")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("down")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print StockRoom version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("StockRoom v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	repo, cleanup, err := buildRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize storage backend", "error", err)
	}
	defer cleanup()

	inventoryService := services.NewInventoryService(repo, cfg.Storage.AuditCapacity, appLogger)
	authService := services.NewAuthService(cfg.Auth, appLogger)

	ctx := context.Background()
	if cfg.Storage.LoadOnStart {
		if err := inventoryService.Load(ctx); err != nil {
			appLogger.Fatalw("Failed to load inventory", "error", err)
		}
	}

	srv, err := server.New(cfg, inventoryService, authService, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize server", "error", err)
	}

	appLogger.Infow("Starting StockRoom API server",
		"port", cfg.Server.Port,
		"backend", cfg.Storage.Backend,
		"environment", cfg.App.Environment,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)); err != nil {
			appLogger.Infow("Server stopped", "reason", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("Graceful shutdown failed", "error", err)
	}
}

// runDemo reproduces the canonical driver sequence against the configured
// backend: stock up a few items, remove some, report, save, reload.
func runDemo() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	repo, cleanup, err := buildRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize storage backend", "error", err)
	}
	defer cleanup()

	svc := services.NewInventoryService(repo, cfg.Storage.AuditCapacity, appLogger)
	ctx := context.Background()

	adds := []ports.AddItemRequest{
		{Name: "apple", Quantity: 10},
		{Name: "banana", Quantity: 2},
		{Name: "pear", Quantity: 0},
	}
	for _, req := range adds {
		if _, err := svc.AddItem(ctx, req); err != nil {
			appLogger.Errorw("Demo add failed", "item", req.Name, "error", err)
		}
	}

	removes := []ports.RemoveItemRequest{
		{Name: "apple", Quantity: 3},
		{Name: "orange", Quantity: 1},
	}
	for _, req := range removes {
		// A missing item is benign here; the service already logs it.
		_, _ = svc.RemoveItem(ctx, req)
	}

	appLogger.Infow("Apple stock", "quantity", svc.GetQuantity(ctx, "apple"))
	appLogger.Infow("Low items", "items", svc.LowStock(ctx, ports.DefaultLowStockThreshold))

	if err := svc.Save(ctx); err != nil {
		appLogger.Errorw("Demo save failed", "error", err)
	}
	if err := svc.Load(ctx); err != nil {
		appLogger.Errorw("Demo load failed", "error", err)
	}

	svc.Report(ctx)
}

func runReport(threshold int) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	repo, cleanup, err := buildRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatalw("Failed to initialize storage backend", "error", err)
	}
	defer cleanup()

	svc := services.NewInventoryService(repo, cfg.Storage.AuditCapacity, appLogger)
	ctx := context.Background()

	if err := svc.Load(ctx); err != nil {
		appLogger.Fatalw("Failed to load inventory", "error", err)
	}

	for _, item := range svc.Report(ctx) {
		fmt.Printf("%s -> %d\n", item.Name, item.Quantity)
	}

	low := svc.LowStock(ctx, threshold)
	fmt.Printf("Low items (threshold %d): %v\n", threshold, low)
}

// buildRepository selects the storage backend from configuration. The
// returned cleanup closes any underlying connection.
func buildRepository(cfg *config.Config, appLogger *logger.Logger) (ports.InventoryRepository, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := database.New(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return repository.NewPostgresRepository(db.DB), func() { db.Close() }, nil
	default:
		return repository.NewFileRepository(cfg.Storage.File, appLogger), func() {}, nil
	}
}

func runMigration(direction string) {
	m := newMigrator()

	var err error
	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Migration failed: %v", err)
	}

	if err == migrate.ErrNoChange {
		fmt.Println("No migrations to run")
	} else {
		fmt.Printf("Migration %s completed successfully\n", direction)
	}
}

func showMigrationVersion() {
	m := newMigrator()

	version, dirty, err := m.Version()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", version)
	fmt.Printf("Dirty: %t\n", dirty)
}

func newMigrator() *migrate.Migrate {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	return m
}
