package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/costline/internal/cli"
	"github.com/alexanderramin/costline/internal/config"
	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/repository"
	"github.com/alexanderramin/costline/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	lineItemRepo := repository.NewSQLiteLineItemRepo(database)
	versionRepo := repository.NewSQLiteVersionRepo(database)
	poMappingRepo := repository.NewSQLitePOMappingRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	retry := db.RetryPolicy{
		MaxAttempts: cfg.Storage.RetryAttempts,
		Backoff:     db.FixedBackoff(time.Duration(cfg.Storage.RetryBackoffMs) * time.Millisecond),
	}

	// Use-case telemetry is opt-in via COSTLINE_LOG.
	var observers []service.UseCaseObserver
	if os.Getenv("COSTLINE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	entryRepo := repository.NewSQLiteForecastEntryRepo(database)
	snapshotSvc := service.NewSnapshotService(projectRepo, lineItemRepo, versionRepo, entryRepo)

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo),
		Baseline:  service.NewBaselineService(projectRepo, lineItemRepo, uow, observers...),
		Versions:  service.NewVersionService(projectRepo, versionRepo, uow, retry, observers...),
		Snapshots: snapshotSvc,
		Diffs:     service.NewDiffService(snapshotSvc),
		Metrics:   service.NewMetricsService(projectRepo, poMappingRepo, snapshotSvc, observers...),

		DefaultCreatedBy: cfg.General.DefaultCreatedBy,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
