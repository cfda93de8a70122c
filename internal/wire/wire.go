// Package wire provides dependency injection for the brain application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/brain/internal/adapters/cli"
	"github.com/example/brain/internal/adapters/filesystem"
	"github.com/example/brain/internal/adapters/linkedin"
	"github.com/example/brain/internal/adapters/sqlite"
	"github.com/example/brain/internal/app"
	"github.com/example/brain/internal/config"
	"github.com/example/brain/internal/db"
	"github.com/example/brain/internal/ports/primary"
)

var (
	networkService primary.NetworkService
	ingestService  primary.IngestService
	reportService  primary.ReportService
	once           sync.Once
)

// NetworkService returns the singleton NetworkService instance.
func NetworkService() primary.NetworkService {
	once.Do(initServices)
	return networkService
}

// IngestService returns the singleton IngestService instance.
func IngestService() primary.IngestService {
	once.Do(initServices)
	return ingestService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	dataDir, err := config.DataDir()
	if err != nil {
		log.Fatalf("failed to resolve data directory: %v", err)
	}
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	connRepo := sqlite.NewConnectionRepository(database)
	interactionRepo := sqlite.NewInteractionRepository(database)
	importLogRepo := sqlite.NewImportLogRepository(database)

	goalsStore, err := filesystem.NewGoalsStore(cfg.GoalsPath)
	if err != nil {
		log.Fatalf("failed to initialize goals store: %v", err)
	}
	exporter := filesystem.NewSnapshotExporter()
	reader := linkedin.NewReader()

	// Services (primary ports implementation)
	networkService = app.NewNetworkService(connRepo, interactionRepo, importLogRepo, exporter)
	ingestService = app.NewIngestService(reader, connRepo, importLogRepo)

	reports := app.NewReportService(connRepo, interactionRepo, goalsStore)
	reports.TargetDomains = cfg.TargetDomains
	reports.StaleThresholdDays = cfg.StaleThresholdDays
	reportService = reports
}

// NetworkAdapter returns a new NetworkAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func NetworkAdapter() *cliadapter.NetworkAdapter {
	return NetworkAdapterWithOutput(os.Stdout)
}

// NetworkAdapterWithOutput returns a new NetworkAdapter writing to the given output.
func NetworkAdapterWithOutput(out io.Writer) *cliadapter.NetworkAdapter {
	once.Do(initServices)
	return cliadapter.NewNetworkAdapter(networkService, out)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(reportService, out)
}

// ImportAdapter returns a new ImportAdapter writing to stdout.
func ImportAdapter() *cliadapter.ImportAdapter {
	return ImportAdapterWithOutput(os.Stdout)
}

// ImportAdapterWithOutput returns a new ImportAdapter writing to the given output.
func ImportAdapterWithOutput(out io.Writer) *cliadapter.ImportAdapter {
	once.Do(initServices)
	return cliadapter.NewImportAdapter(ingestService, out)
}
