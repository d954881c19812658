package main

import (
	"fmt"
	"os"

	"github.com/diillson/billing-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/billing-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/billing-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/billing-dashboard-go/internal/adapter/driven/schema"
	"github.com/diillson/billing-dashboard-go/internal/adapter/driven/session"
	"github.com/diillson/billing-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/billing-dashboard-go/internal/application/usecase"
	"github.com/diillson/billing-dashboard-go/pkg/console"
	"github.com/diillson/billing-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	sessionRepo := session.NewSessionRepository()
	schemaRepo := schema.NewSchemaRepository()
	consoleImpl := console.NewConsole()

	// Inicializa os casos de uso
	app.SetReportUseCase(usecase.NewReportUseCase(
		dataset.NewDatasetRepository,
		sessionRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	))
	app.SetSchemaUseCase(usecase.NewSchemaUseCase(
		schemaRepo,
		dataset.NewDatasetRepository,
		configRepo,
		consoleImpl,
	))
	app.SetOverviewUseCase(usecase.NewOverviewUseCase(exportRepo, consoleImpl))

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
