package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/application/usecase"
	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/shared/types"
	"github.com/diillson/billing-dashboard-go/pkg/version"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	reportUseCase   *usecase.ReportUseCase
	schemaUseCase   *usecase.SchemaUseCase
	overviewUseCase *usecase.OverviewUseCase
	version         string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "billing-dashboard",
		Short:         "Billing Insights Dashboard CLI",
		Long:          "Revenue, subscription, product and customer metrics over a standardized billing line item dataset.",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				pterm.EnableDebugMessages()
			}
		},
		RunE: app.runReport,
	}

	rootCmd.SetVersionTemplate(`{{printf "Billing Dashboard version: %s\n" .Version}}`)

	// Flags compartilhadas pelos subcomandos
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("source", "s", "", "Line item dataset: a CSV file path or s3://bucket/key")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile used to read s3:// sources")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region used to read s3:// sources")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug messages")

	rootCmd.Flags().String("start", "", "Start date of the report range (YYYY-MM-DD)")
	rootCmd.Flags().String("end", "", "End date of the report range (YYYY-MM-DD)")
	rootCmd.Flags().String("as-of", "", "Reference date for the churn rate (YYYY-MM-DD, default: today)")
	rootCmd.Flags().String("state-file", "", "File remembering the last selected date range (default: ~/.billing-dashboard/session.yaml)")
	rootCmd.Flags().Bool("reset-range", false, "Forget the remembered date range")
	rootCmd.Flags().StringP("category", "g", "", "Revenue breakdown dimension: product_type or product_name")
	rootCmd.Flags().StringP("category-value", "v", "", "Category whose monthly trend is displayed (default: first category)")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf (default: csv)")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Browse the standardized line item schema and its platform mappings",
		RunE:  app.runSchema,
	}
	schemaCmd.Flags().String("field", "", "Show a single schema field")
	schemaCmd.Flags().String("platform", "", "Show a single platform: Stripe, Zuora, Recurly, Shopify, Recharge")
	schemaCmd.Flags().Bool("sample", false, "Show the first rows of the dataset having a subscription period")

	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard overview page",
		RunE:  app.runOverview,
	}
	overviewCmd.Flags().StringP("file", "f", "", "Markdown file to render (default: README.md)")
	overviewCmd.Flags().String("html", "", "Write the overview as HTML using this base name instead of printing it")
	overviewCmd.Flags().StringP("dir", "d", "", "Directory to save the HTML file (default: current directory)")

	rootCmd.AddCommand(schemaCmd, overviewCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs overrides the command-line arguments, used by tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseDate parses an optional YYYY-MM-DD flag value.
func parseDate(flag, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(entity.DateLayout, value, time.UTC)
	if err != nil {
		return nil, &types.InvalidRangeError{Reason: fmt.Sprintf("--%s %q is not a YYYY-MM-DD date", flag, value)}
	}
	return &t, nil
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	source, _ := flags.GetString("source")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	debug, _ := flags.GetBool("debug")
	startStr, _ := flags.GetString("start")
	endStr, _ := flags.GetString("end")
	asOfStr, _ := flags.GetString("as-of")
	stateFile, _ := flags.GetString("state-file")
	resetRange, _ := flags.GetBool("reset-range")
	category, _ := flags.GetString("category")
	categoryValue, _ := flags.GetString("category-value")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	start, err := parseDate("start", startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end", endStr)
	if err != nil {
		return nil, err
	}

	asOf := time.Now().UTC()
	if t, err := parseDate("as-of", asOfStr); err != nil {
		return nil, err
	} else if t != nil {
		asOf = *t
	}

	// Converte para caminho absoluto
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile:    configFile,
		Source:        source,
		AWSProfile:    profile,
		AWSRegion:     region,
		StateFile:     stateFile,
		Start:         start,
		End:           end,
		ResetRange:    resetRange,
		Category:      category,
		CategoryValue: categoryValue,
		AsOf:          asOf,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		Debug:         debug,
	}, nil
}

// runReport é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runReport(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner()

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	if _, err := app.reportUseCase.RunReport(cmd.Context(), cliArgs); err != nil {
		return err
	}
	return nil
}

func (app *CLIApp) runSchema(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	source, _ := flags.GetString("source")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	field, _ := flags.GetString("field")
	platform, _ := flags.GetString("platform")
	sample, _ := flags.GetBool("sample")

	return app.schemaUseCase.Browse(cmd.Context(), &types.SchemaArgs{
		ConfigFile: configFile,
		Source:     source,
		AWSProfile: profile,
		AWSRegion:  region,
		Field:      field,
		Platform:   platform,
		Sample:     sample,
	})
}

func (app *CLIApp) runOverview(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	html, _ := cmd.Flags().GetString("html")
	dir, _ := cmd.Flags().GetString("dir")

	return app.overviewUseCase.Show(&types.OverviewArgs{File: file, HTML: html, Dir: dir})
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

// SetSchemaUseCase sets the schema use case for the CLI app.
func (app *CLIApp) SetSchemaUseCase(useCase *usecase.SchemaUseCase) {
	app.schemaUseCase = useCase
}

// SetOverviewUseCase sets the overview use case for the CLI app.
func (app *CLIApp) SetOverviewUseCase(useCase *usecase.OverviewUseCase) {
	app.overviewUseCase = useCase
}
