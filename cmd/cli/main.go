package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"asetfilter/adapters/excel"
	"asetfilter/domain/asset"
	"asetfilter/domain/parse"
	"asetfilter/internal"
	"asetfilter/internal/config"
	"asetfilter/internal/container"
	"asetfilter/internal/migration"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asetfilter-cli",
		Short: "AsetFilter CLI for parsing and importing land asset workbooks",
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newParseCmd() *cobra.Command {
	var sheet string
	var recordsOnly bool
	var limit int

	cmd := &cobra.Command{
		Use:   "parse [file.xlsx]",
		Short: "Parse a workbook offline and print the extracted records",
		Long: `Run the extraction pipeline over a workbook without touching a database.

Statistics and records are printed as JSON on stdout; diagnostics go to
stderr, so the output can be piped.

Example: asetfilter-cli parse KIB_A_2023.xlsx --sheet A --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], sheet, recordsOnly, limit)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "A", "Sheet to process (falls back to the first sheet)")
	cmd.Flags().BoolVar(&recordsOnly, "records-only", false, "Print only the records, no statistics")
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most this many records (0 = all)")

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file.xlsx]",
		Short: "Parse a workbook and replace the database contents with it",
		Long: `Import a workbook into the configured database.

The asset table is replaced atomically; on any parse or load failure the
existing data stays untouched. Connection settings come from the environment
(DATABASE_URL), like the server binaries.

Example: asetfilter-cli import KIB_A_2023.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args[0])
		},
	}

	return cmd
}

func runParse(path, sheet string, recordsOnly bool, limit int) error {
	wb, err := excel.OpenWorkbook(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	records, stats := parse.New(internal.DefaultLogger).Run(wb, sheet)

	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	if recordsOnly {
		return out.Encode(records)
	}
	return out.Encode(struct {
		Stats   parse.Stats    `json:"stats"`
		Records []asset.Record `json:"records"`
	}{stats, records})
}

func runImport(ctx context.Context, path string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := migration.NewRunner().Run(ctx, db); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create application container: %w", err)
	}
	defer appContainer.Shutdown(ctx)

	if err := appContainer.InitWithDatabase(db); err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}

	result, err := appContainer.Ingest.IngestPath(ctx, path)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %s: %d rows read, %d loaded, %d skipped\n",
		path, result.Stats.TotalRowsRead, result.Inserted, result.Stats.SkippedRows)
	for _, e := range result.Stats.Errors {
		fmt.Fprintf(os.Stderr, "warning: %s\n", e)
	}

	return nil
}
