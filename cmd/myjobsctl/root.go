package main

import (
	"io"

	"myjobs/internal/app"
	"myjobs/internal/config"
	"myjobs/internal/database"
	"myjobs/internal/logger"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	sqlitePath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "myjobsctl",
		Short:         "MyJobs operations tool",
		Long:          "Imports feeds, runs scheduled work on demand, scores addresses and seeds databases.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			_ = godotenv.Load()
			logger.Setup(opts.logLevel, logger.FileOptions{})
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.sqlitePath, "sqlite", "", "Use this SQLite file instead of the configured Postgres databases")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(newImportJobsCmd(opts))
	rootCmd.AddCommand(newListImportsCmd(opts))
	rootCmd.AddCommand(newImportSourceCodesCmd(opts))
	rootCmd.AddCommand(newScoreAddressCmd())
	rootCmd.AddCommand(newRunReportCmd(opts))
	rootCmd.AddCommand(newScheduledCmds(opts)...)
	rootCmd.AddCommand(newSeedCmd(opts))

	return rootCmd
}

// openRegistry opens the SQLite file when --sqlite is set, else the configured databases
func (o *rootOptions) openRegistry() (*database.Registry, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.sqlitePath != "" {
		db, err := database.OpenSQLite(o.sqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return database.NewSingleRegistry(db), cfg, nil
	}
	reg, err := app.OpenDatabases(cfg)
	if err != nil {
		return nil, nil, err
	}
	return reg, cfg, nil
}

// openApp builds the full application. The caller must Close it.
func (o *rootOptions) openApp(cmd *cobra.Command) (*app.App, error) {
	reg, cfg, err := o.openRegistry()
	if err != nil {
		return nil, err
	}
	a, err := app.New(cmd.Context(), cfg, reg)
	if err != nil {
		reg.Close()
		return nil, err
	}
	return a, nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)
	return table
}
