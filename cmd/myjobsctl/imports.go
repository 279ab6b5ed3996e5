package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newImportJobsCmd(opts *rootOptions) *cobra.Command {
	var buid int

	cmd := &cobra.Command{
		Use:   "import-jobs FILE",
		Short: "Import a business unit's job feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if buid < 1 {
				return fmt.Errorf("--buid is required")
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open feed: %w", err)
			}
			defer f.Close()

			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			summary, err := a.Services.Import.ImportFeed(cmd.Context(), buid, f)
			if err != nil {
				return err
			}

			rec := summary.Record
			table := newTable(cmd.OutOrStdout(), "BUID", "Status", "Added", "Updated", "Expired", "Errors")
			table.Append([]string{
				strconv.Itoa(rec.BUID),
				string(rec.Status),
				strconv.Itoa(rec.Added),
				strconv.Itoa(rec.Updated),
				strconv.Itoa(rec.Expired),
				strconv.Itoa(rec.Errors),
			})
			table.Render()

			if len(summary.EntryErrors) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
				errs := newTable(cmd.OutOrStdout(), "Entry", "GUID", "Reason")
				for _, e := range summary.EntryErrors {
					errs.Append([]string{strconv.Itoa(e.Index), e.GUID, e.Reason})
				}
				errs.Render()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&buid, "buid", 0, "Business unit the feed belongs to")
	return cmd
}

func newListImportsCmd(opts *rootOptions) *cobra.Command {
	var (
		buid  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list-imports",
		Short: "Show the latest imports of a business unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if buid < 1 {
				return fmt.Errorf("--buid is required")
			}
			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			records, err := a.Services.Import.ListImports(buid, limit)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout(), "Started", "Status", "Added", "Updated", "Expired", "Errors", "Message")
			for _, rec := range records {
				table.Append([]string{
					rec.StartedAt.Format("2006-01-02 15:04:05"),
					string(rec.Status),
					strconv.Itoa(rec.Added),
					strconv.Itoa(rec.Updated),
					strconv.Itoa(rec.Expired),
					strconv.Itoa(rec.Errors),
					rec.Message,
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&buid, "buid", 0, "Business unit")
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of imports to show")
	return cmd
}

func newImportSourceCodesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import-source-codes FILE",
		Short: "Create or update redirect manipulations from a source code CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			results, err := a.Services.Automation.ImportSourceCodes(f)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout(), "Line", "BUID", "Action", "Status", "Message")
			for _, r := range results {
				table.Append([]string{strconv.Itoa(r.Line), strconv.Itoa(r.BUID), r.Action, r.Status, r.Message})
			}
			table.Render()
			return nil
		},
	}
}
