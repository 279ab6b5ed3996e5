package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"myjobs/internal/addressparse"
	"myjobs/internal/app"
	"myjobs/internal/auth"
	"myjobs/internal/seed"
	"myjobs/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newScoreAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score-address TEXT...",
		Short: "Score how much a string looks like a US street address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := addressparse.Parse(strings.Join(args, " "))
			addr := res.Address

			table := newTable(cmd.OutOrStdout(), "Field", "Value")
			table.Append([]string{"score", fmt.Sprintf("%.2f", res.Score)})
			table.Append([]string{"is_address", fmt.Sprintf("%t", res.Score >= addressparse.Threshold)})
			for _, row := range [][2]string{
				{"number", addr.Number},
				{"street", addr.Street},
				{"unit", addr.Unit},
				{"po_box", addr.POBox},
				{"city", addr.City},
				{"state", addr.State},
				{"zip", addr.Zip},
			} {
				if row[1] != "" {
					table.Append([]string{row[0], row[1]})
				}
			}
			table.Render()
			return nil
		},
	}
}

func newRunReportCmd(opts *rootOptions) *cobra.Command {
	var (
		companyID  string
		name       string
		reportType string
		dataType   string
		filters    string
		values     []string
		orderBy    string
		format     string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "run-report",
		Short: "Define and run a report for a company, writing the results to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			company, err := uuid.Parse(companyID)
			if err != nil {
				return fmt.Errorf("--company must be a UUID: %w", err)
			}
			if filters != "" && !json.Valid([]byte(filters)) {
				return fmt.Errorf("--filters must be JSON")
			}

			a, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			req := &service.ReportRequest{
				Name:       name,
				ReportType: reportType,
				DataType:   dataType,
				Values:     values,
				OrderBy:    orderBy,
			}
			if filters != "" {
				req.Filters = json.RawMessage(filters)
			}
			report, err := a.Services.Report.CreateReport(cmd.Context(), auth.Caller{CompanyID: company, IsStaff: true}, req)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if _, err := a.Services.Report.Download(company, report.ID, format, values, orderBy, w); err != nil {
				return err
			}
			if w != cmd.OutOrStdout() {
				fmt.Fprintf(cmd.OutOrStdout(), "report %s: %d rows written to %s\n", report.ID, len(report.Results), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "Company ID")
	cmd.Flags().StringVar(&name, "name", "Command line report", "Report name")
	cmd.Flags().StringVar(&reportType, "type", "prm", "Report type")
	cmd.Flags().StringVar(&dataType, "data-type", "contacts", "Data type")
	cmd.Flags().StringVar(&filters, "filters", "", "Filters as JSON")
	cmd.Flags().StringSliceVar(&values, "values", nil, "Columns, in order")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Sort field, prefixed with - for descending")
	cmd.Flags().StringVar(&format, "format", "csv", "csv, xlsx or json")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "Output file, - for stdout")
	return cmd
}

func newScheduledCmds(opts *rootOptions) []*cobra.Command {
	run := func(use, short string, fn func(cmd *cobra.Command, a *app.Services, now time.Time) (int, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := opts.openApp(cmd)
				if err != nil {
					return err
				}
				defer a.Close(context.Background())

				n, err := fn(cmd, a.Services, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d processed\n", use, n)
				return nil
			},
		}
	}

	return []*cobra.Command{
		run("send-digests", "Send every saved search digest that is due", func(cmd *cobra.Command, s *app.Services, now time.Time) (int, error) {
			return s.SavedSearch.SendDigests(cmd.Context(), now)
		}),
		run("expire-jobs", "Expire posted jobs past their expiration date", func(cmd *cobra.Command, s *app.Services, now time.Time) (int, error) {
			return s.Postajob.ExpireJobs(cmd.Context(), now)
		}),
		run("purchase-notices", "Email companies whose purchases are about to expire", func(cmd *cobra.Command, s *app.Services, now time.Time) (int, error) {
			return s.Email.SendPurchaseExpiryNotices(cmd.Context(), now)
		}),
	}
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, companies, sites and products from YAML files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := seed.ReadDir(dir)
			if err != nil {
				return err
			}
			reg, _, err := opts.openRegistry()
			if err != nil {
				return err
			}
			defer reg.Close()

			summary, err := seed.Load(reg.Primary, data)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout(), "Kind", "Created")
			table.Append([]string{"view sources", fmt.Sprint(summary.ViewSources)})
			table.Append([]string{"users", fmt.Sprint(summary.Users)})
			table.Append([]string{"companies", fmt.Sprint(summary.Companies)})
			table.Append([]string{"business units", fmt.Sprint(summary.Units)})
			table.Append([]string{"sites", fmt.Sprint(summary.Sites)})
			table.Append([]string{"products", fmt.Sprint(summary.Products)})
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "scripts/data", "Directory of YAML files")
	return cmd
}
