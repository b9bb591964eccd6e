package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tallyhq/tally/internal/api"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/export"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/report"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export listings and reports to a file",
		Long: `Fetch data from the backend and export it.

Supported formats: json, csv, excel, pdf, word.`,
	}

	cmd.PersistentFlags().StringP("format", "f", "csv", "Output format (json, csv, excel, pdf, word)")
	cmd.PersistentFlags().StringP("out", "o", "", "Output directory ('-' writes to stdout)")

	_ = viper.BindPFlag("export.format", cmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("export.out", cmd.PersistentFlags().Lookup("out"))

	cmd.AddCommand(exportProductsCmd())
	cmd.AddCommand(exportCategoriesCmd())
	cmd.AddCommand(exportExpenseCategoriesCmd())
	cmd.AddCommand(exportSchemasCmd())
	cmd.AddCommand(exportSalesCmd())

	return cmd
}

// exportEnv bundles what every export subcommand needs.
type exportEnv struct {
	client     *api.Client
	dispatcher *export.Dispatcher
	format     export.Format
	cfg        config.Config
}

func newExportEnv() (*exportEnv, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := export.ParseFormat(viper.GetString("export.format"))
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(api.Options{
		BaseURL: cfg.APIBaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry(),
	}, slog.Default())
	if err != nil {
		return nil, err
	}

	var sink export.FileSink
	out := viper.GetString("export.out")
	switch out {
	case "-":
		sink = export.WriterSink{W: os.Stdout}
	case "":
		sink = export.DirSink{Dir: cfg.ExportDir}
	default:
		sink = export.DirSink{Dir: config.ExpandPath(out)}
	}

	return &exportEnv{
		cfg:        cfg,
		client:     client,
		dispatcher: export.NewDispatcher(sink, cli.Notifier{}, slog.Default()),
		format:     format,
	}, nil
}

func exportProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Export the product inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newExportEnv()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			products, err := fetchAllProducts(ctx, env.client, env.cfg.PageSize)
			if err != nil {
				return common.NewUserError("could not fetch products", err)
			}
			categories, err := env.client.ListCategories(ctx)
			if err != nil {
				return common.NewUserError("could not fetch categories", err)
			}

			return env.dispatcher.Export(ctx, export.Request{
				Format:   env.format,
				Payload:  report.FromProducts(products, categories),
				Filename: "products",
			})
		},
	}
}

func exportCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Export the category list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newExportEnv()
			if err != nil {
				return err
			}

			categories, err := env.client.ListCategories(cmd.Context())
			if err != nil {
				return common.NewUserError("could not fetch categories", err)
			}

			return env.dispatcher.Export(cmd.Context(), export.Request{
				Format:   env.format,
				Payload:  report.FromCategories(categories),
				Filename: "categories",
			})
		},
	}
}

func exportExpenseCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expense-categories",
		Short: "Export the expense category list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newExportEnv()
			if err != nil {
				return err
			}

			categories, err := env.client.ListExpenseCategories(cmd.Context())
			if err != nil {
				return common.NewUserError("could not fetch expense categories", err)
			}

			return env.dispatcher.Export(cmd.Context(), export.Request{
				Format:   env.format,
				Payload:  report.FromExpenseCategories(categories),
				Filename: "expense-categories",
			})
		},
	}
}

func exportSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "Export the dynamic product field schemas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newExportEnv()
			if err != nil {
				return err
			}

			schemas, err := env.client.ListSchemas(cmd.Context())
			if err != nil {
				return common.NewUserError("could not fetch schemas", err)
			}

			return env.dispatcher.Export(cmd.Context(), export.Request{
				Format:   env.format,
				Payload:  report.FromSchemas(schemas),
				Filename: "schemas",
			})
		},
	}
}

func exportSalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Export the sales-summary report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newExportEnv()
			if err != nil {
				return err
			}

			from, to, err := salesPeriod()
			if err != nil {
				return err
			}

			summary, err := env.client.SalesSummary(cmd.Context(), from, to)
			if err != nil {
				return common.NewUserError("could not run the sales report", err)
			}

			stem := fmt.Sprintf("sales_%s_%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
			payload := report.FromSalesSummary(summary)
			if viper.GetBool("export.sales_detail") {
				payload = report.FromSalesLines(summary)
				stem += "_by-category"
			}

			return env.dispatcher.Export(cmd.Context(), export.Request{
				Format:   env.format,
				Payload:  payload,
				Filename: stem,
			})
		},
	}

	cmd.Flags().String("from", "", "Period start (YYYY-MM-DD, default: first of current month)")
	cmd.Flags().String("to", "", "Period end (YYYY-MM-DD, default: today)")
	cmd.Flags().Bool("by-category", false, "Export the per-category breakdown instead of the totals")

	_ = viper.BindPFlag("export.sales_from", cmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("export.sales_to", cmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("export.sales_detail", cmd.Flags().Lookup("by-category"))

	return cmd
}

func salesPeriod() (from, to time.Time, err error) {
	now := time.Now()
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = now

	if s := viper.GetString("export.sales_from"); s != "" {
		from, err = time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, fmt.Errorf("invalid --from date %q: %w", s, err)
		}
	}
	if s := viper.GetString("export.sales_to"); s != "" {
		to, err = time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, fmt.Errorf("invalid --to date %q: %w", s, err)
		}
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("period end %s is before start %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	return from, to, nil
}

// fetchAllProducts pages through the inventory with a progress bar.
func fetchAllProducts(ctx context.Context, client *api.Client, pageSize int) ([]model.Product, error) {
	first, err := client.ListProducts(ctx, 1, pageSize)
	if err != nil {
		return nil, err
	}

	products := first.Items
	if len(products) >= first.Total {
		return products, nil
	}

	bar := progressbar.Default(int64(first.Total), "fetching products")
	_ = bar.Add(len(first.Items))

	for page := 2; len(products) < first.Total; page++ {
		next, err := client.ListProducts(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		if len(next.Items) == 0 {
			break
		}
		products = append(products, next.Items...)
		_ = bar.Add(len(next.Items))
	}

	_ = bar.Finish()
	return products, nil
}
