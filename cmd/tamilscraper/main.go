package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/TamilScraper/internal/config"
	"github.com/GriffinCanCode/TamilScraper/internal/document"
	"github.com/GriffinCanCode/TamilScraper/internal/fetch"
	"github.com/GriffinCanCode/TamilScraper/internal/logging"
	"github.com/GriffinCanCode/TamilScraper/internal/monitoring"
	"github.com/GriffinCanCode/TamilScraper/internal/shared/id"
	"github.com/GriffinCanCode/TamilScraper/internal/tables"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Logging.Settings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger.Logger, os.Stdout, os.Stderr); err != nil {
		logger.Error("run failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

// run opens the configured page, reports its Tamil headings and prints
// every table that contains Tamil text
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) error {
	runID := id.NewRunID()
	logger = logger.With(zap.Stringer("run", runID))

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)
	client := fetch.NewClient(cfg.Fetch.Client(), logger).WithMetrics(metrics)

	doc, err := document.Open(ctx, client, cfg.Target.URL,
		document.WithSanitize(cfg.Scraper.Sanitize),
		document.WithLogger(logger),
		document.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Target.URL, err)
	}

	headings, err := doc.ByTag("h1", document.TamilOnly)
	if err != nil {
		return err
	}
	logger.Info("page opened",
		zap.String("url", doc.URL()),
		zap.Stringer("doc", doc.ID()),
		zap.Strings("tamil_headings", headings.Flat()))

	selector := tables.NewSelector(tables.NewLoader(client), logger, metrics)
	found, err := selector.SelectTamilTables(ctx, cfg.Target.URL)
	if err != nil {
		return fmt.Errorf("select tables: %w", err)
	}
	logger.Info("tables selected", zap.Int("count", len(found)))

	if err := render(stdout, found, cfg.Output.Format); err != nil {
		return err
	}

	if cfg.Output.MetricsDump {
		return monitoring.WriteText(stderr, reg)
	}
	return nil
}

// render writes the selected tables as markdown or JSON
func render(w io.Writer, found []tables.Table, format string) error {
	if format == config.FormatJSON {
		data, err := sonic.ConfigStd.MarshalIndent(found, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tables: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for i, t := range found {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, t.Markdown()); err != nil {
			return err
		}
	}
	return nil
}
