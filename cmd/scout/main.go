package main

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"signal-scout/internal/config"
	"signal-scout/internal/domain/lexicon"
	"signal-scout/internal/domain/match"
	"signal-scout/internal/infra/companylist"
	"signal-scout/internal/infra/discovery"
	"signal-scout/internal/infra/extractor"
	"signal-scout/internal/infra/fetcher"
	"signal-scout/internal/infra/output"
	"signal-scout/internal/observability/logging"
	"signal-scout/internal/observability/metrics"
	"signal-scout/internal/observability/runid"
	"signal-scout/internal/usecase/pipeline"
)

func main() {
	ctx := runid.WithRunID(context.Background(), runid.New())
	logger := logging.WithRunID(ctx, logging.NewLogger())
	slog.SetDefault(logger)

	// Interrupt cuts the run short; records collected so far are still written.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("feeds", len(cfg.Feeds)),
		slog.Int("keyword_categories", len(cfg.KeywordCategories)),
		slog.Bool("newsapi_enabled", cfg.NewsAPIEnabled()),
		slog.Duration("recency_window", cfg.RecencyWindow),
		slog.Int("workers", cfg.Workers))

	// The company list is the one hard precondition. Feeds, pages, and search
	// batches all degrade per item; a run without company names would write
	// records that silently lack their company matches.
	companies, err := companylist.Load(cfg.CompanyFile)
	if err != nil {
		logger.Error("failed to load company list",
			slog.String("path", cfg.CompanyFile),
			slog.Any("error", err))
		os.Exit(1)
	}

	matcher := match.NewMatcher(lexicon.New(cfg.KeywordCategories), companies)
	logger.Info("matcher initialized",
		slog.Int("keywords", len(matcher.Keywords())),
		slog.Int("companies", len(companies)))

	service, err := setupPipeline(logger, cfg, matcher)
	if err != nil {
		logger.Error("failed to set up pipeline", slog.Any("error", err))
		os.Exit(1)
	}

	stopMetrics := startMetricsServer(ctx, logger)
	defer stopMetrics()

	records, stats := service.Run(ctx)
	metrics.UpdateOutputRecords(len(records))

	// The artifact is written on every run, interrupted or empty included.
	if err := output.Write(cfg.OutputPath, records); err != nil {
		logger.Error("failed to write output artifact",
			slog.String("path", cfg.OutputPath),
			slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("run finished",
		slog.Int64("urls_discovered", stats.URLsDiscovered),
		slog.Int64("matched", stats.Matched),
		slog.String("output", cfg.OutputPath),
		slog.Duration("duration", stats.Duration))
}

// setupPipeline wires the discovery, fetch, extraction, and matching stages
// into a pipeline service.
func setupPipeline(logger *slog.Logger, cfg *config.Config, matcher *match.Matcher) (*pipeline.Service, error) {
	fetchConfig := fetcher.DefaultConfig()
	fetchConfig.Timeout = cfg.FetchTimeout
	fetchConfig.MaxBodySize = cfg.MaxBodySize
	if cfg.UserAgent != "" {
		fetchConfig.UserAgent = cfg.UserAgent
	}
	if err := fetchConfig.Validate(); err != nil {
		return nil, err
	}

	poller := discovery.NewFeedPoller(createFeedHTTPClient(), cfg.RecencyWindow)

	var searcher pipeline.NewsSearcher
	if cfg.NewsAPIEnabled() {
		searcher = discovery.NewNewsAPIClient(cfg.NewsAPIKey, cfg.RecencyWindow)
		logger.Info("NewsAPI discovery enabled")
	} else {
		logger.Info("NewsAPI discovery disabled, no API key configured")
	}

	feeds := make([]pipeline.Feed, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		feeds = append(feeds, pipeline.Feed{Name: f.Name, URL: f.URL})
	}

	return pipeline.NewService(
		poller,
		searcher,
		fetcher.NewPageFetcher(fetchConfig),
		extractor.New(),
		matcher,
		pipeline.Config{
			Feeds:   feeds,
			MaxURLs: cfg.MaxURLs,
			Workers: cfg.Workers,
		},
	), nil
}

// createFeedHTTPClient creates the HTTP client feed polling shares across
// feeds, with connection pooling and TLS 1.2+ enforced.
func createFeedHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12, // Enforce TLS 1.2+
			},
		},
	}
}
