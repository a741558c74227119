package main

import (
	"context"
	"flag"
	"log" // Use standard log only for initial fatal errors before logger is set up
	"os"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/config"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/adapters/finnhub"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/adapters/logger"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/adapters/render"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/adapters/sqlite"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/app"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/fetch"
)

func main() {
	symbolFlag := flag.String("symbol", "", "ticker symbol to fetch (overrides SYMBOL)")
	clearFlag := flag.Bool("clear-credential", false, "remove the saved API credential and exit")
	flag.Parse()

	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Credential Store (Database Adapter)
	store, err := sqlite.NewCredentialStore(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize credential store")
		log.Fatalf("FATAL: Failed to initialize credential store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error(ctx, err, "Error closing credential store")
		}
	}()

	// 4. Initialize Market Data Client (Finnhub Adapter)
	client, err := finnhub.New(finnhub.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.HTTPTimeout,
		RSIPeriod: cfg.RSIPeriod,
		Logger:    appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize Finnhub client")
		log.Fatalf("FATAL: Failed to initialize Finnhub client: %v", err)
	}

	// 5. Initialize Fetch Orchestrator
	orchestrator, err := fetch.NewOrchestrator(client, appLogger)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize fetch orchestrator")
		log.Fatalf("FATAL: Failed to initialize fetch orchestrator: %v", err)
	}

	// 6. Initialize Application Service with the console view
	console := render.NewConsole(os.Stdout, cfg.NewsLimit)
	dashboard, err := app.NewDashboardService(cfg, appLogger, store, orchestrator, console, console)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize dashboard service")
		log.Fatalf("FATAL: Failed to initialize dashboard service: %v", err)
	}

	if *clearFlag {
		if err := dashboard.Lock(ctx); err != nil {
			appLogger.Error(ctx, err, "FATAL: Failed to clear credential")
			log.Fatalf("FATAL: Failed to clear credential: %v", err)
		}
		return
	}

	// 7. Unlock: a key from the environment replaces the saved one, otherwise
	// fall back to whatever a previous run stored.
	if cfg.APIKey != "" {
		if err := dashboard.Unlock(ctx, cfg.APIKey); err != nil {
			appLogger.Error(ctx, err, "FATAL: Failed to save API credential")
			log.Fatalf("FATAL: Failed to save API credential: %v", err)
		}
	} else {
		found, err := dashboard.Restore(ctx)
		if err != nil {
			appLogger.Error(ctx, err, "FATAL: Failed to load API credential")
			log.Fatalf("FATAL: Failed to load API credential: %v", err)
		}
		if !found {
			log.Fatal("FATAL: No API credential. Set FINNHUB_API_KEY to unlock the dashboard.")
		}
	}

	// 8. Run one fetch cycle
	symbol := cfg.Symbol
	if *symbolFlag != "" {
		symbol = *symbolFlag
	}
	if err := dashboard.Refresh(ctx, symbol); err != nil {
		appLogger.Error(ctx, err, "Fetch cycle failed", map[string]interface{}{"symbol": symbol})
		os.Exit(1)
	}
}
