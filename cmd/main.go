package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mkowalczyk/kantor/internal/facades"
	"github.com/mkowalczyk/kantor/internal/handlers"
	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/middlewares"
	"github.com/mkowalczyk/kantor/internal/models"
	"github.com/mkowalczyk/kantor/internal/repositories"
	"github.com/mkowalczyk/kantor/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title kantor API
// @version 1.0.0
// @description Demo currency wallet with simulated exchange rates. All state is in memory and resets on restart.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		homeCurrency, rateMode, tickMs, feedURL, feedPollSecond, feedTimeoutSecond,
		redisAddr, redisDB, redisPassword, rateCacheTTLSecond,
		kafkaAddr, kafkaTopic,
		confirmTTLSecond, txLogCapacity,
		initialBalances, seedHistory,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		homeCurrency, rateMode, tickMs, feedURL, feedPollSecond, feedTimeoutSecond,
		redisAddr, redisDB, redisPassword, rateCacheTTLSecond,
		kafkaAddr, kafkaTopic,
		confirmTTLSecond, txLogCapacity,
		initialBalances, seedHistory,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, rate-simulation, Redis, Kafka, and wallet configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	homeCurrency, rateMode string, tickMs int, feedURL string, feedPollSecond, feedTimeoutSecond int,
	redisAddr string, redisDB int, redisPassword string, rateCacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	confirmTTLSecond, txLogCapacity int,
	initialBalances string, seedHistory bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate simulation config
	homeCurrency = getEnv("HOME_CURRENCY", models.HomeCurrency)
	rateMode = getEnv("RATE_MODE", string(services.RateModeDrift))
	if tickMs, err = strconv.Atoi(getEnv("RATE_TICK_MS", "500")); err != nil {
		return
	}
	feedURL = getEnv("RATE_FEED_URL", "")
	if feedPollSecond, err = strconv.Atoi(getEnv("RATE_FEED_POLL_SECOND", "30")); err != nil {
		return
	}
	if feedTimeoutSecond, err = strconv.Atoi(getEnv("RATE_FEED_TIMEOUT_SECOND", "5")); err != nil {
		return
	}

	// Redis config (optional rate-snapshot cache; empty addr disables)
	redisAddr = getEnv("REDIS_ADDR", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if rateCacheTTLSecond, err = strconv.Atoi(getEnv("RATE_CACHE_TTL_SECOND", "86400")); err != nil {
		return
	}

	// Kafka config (optional transaction publishing; empty addr disables)
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// Wallet config
	if confirmTTLSecond, err = strconv.Atoi(getEnv("CONFIRM_TTL_SECOND", "15")); err != nil {
		return
	}
	if txLogCapacity, err = strconv.Atoi(getEnv("TX_LOG_CAPACITY", "20")); err != nil {
		return
	}
	initialBalances = getEnv("INITIAL_BALANCES", "PLN:4000,EUR:1000,USD:1000")
	seedHistory = getEnv("SEED_DEMO_HISTORY", "false") == "true"

	return
}

// parseBalances parses "PLN:4000,EUR:1000" into a balance map.
func parseBalances(s string) (map[string]float64, error) {
	balances := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, amount, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid balance entry %q", part)
		}
		value, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid balance amount %q: %w", part, err)
		}
		balances[strings.ToUpper(strings.TrimSpace(code))] = value
	}
	return balances, nil
}

// seedDemoHistory fills the transaction log with sample deposits so the
// history view is not empty on first launch. Balances are left untouched.
func seedDemoHistory(txLog *repositories.TransactionLogRepository, home string) {
	now := time.Now()
	for i := 14; i >= 0; i-- {
		txLog.Append(models.Transaction{
			TransactionID: fmt.Sprintf("demo-%02d", i),
			Type:          models.TransactionDeposit,
			Currency:      home,
			Amount:        float64(50*i + 10),
			Timestamp:     now.Add(-time.Duration(i) * time.Hour).Unix(),
		})
	}
}

// run initializes the logger, optional Redis and Kafka clients, the wallet
// core, and the HTTP server. It starts the rate-simulation loop, sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	homeCurrency, rateMode string, tickMs int, feedURL string, feedPollSecond, feedTimeoutSecond int,
	redisAddr string, redisDB int, redisPassword string, rateCacheTTLSecond int,
	kafkaAddr, kafkaTopic string,
	confirmTTLSecond, txLogCapacity int,
	initialBalances string, seedHistory bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Optional Redis rate-snapshot cache
	var rateCache services.RateSnapshotCache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unreachable, rate-snapshot cache disabled", "addr", redisAddr, "error", err)
		} else {
			defer rdb.Close()
			rateCache = repositories.NewRateSnapshotCacheRepository(rdb, time.Duration(rateCacheTTLSecond)*time.Second)
			logger.Log.Infof("Rate-snapshot cache enabled at %s", redisAddr)
		}
	}

	// Optional Kafka transaction publishing
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Transaction publishing enabled, topic %s at %s", kafkaTopic, kafkaAddr)
	}

	// Optional external rate feed
	var feed services.RatesFeed
	if feedURL != "" {
		client := &http.Client{Timeout: time.Duration(feedTimeoutSecond) * time.Second}
		feed = facades.NewRatesFeedFacade(client, feedURL, homeCurrency)
	}

	// Initialize repositories
	initial, err := parseBalances(initialBalances)
	if err != nil {
		return err
	}
	balanceRepo := repositories.NewBalanceRepository(initial)
	txLogRepo := repositories.NewTransactionLogRepository(txLogCapacity)
	if seedHistory {
		seedDemoHistory(txLogRepo, homeCurrency)
	}

	// Initialize services
	sim := services.NewRateSimulator(homeCurrency, nil)
	initialRates := sim.InitialRates(ctx, feed, rateCache)
	ledger := services.NewLedger(balanceRepo, txLogRepo, initialRates, homeCurrency, nil)

	mode := services.RateMode(rateMode)
	if mode == services.RateModeFeed && feed == nil {
		logger.Log.Warnw("RATE_MODE=feed requires RATE_FEED_URL, falling back to drift mode")
		mode = services.RateModeDrift
	}
	interval := time.Duration(tickMs) * time.Millisecond
	if mode == services.RateModeFeed {
		interval = time.Duration(feedPollSecond) * time.Second
	}
	wallet := services.NewWalletService(ledger, balanceRepo, txLogRepo, sim, feed, mode, interval, initialRates, kafkaWriter)
	confirmations := services.NewConfirmationService(time.Duration(confirmTTLSecond) * time.Second)

	// Initialize handlers
	depositHandler := handlers.NewDepositHandler(wallet, wallet)
	withdrawHandler := handlers.NewWithdrawHandler(wallet, wallet, confirmations)
	exchangeHandler := handlers.NewExchangeHandler(wallet, confirmations)
	confirmHandler := handlers.NewConfirmHandler(confirmations, wallet)
	cancelHandler := handlers.NewCancelHandler(confirmations)
	rollbackHandler := handlers.NewRollbackHandler(wallet, wallet)
	balanceHandler := handlers.NewGetBalanceHandler(wallet)
	ratesHandler := handlers.NewGetRatesHandler(wallet)
	transactionsHandler := handlers.NewGetTransactionsHandler(wallet)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	handlers.RegisterDepositHandler(r, depositHandler)
	handlers.RegisterWithdrawHandler(r, withdrawHandler)
	handlers.RegisterExchangeHandler(r, exchangeHandler)
	handlers.RegisterConfirmHandlers(r, confirmHandler, cancelHandler)
	handlers.RegisterRollbackHandler(r, rollbackHandler)
	handlers.RegisterGetBalanceHandler(r, balanceHandler)
	handlers.RegisterGetRatesHandler(r, ratesHandler)
	handlers.RegisterGetTransactionsHandler(r, transactionsHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Rate-simulation loop stops with the server
	go wallet.Run(ctxShutdown)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
