package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loopcard/loyalty-backend/internal/metrics"
	"github.com/loopcard/loyalty-backend/internal/payments"
	"github.com/loopcard/loyalty-backend/internal/reconciler"
	"github.com/loopcard/loyalty-backend/internal/server"
	"github.com/loopcard/loyalty-backend/internal/server/config"
	"github.com/loopcard/loyalty-backend/internal/server/handlers"
	"github.com/loopcard/loyalty-backend/internal/server/repository"
	"github.com/loopcard/loyalty-backend/pkg/database"
	"github.com/loopcard/loyalty-backend/pkg/ledger"
	"github.com/loopcard/loyalty-backend/pkg/logging"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := config.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize config: %v", err))
	}

	logConfig := logging.LoggerConfig{
		ProcessName:   logging.ServerProcess,
		IsDevelopment: config.IsDevMode(),
	}

	if err := logging.InitServiceLogger(logConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logging.Shutdown()
	logger := logging.GetServiceLogger()

	logger.Info("Starting loyalty server...",
		"mode", config.IsDevMode(),
		"port", config.GetServerPort(),
		"host", config.GetDatabaseHostAddress(),
	)

	dbConfig := database.NewConfig(config.GetDatabaseHostAddress(), config.GetDatabaseHostPort())
	dbConn, err := database.NewConnection(dbConfig, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize database connection: %v", err)
	}
	defer dbConn.Close()

	signer, err := ledger.NewSigner(config.GetAdminPrivateKey())
	if err != nil {
		logger.Fatalf("Failed to load admin signing key: %v", err)
	}
	ledgerClient, err := ledger.NewClient(config.GetProviderRPCURL(), config.GetContractAddress(), signer, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to Ethereum node: %v", err)
	}
	defer ledgerClient.Close()

	userRepository := repository.NewUserRepository(dbConn)
	requestRepository := repository.NewRequestRepository(dbConn)

	engine := reconciler.NewEngine(
		reconciler.InstrumentLedger(ledgerClient),
		requestRepository,
		userRepository,
		reconciler.Policy{
			AllowTerminalOverride: config.GetAllowTerminalOverride(),
			ScanLimit:             uint64(config.GetTokenScanLimit()),
		},
		logger,
	)

	paymentsClient := payments.NewClient(payments.Config{
		SecretKey:     config.GetStripeSecretKey(),
		WebhookSecret: config.GetStripeWebhookSecret(),
		SuccessURL:    config.GetCheckoutSuccessURL(),
		CancelURL:     config.GetCheckoutCancelURL(),
	}, logger)

	handler := handlers.NewHandler(
		userRepository,
		requestRepository,
		engine,
		paymentsClient,
		handlers.Config{
			JWTSecret: config.GetJWTSecret(),
			DevMode:   config.IsDevMode(),
		},
		logger,
	)

	metricsServer := metrics.NewServer(config.GetMetricsPort(), logger)
	metricsServer.Start()

	sweeper := server.NewBacklogSweeper(requestRepository, logger)
	if err := sweeper.Start(); err != nil {
		logger.Errorf("Failed to start backlog sweeper: %v", err)
	}

	srv := server.NewServer(handler, config.GetJWTSecret(), logger)

	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.Start(config.GetServerPort()); err != nil {
			serverErrors <- fmt.Errorf("HTTP server error: %v", err)
		}
	}()

	logger.Infof("Loyalty server initialized, listening on port %s...", config.GetServerPort())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("Server error received", "error", err)
	case sig := <-shutdown:
		logger.Info("Received shutdown signal", "signal", sig.String())
	}

	performGracefulShutdown(srv, sweeper, metricsServer, logger)
}

func performGracefulShutdown(srv *server.Server, sweeper *server.BacklogSweeper, metricsServer *metrics.Server, logger logging.Logger) {
	logger.Info("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	sweeper.Stop()
	metricsServer.Stop()

	logger.Info("Shutdown complete")
}
