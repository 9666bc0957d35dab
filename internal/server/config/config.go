package config

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/loopcard/loyalty-backend/pkg/env"
)

type Config struct {
	devMode bool

	// Port at which the API server listens
	serverPort string
	// Port for the Prometheus metrics endpoint
	metricsPort string

	// ScyllaDB host and port
	databaseHostAddress string
	databaseHostPort    string

	// Secret for signing session tokens
	jwtSecret string

	// Ethereum RPC endpoint and deployed LoyaltyNFT contract
	providerRPCURL  string
	contractAddress string
	adminPrivateKey string

	// Stripe checkout configuration
	stripeSecretKey     string
	stripeWebhookSecret string
	checkoutSuccessURL  string
	checkoutCancelURL   string

	// Reconciliation policy
	allowTerminalOverride bool
	tokenScanLimit        int
}

var cfg Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, relying on environment")
	}
	cfg = Config{
		devMode:               env.GetEnvBool("DEV_MODE", false),
		serverPort:            env.GetEnvString("SERVER_PORT", "4000"),
		metricsPort:           env.GetEnvString("METRICS_PORT", "9090"),
		databaseHostAddress:   env.GetEnvString("DATABASE_HOST_ADDRESS", "localhost"),
		databaseHostPort:      env.GetEnvString("DATABASE_HOST_PORT", "9042"),
		jwtSecret:             env.GetEnvString("JWT_SECRET", ""),
		providerRPCURL:        env.GetEnvString("PROVIDER_RPC_URL", ""),
		contractAddress:       env.GetEnvString("CONTRACT_ADDRESS", ""),
		adminPrivateKey:       env.GetEnvString("ADMIN_PRIVATE_KEY", ""),
		stripeSecretKey:       env.GetEnvString("STRIPE_SECRET_KEY", ""),
		stripeWebhookSecret:   env.GetEnvString("STRIPE_WEBHOOK_SECRET", ""),
		checkoutSuccessURL:    env.GetEnvString("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success"),
		checkoutCancelURL:     env.GetEnvString("CHECKOUT_CANCEL_URL", "http://localhost:3000/cancel"),
		allowTerminalOverride: env.GetEnvBool("ALLOW_TERMINAL_OVERRIDE", true),
		tokenScanLimit:        env.GetEnvInt("TOKEN_SCAN_LIMIT", 0),
	}
	if err := validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.devMode {
		gin.SetMode(gin.ReleaseMode)
	}
	return nil
}

func validateConfig() error {
	if !env.IsValidPort(cfg.serverPort) {
		return fmt.Errorf("invalid server port: %s", cfg.serverPort)
	}
	if !env.IsValidPort(cfg.metricsPort) {
		return fmt.Errorf("invalid metrics port: %s", cfg.metricsPort)
	}
	if !env.IsValidIPAddress(cfg.databaseHostAddress) {
		return fmt.Errorf("invalid database host address: %s", cfg.databaseHostAddress)
	}
	if !env.IsValidPort(cfg.databaseHostPort) {
		return fmt.Errorf("invalid database host port: %s", cfg.databaseHostPort)
	}
	if env.IsEmpty(cfg.jwtSecret) {
		return fmt.Errorf("JWT secret is not set")
	}
	if !env.IsValidURL(cfg.providerRPCURL) {
		return fmt.Errorf("invalid provider RPC URL: %s", cfg.providerRPCURL)
	}
	if !env.IsValidEthAddress(cfg.contractAddress) {
		return fmt.Errorf("invalid contract address: %s", cfg.contractAddress)
	}
	if !env.IsValidPrivateKey(cfg.adminPrivateKey) {
		return fmt.Errorf("invalid admin private key")
	}
	if cfg.tokenScanLimit < 0 {
		return fmt.Errorf("token scan limit must be >= 0")
	}
	if !cfg.devMode {
		if env.IsEmpty(cfg.stripeSecretKey) {
			return fmt.Errorf("stripe secret key is not set")
		}
		if env.IsEmpty(cfg.stripeWebhookSecret) {
			return fmt.Errorf("stripe webhook secret is not set")
		}
	}
	return nil
}

func IsDevMode() bool {
	return cfg.devMode
}

func GetServerPort() string {
	return cfg.serverPort
}

func GetMetricsPort() string {
	return cfg.metricsPort
}

func GetDatabaseHostAddress() string {
	return cfg.databaseHostAddress
}

func GetDatabaseHostPort() string {
	return cfg.databaseHostPort
}

func GetJWTSecret() string {
	return cfg.jwtSecret
}

func GetProviderRPCURL() string {
	return cfg.providerRPCURL
}

func GetContractAddress() string {
	return cfg.contractAddress
}

func GetAdminPrivateKey() string {
	return cfg.adminPrivateKey
}

func GetStripeSecretKey() string {
	return cfg.stripeSecretKey
}

func GetStripeWebhookSecret() string {
	return cfg.stripeWebhookSecret
}

func GetCheckoutSuccessURL() string {
	return cfg.checkoutSuccessURL
}

func GetCheckoutCancelURL() string {
	return cfg.checkoutCancelURL
}

func GetAllowTerminalOverride() bool {
	return cfg.allowTerminalOverride
}

func GetTokenScanLimit() int {
	return cfg.tokenScanLimit
}
