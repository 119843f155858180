package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	ledgerRPCEnvKey = "LEDGER_RPC_URL"
	alchemyEnvKey   = "ALCHEMY_API_KEY"
	alchemyBaseURL  = "https://eth-mainnet.g.alchemy.com/v2/"
)

// envFiles are loaded if present; values already in the environment win.
var envFiles = []string{".env", ".env.local"}

type App struct {
	Port     string        `env:"API_PORT" envDefault:"8080"`
	LogLevel zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`

	DBConnectionURL string `env:"DATABASE_URL,required"`

	LedgerRPCURL        string        `env:"LEDGER_RPC_URL"`
	AlchemyAPIKey       string        `env:"ALCHEMY_API_KEY"`
	DeployerPrivateKey  string        `env:"DEPLOYER_PRIVATE_KEY,required"`
	ContractAddress     string        `env:"CAMPAIGN_CONTRACT_ADDRESS,required"`
	DeployerAddress     string        `env:"DEPLOYER_ADDRESS" envDefault:"0x0000000000000000000000000000000000000000"`
	GasPriceGwei        string        `env:"GAS_PRICE" envDefault:"20"`
	USDPerETH           string        `env:"USD_PER_ETH" envDefault:"2000"`
	ReceiptPollInterval time.Duration `env:"RECEIPT_POLL_INTERVAL" envDefault:"2s"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID,required"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET,required"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL,required"`
	SignInRedirectURL  string `env:"SIGNIN_REDIRECT_URL" envDefault:"/"`
}

// NewApp reads the optional env files and then the process environment.
func NewApp() (App, error) {
	for _, f := range envFiles {
		// a missing file is fine, the environment may be set elsewhere
		_ = godotenv.Load(f)
	}
	return Parse(env.Options{})
}

// Parse builds the configuration from the environment described by opts.
func Parse(opts env.Options) (App, error) {
	var app App
	if err := env.ParseWithOptions(&app, opts); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	if app.NodeURL() == "" {
		return App{}, fmt.Errorf("%w: %s or %s", errEnvVarNotFound, ledgerRPCEnvKey, alchemyEnvKey)
	}

	if !common.IsHexAddress(app.ContractAddress) {
		return App{}, fmt.Errorf("invalid contract address %q", app.ContractAddress)
	}

	if !common.IsHexAddress(app.DeployerAddress) {
		return App{}, fmt.Errorf("invalid deployer address %q", app.DeployerAddress)
	}

	return app, nil
}

// NodeURL resolves the ledger endpoint: an explicit RPC URL wins over the Alchemy key.
func (a App) NodeURL() string {
	if a.LedgerRPCURL != "" {
		return a.LedgerRPCURL
	}
	if a.AlchemyAPIKey != "" {
		return alchemyBaseURL + a.AlchemyAPIKey
	}
	return ""
}
