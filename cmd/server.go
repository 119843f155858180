package cmd

import (
	"context"
	"crowdledger/internal/config"
	"crowdledger/internal/core"
	"crowdledger/internal/db"
	"crowdledger/internal/ethereum"
	"crowdledger/internal/http/handler"
	"crowdledger/internal/http/payload"
	"crowdledger/internal/http/server"
	"crowdledger/internal/oauth"
	"crowdledger/internal/repository"
	"crowdledger/pkg/jwt"
	"crowdledger/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("crowdledger", config.LogLevel)
	defer logger.Sync()

	ctx := context.Background()

	dbConn := db.NewPostgresDB(config.DBConnectionURL)
	if err := dbConn.Ping(ctx); err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewCampaignRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.DialContext(ctx, config.NodeURL())
	if err != nil {
		logger.Errorw("ledger node connection failed", "error", err)
		return err
	}
	defer client.Close()

	rate, err := ethereum.NewFixedRate(config.USDPerETH)
	if err != nil {
		logger.Errorw("invalid usd/eth rate", "error", err)
		return err
	}
	logger.Warnw("using a fixed usd/eth rate, not a price oracle", "usd_per_eth", config.USDPerETH)

	gateway, err := ethereum.NewGateway(client, ethereum.GatewayOpts{
		ContractAddress: config.ContractAddress,
		PrivateKeyHex:   config.DeployerPrivateKey,
		GasPriceGwei:    config.GasPriceGwei,
		Rate:            rate,
		PollInterval:    config.ReceiptPollInterval,
	})
	if err != nil {
		logger.Errorw("failed to create ledger gateway", "error", err)
		return err
	}
	logger.Infow("ledger gateway ready",
		"wallet", gateway.Address().Hex(),
		"contract", config.ContractAddress)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// core
	identity := core.NewIdentity(logger, repo, jwtService, config.SessionTTL)
	campaigns := core.NewCampaigns(
		logger,
		repo,
		identity,
		gateway,
		common.HexToAddress(config.DeployerAddress))

	provider := oauth.NewGoogle(oauth.GoogleOpts{
		ClientID:     config.GoogleClientID,
		ClientSecret: config.GoogleClientSecret,
		RedirectURL:  config.GoogleRedirectURL,
	})

	// handlers
	campaignHlr := handler.NewCampaignHandler(
		logger,
		payload.Decoder{},
		campaigns)
	authHlr := handler.NewAuthHandler(
		logger,
		provider,
		identity,
		handler.AuthOpts{
			SessionTTL:  config.SessionTTL,
			RedirectURL: config.SignInRedirectURL,
		})

	hdlr := handler.NewRouter(logger, campaignHlr, authHlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if err == http.ErrServerClosed {
		return nil
	}

	return err
}
