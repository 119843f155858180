package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	secondsPerDay       = 86400
	defaultPollInterval = 2 * time.Second
)

type GatewayOpts struct {
	ContractAddress string
	PrivateKeyHex   string
	GasPriceGwei    string
	Rate            RateSource
	PollInterval    time.Duration
}

// Gateway signs and submits transactions to the campaign contract from the
// deployer wallet and reads its state.
type Gateway struct {
	client       LedgerClient
	abi          abi.ABI
	contract     common.Address
	key          *ecdsa.PrivateKey
	from         common.Address
	gasPrice     *big.Int
	rate         RateSource
	pollInterval time.Duration
}

func NewGateway(client LedgerClient, opts GatewayOpts) (*Gateway, error) {
	parsed, err := abi.JSON(strings.NewReader(CampaignContractABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	if !common.IsHexAddress(opts.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", opts.ContractAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(opts.PrivateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse deployer private key: %w", err)
	}

	gasPrice, err := ParseUnits(opts.GasPriceGwei, GweiDecimals)
	if err != nil {
		return nil, fmt.Errorf("parse gas price: %w", err)
	}

	if opts.Rate == nil {
		return nil, errors.New("rate source is required")
	}

	poll := opts.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	return &Gateway{
		client:       client,
		abi:          parsed,
		contract:     common.HexToAddress(opts.ContractAddress),
		key:          key,
		from:         crypto.PubkeyToAddress(key.PublicKey),
		gasPrice:     gasPrice,
		rate:         opts.Rate,
		pollInterval: poll,
	}, nil
}

// Address is the deployer wallet transactions are sent from.
func (g *Gateway) Address() common.Address {
	return g.from
}

// CreateCampaign submits createCampaign, waits for it to be mined and returns
// the CampaignCreated event it emitted.
func (g *Gateway) CreateCampaign(ctx context.Context, params CampaignParams) (CampaignCreated, error) {
	const op = "create campaign"

	goal, err := g.rate.USDToWei(params.GoalAmountUSD)
	if err != nil {
		return CampaignCreated{}, ledgerErr(op, fmt.Errorf("convert goal amount: %w", err))
	}
	duration := new(big.Int).Mul(big.NewInt(int64(params.DurationDays)), big.NewInt(secondsPerDay))

	receipt, err := g.transact(ctx, nil, methodCreateCampaign,
		params.Title, params.Description, goal, params.BeneficiaryAddress, duration)
	if err != nil {
		return CampaignCreated{}, ledgerErr(op, err)
	}

	event, err := g.campaignCreated(receipt)
	if err != nil {
		return CampaignCreated{}, ledgerErr(op, err)
	}
	return event, nil
}

// Donate sends amountEth ether to the campaign and returns the transaction hash.
func (g *Gateway) Donate(ctx context.Context, campaignID *big.Int, amountEth string) (string, error) {
	const op = "donate"

	value, err := ParseUnits(amountEth, EtherDecimals)
	if err != nil {
		return "", ledgerErr(op, err)
	}

	receipt, err := g.transact(ctx, value, methodDonate, campaignID)
	if err != nil {
		return "", ledgerErr(op, err)
	}
	return receipt.TxHash.Hex(), nil
}

func (g *Gateway) WithdrawFunds(ctx context.Context, campaignID *big.Int) (string, error) {
	const op = "withdraw funds"

	receipt, err := g.transact(ctx, nil, methodWithdrawFunds, campaignID)
	if err != nil {
		return "", ledgerErr(op, err)
	}
	return receipt.TxHash.Hex(), nil
}

func (g *Gateway) GetCampaign(ctx context.Context, campaignID *big.Int) (CampaignData, error) {
	const op = "get campaign"

	var out campaignTuple
	if err := g.call(ctx, &out, methodGetCampaign, campaignID); err != nil {
		return CampaignData{}, ledgerErr(op, err)
	}

	return CampaignData{
		CampaignID:   campaignID.String(),
		Title:        out.Title,
		Description:  out.Description,
		GoalAmount:   FormatUnits(out.GoalAmount, EtherDecimals),
		RaisedAmount: FormatUnits(out.RaisedAmount, EtherDecimals),
		Beneficiary:  out.Beneficiary.Hex(),
		Creator:      out.Creator.Hex(),
		StartTime:    out.StartTime.Uint64(),
		EndTime:      out.EndTime.Uint64(),
		IsActive:     out.IsActive,
		GoalReached:  out.GoalReached,
	}, nil
}

func (g *Gateway) TotalCampaigns(ctx context.Context) (uint64, error) {
	var total *big.Int
	if err := g.call(ctx, &total, methodGetTotalCampaigns); err != nil {
		return 0, ledgerErr("get total campaigns", err)
	}
	return total.Uint64(), nil
}

// WalletBalance returns the deployer balance in ether.
func (g *Gateway) WalletBalance(ctx context.Context) (string, error) {
	balance, err := g.client.BalanceAt(ctx, g.from, nil)
	if err != nil {
		return "", ledgerErr("get wallet balance", err)
	}
	return FormatUnits(balance, EtherDecimals), nil
}

// GasPrice returns the node's suggested gas price in gwei.
func (g *Gateway) GasPrice(ctx context.Context) (string, error) {
	price, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", ledgerErr("get gas price", err)
	}
	return FormatUnits(price, GweiDecimals), nil
}

// Status reads the wallet balance, gas price and campaign count concurrently.
func (g *Gateway) Status(ctx context.Context) (Status, error) {
	var (
		status  Status
		mu      sync.Mutex
		aggrErr error
		wg      sync.WaitGroup
	)

	reads := []func() error{
		func() error {
			balance, err := g.WalletBalance(ctx)
			mu.Lock()
			status.WalletBalance = balance
			mu.Unlock()
			return err
		},
		func() error {
			price, err := g.GasPrice(ctx)
			mu.Lock()
			status.GasPriceGwei = price
			mu.Unlock()
			return err
		},
		func() error {
			total, err := g.TotalCampaigns(ctx)
			mu.Lock()
			status.TotalCampaigns = total
			mu.Unlock()
			return err
		},
	}

	errs := make(chan error, len(reads))
	for _, read := range reads {
		wg.Add(1)
		go func(read func() error) {
			defer wg.Done()
			errs <- read()
		}(read)
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	for err := range errs {
		if err != nil {
			aggrErr = errors.Join(aggrErr, err)
		}
	}

	return status, aggrErr
}

func (g *Gateway) call(ctx context.Context, out any, method string, args ...any) error {
	data, err := g.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("pack %s call: %w", method, err)
	}

	res, err := g.client.CallContract(ctx, geth.CallMsg{To: &g.contract, Data: data}, nil)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}

	if err := g.abi.UnpackIntoInterface(out, method, res); err != nil {
		return fmt.Errorf("unpack %s result: %w", method, err)
	}
	return nil
}

// transact signs a legacy transaction with the estimated gas limit and the
// configured gas price, sends it and blocks until it is mined successfully.
func (g *Gateway) transact(ctx context.Context, value *big.Int, method string, args ...any) (*types.Receipt, error) {
	data, err := g.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s call: %w", method, err)
	}
	if value == nil {
		value = new(big.Int)
	}

	gas, err := g.client.EstimateGas(ctx, geth.CallMsg{
		From:     g.from,
		To:       &g.contract,
		GasPrice: g.gasPrice,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	nonce, err := g.client.PendingNonceAt(ctx, g.from)
	if err != nil {
		return nil, fmt.Errorf("get pending nonce: %w", err)
	}

	chainID, err := g.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &g.contract,
		Value:    value,
		Gas:      gas,
		GasPrice: g.gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), g.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	if err := g.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	receipt, err := g.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrTxReverted, signed.Hash().Hex())
	}
	return receipt, nil
}

// waitMined polls for the receipt until it exists or ctx is done.
func (g *Gateway) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := g.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, geth.NotFound) {
			return nil, fmt.Errorf("get receipt %s: %w", hash.Hex(), err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// campaignCreated decodes the first CampaignCreated log the contract emitted.
func (g *Gateway) campaignCreated(receipt *types.Receipt) (CampaignCreated, error) {
	event := g.abi.Events[eventCampaignCreated]

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	for _, l := range receipt.Logs {
		if l == nil || l.Address != g.contract || len(l.Topics) == 0 || l.Topics[0] != event.ID {
			continue
		}

		var raw campaignCreatedLog
		if err := g.abi.UnpackIntoInterface(&raw, eventCampaignCreated, l.Data); err != nil {
			return CampaignCreated{}, fmt.Errorf("unpack %s data: %w", eventCampaignCreated, err)
		}
		if err := abi.ParseTopics(&raw, indexed, l.Topics[1:]); err != nil {
			return CampaignCreated{}, fmt.Errorf("parse %s topics: %w", eventCampaignCreated, err)
		}

		return CampaignCreated{
			CampaignID:  raw.CampaignId,
			Title:       raw.Title,
			Creator:     raw.Creator,
			Beneficiary: raw.Beneficiary,
			GoalAmount:  raw.GoalAmount,
			StartTime:   raw.StartTime.Uint64(),
			EndTime:     raw.EndTime.Uint64(),
			TxHash:      receipt.TxHash.Hex(),
		}, nil
	}

	return CampaignCreated{}, ErrCampaignEventMissing
}
