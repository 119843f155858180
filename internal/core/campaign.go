package core

import (
	"context"
	"crowdledger/internal/ethereum"
	"crowdledger/internal/repository"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	campaignDurationDays = 30
	defaultListLimit     = 50
	maxListLimit         = 100
)

var TimeNow = time.Now

// Campaigns is the campaign lifecycle service.
type Campaigns struct {
	logs        *zap.SugaredLogger
	repo        Repository
	sessions    SessionResolver
	ledger      LedgerGateway
	beneficiary common.Address
}

// NewCampaigns builds the service. beneficiary is the ledger address every new
// campaign pays out to until per-beneficiary wallets exist.
func NewCampaigns(logger *zap.SugaredLogger, repo Repository, sessions SessionResolver, ledger LedgerGateway, beneficiary common.Address) *Campaigns {
	return &Campaigns{
		logs:        logger,
		repo:        repo,
		sessions:    sessions,
		ledger:      ledger,
		beneficiary: beneficiary,
	}
}

// CreateCampaign creates the campaign on the ledger and then stores it. Nothing
// is stored when the ledger call fails. A store failure after the ledger call
// leaves the campaign on the ledger only; it is logged with the on-chain id.
func (c *Campaigns) CreateCampaign(ctx context.Context, token string, req CampaignRequest) (CampaignReceipt, error) {
	caller, err := c.sessions.Caller(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrUnauthorized) {
			err = fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
		return CampaignReceipt{}, err
	}

	req = req.trimmed()
	if err := req.Validate(); err != nil {
		return CampaignReceipt{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := c.repo.GetUserByEmail(ctx, caller.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return CampaignReceipt{}, fmt.Errorf("%w: %s", ErrUserNotFound, caller.Email)
		}
		return CampaignReceipt{}, fmt.Errorf("%w: get user by email: %w", ErrStore, err)
	}

	created, err := c.ledger.CreateCampaign(ctx, ethereum.CampaignParams{
		Title:              req.Title,
		Description:        req.Description,
		GoalAmountUSD:      req.GoalAmountUSD,
		BeneficiaryAddress: c.beneficiary,
		DurationDays:       campaignDurationDays,
	})
	if err != nil {
		c.logs.Errorw("ledger campaign creation failed", "error", err, "email", user.Email)
		return CampaignReceipt{}, fmt.Errorf("%w: %w", ErrLedger, err)
	}

	onChainID := created.CampaignID.String()
	now := TimeNow().UTC()

	campaign, err := c.repo.CreateCampaign(ctx, repository.Campaign{
		Title:            req.Title,
		Description:      req.Description,
		GoalAmountUSD:    req.GoalAmountUSD,
		CreatorEmail:     user.Email,
		CreatorID:        user.ID,
		BeneficiaryName:  req.BeneficiaryName,
		BeneficiaryEmail: req.BeneficiaryEmail,
		Country:          canonicalCountry(req.Country),
		PayoutMethod:     req.PayoutMethod,
		CampaignID:       onChainID,
		Status:           StatusPending,
		StartDate:        now,
		EndDate:          now.AddDate(0, 0, campaignDurationDays),
	})
	if err != nil {
		c.logs.Errorw("campaign exists on ledger but could not be stored",
			"error", err,
			"campaign_id", onChainID,
			"tx_hash", created.TxHash,
			"email", user.Email)
		return CampaignReceipt{}, fmt.Errorf("%w: store campaign %s: %w", ErrStore, onChainID, err)
	}

	c.logs.Infow("campaign created",
		"id", campaign.ID,
		"campaign_id", onChainID,
		"tx_hash", created.TxHash,
		"email", user.Email)

	return CampaignReceipt{
		ID:         campaign.ID,
		CampaignID: campaign.CampaignID,
		Title:      campaign.Title,
		Status:     campaign.Status,
	}, nil
}

// ListCampaigns returns the newest campaigns, optionally only those in status.
func (c *Campaigns) ListCampaigns(ctx context.Context, status string, limit int) ([]CampaignRecord, error) {
	if err := validation.Validate(status, validation.In(campaignStatuses...)); err != nil {
		return nil, fmt.Errorf("%w: status: %w", ErrValidation, err)
	}

	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	campaigns, err := c.repo.ListCampaigns(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	records := make([]CampaignRecord, len(campaigns))
	for i, campaign := range campaigns {
		records[i] = campaignToRecord(campaign)
	}
	return records, nil
}

func (c *Campaigns) GetCampaign(ctx context.Context, id string) (CampaignRecord, error) {
	campaign, err := c.repo.GetCampaign(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return CampaignRecord{}, fmt.Errorf("%w: %s", ErrCampaignNotFound, id)
		}
		return CampaignRecord{}, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return campaignToRecord(campaign), nil
}

// CampaignOnChain loads the stored campaign and reads its ledger state.
func (c *Campaigns) CampaignOnChain(ctx context.Context, id string) (OnChainCampaign, error) {
	record, err := c.GetCampaign(ctx, id)
	if err != nil {
		return OnChainCampaign{}, err
	}

	onChainID, ok := new(big.Int).SetString(record.CampaignID, 10)
	if !ok {
		return OnChainCampaign{}, fmt.Errorf("%w: campaign %s has invalid on-chain id %q", ErrStore, id, record.CampaignID)
	}

	data, err := c.ledger.GetCampaign(ctx, onChainID)
	if err != nil {
		return OnChainCampaign{}, fmt.Errorf("%w: %w", ErrLedger, err)
	}

	return OnChainCampaign{
		Campaign: record,
		Ledger:   data,
	}, nil
}

func (c *Campaigns) LedgerStatus(ctx context.Context) (ethereum.Status, error) {
	status, err := c.ledger.Status(ctx)
	if err != nil {
		return status, fmt.Errorf("%w: %w", ErrLedger, err)
	}
	return status, nil
}

// Health reports the number of stored campaigns, proving the store is reachable.
func (c *Campaigns) Health(ctx context.Context) (int64, error) {
	count, err := c.repo.CountCampaigns(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return count, nil
}

// canonicalCountry upper-cases ISO 3166 region codes and keeps anything else as given.
func canonicalCountry(country string) string {
	region, err := language.ParseRegion(country)
	if err != nil {
		return country
	}
	return region.String()
}
