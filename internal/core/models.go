package core

import (
	"crowdledger/internal/ethereum"
	"crowdledger/internal/repository"
	"regexp"
	"strings"
	"time"

	"github.com/jellydator/validation"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var campaignStatuses = []any{
	StatusPending, StatusApproved, StatusRejected, StatusActive, StatusCompleted, StatusCancelled,
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CampaignRequest struct {
	Title            string
	Description      string
	GoalAmountUSD    float64
	BeneficiaryName  string
	BeneficiaryEmail string
	Country          string
	PayoutMethod     string
}

func (r CampaignRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 2000)),
		validation.Field(&r.GoalAmountUSD, validation.Required, validation.Min(1.0)),
		validation.Field(&r.BeneficiaryName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.BeneficiaryEmail, validation.Required, validation.Match(emailRegex)),
		validation.Field(&r.Country, validation.Required),
		validation.Field(&r.PayoutMethod, validation.Required),
	)
}

func (r CampaignRequest) trimmed() CampaignRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.BeneficiaryName = strings.TrimSpace(r.BeneficiaryName)
	r.BeneficiaryEmail = strings.TrimSpace(r.BeneficiaryEmail)
	r.Country = strings.TrimSpace(r.Country)
	r.PayoutMethod = strings.TrimSpace(r.PayoutMethod)
	return r
}

// CampaignReceipt confirms a campaign that exists both on the ledger and in the store.
type CampaignReceipt struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaignId"`
	Title      string `json:"title"`
	Status     string `json:"status"`
}

type CampaignRecord struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	GoalAmountUSD    float64   `json:"goalAmountUsd"`
	CreatorEmail     string    `json:"creatorEmail"`
	BeneficiaryName  string    `json:"beneficiaryName"`
	BeneficiaryEmail string    `json:"beneficiaryEmail"`
	Country          string    `json:"country"`
	PayoutMethod     string    `json:"payoutMethod"`
	IsVerified       bool      `json:"isVerified"`
	CampaignID       string    `json:"campaignId"`
	TotalDonated     float64   `json:"totalDonated"`
	TotalDonations   int64     `json:"totalDonations"`
	Donors           int64     `json:"donors"`
	GoalReached      bool      `json:"goalReached"`
	Status           string    `json:"status"`
	ImageURL         *string   `json:"imageUrl,omitempty"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	IsDemo           bool      `json:"isDemo"`
	CreatedAt        time.Time `json:"createdAt"`
}

// OnChainCampaign pairs a stored campaign with its current ledger state.
type OnChainCampaign struct {
	Campaign CampaignRecord        `json:"campaign"`
	Ledger   ethereum.CampaignData `json:"ledger"`
}

type Profile struct {
	Email string
	Name  string
	Image string
}

// ProviderSession is what the session token itself asserts.
type ProviderSession struct {
	Email   string
	Name    string
	Image   string
	Expires time.Time
}

// SessionView is a provider session with the store-resident user fields applied.
type SessionView struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Image      string    `json:"image,omitempty"`
	IsVerified bool      `json:"isVerified"`
	Expires    time.Time `json:"expires"`
}

func campaignToRecord(c repository.Campaign) CampaignRecord {
	return CampaignRecord{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		GoalAmountUSD:    c.GoalAmountUSD,
		CreatorEmail:     c.CreatorEmail,
		BeneficiaryName:  c.BeneficiaryName,
		BeneficiaryEmail: c.BeneficiaryEmail,
		Country:          c.Country,
		PayoutMethod:     c.PayoutMethod,
		IsVerified:       c.IsVerified,
		CampaignID:       c.CampaignID,
		TotalDonated:     c.TotalDonated,
		TotalDonations:   c.TotalDonations,
		Donors:           c.Donors,
		GoalReached:      c.GoalReached,
		Status:           c.Status,
		ImageURL:         c.ImageURL,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		IsDemo:           c.IsDemo,
		CreatedAt:        c.CreatedAt,
	}
}
