package repository

import "time"

type User struct {
	ID         string `gorm:"primaryKey;autoIncrement:false"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name       string `gorm:"size:100;not null"`
	Image      string
	IsVerified bool `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Campaign struct {
	ID               string  `gorm:"primaryKey;autoIncrement:false"`
	Title            string  `gorm:"size:100;not null"`
	Description      string  `gorm:"size:2000;not null"`
	GoalAmountUSD    float64 `gorm:"not null"`
	CreatorEmail     string  `gorm:"size:255;not null"`
	CreatorID        string  `gorm:"not null;index:idx_campaign_creator,priority:1"`
	BeneficiaryName  string  `gorm:"size:100;not null"`
	BeneficiaryEmail string  `gorm:"size:255;not null;index"`
	Country          string  `gorm:"not null"`
	PayoutMethod     string  `gorm:"not null"`
	IsVerified       bool    `gorm:"not null;default:false;index:idx_campaign_verified,priority:1"`
	CampaignID       string  `gorm:"size:78;not null;index"` // on-chain uint256 in decimal
	TotalDonated     float64 `gorm:"not null;default:0"`
	TotalDonations   int64   `gorm:"not null;default:0"`
	Donors           int64   `gorm:"not null;default:0"`
	GoalReached      bool    `gorm:"not null;default:false"`
	Status           string  `gorm:"size:16;not null;default:pending;index:idx_campaign_status,priority:1;index:idx_campaign_verified,priority:2"`
	ImageURL         *string
	StartDate        time.Time `gorm:"not null"`
	EndDate          time.Time `gorm:"not null"`
	IsDemo           bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"index:idx_campaign_status,priority:2,sort:desc;index:idx_campaign_creator,priority:2,sort:desc"`
	UpdatedAt        time.Time
}

// Donation has no writer yet; the table exists so ledger reconciliation can land on it.
// PaymentMethod is crypto or fiat; Status is pending, completed, failed or refunded.
type Donation struct {
	ID              string    `gorm:"primaryKey;autoIncrement:false"`
	CampaignID      string    `gorm:"not null;index:idx_donation_campaign,priority:1"`
	DonorID         *string   `gorm:"index:idx_donation_donor,priority:1"`
	Amount          float64   `gorm:"not null;check:amount >= 0.01"`
	Currency        string    `gorm:"size:8;not null;default:USD"`
	PaymentMethod   string    `gorm:"size:8;not null"`
	TransactionHash *string   `gorm:"size:66"`
	IsAnonymous     bool      `gorm:"not null;default:false"`
	DonorName       *string   `gorm:"size:100"`
	DonorEmail      *string   `gorm:"size:255"`
	Status          string    `gorm:"size:16;not null;default:pending;index"`
	CreatedAt       time.Time `gorm:"index:idx_donation_campaign,priority:2,sort:desc;index:idx_donation_donor,priority:2,sort:desc"`
	UpdatedAt       time.Time
}
