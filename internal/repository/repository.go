package repository

import (
	"context"
	"crowdledger/internal/db"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrCampaignNotFound error = errors.New("campaign not found")

type CampaignRepository struct {
	db Storage
}

func NewCampaignRepository(db Storage) *CampaignRepository {
	return &CampaignRepository{
		db: db,
	}
}

func (r *CampaignRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Campaign{}, &Donation{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *CampaignRepository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "email", NormalizeEmail(email), &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// CreateUserIfMissing returns the stored user for user.Email, inserting user
// first when there is none. An existing record is returned untouched.
func (r *CampaignRepository) CreateUserIfMissing(ctx context.Context, user User) (User, bool, error) {
	user.Email = NormalizeEmail(user.Email)
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	created, err := r.db.FindOrCreate(ctx, "email", user.Email, &user)
	if err != nil {
		return User{}, false, fmt.Errorf("find or create user: %w", err)
	}
	return user, created, nil
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, campaign Campaign) (Campaign, error) {
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	campaign.CreatorEmail = NormalizeEmail(campaign.CreatorEmail)

	if err := r.db.Create(ctx, &campaign); err != nil {
		return Campaign{}, fmt.Errorf("save campaign: %w", err)
	}
	return campaign, nil
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (Campaign, error) {
	var campaign Campaign
	err := r.db.GetOneBy(ctx, "id", id, &campaign)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}
		return Campaign{}, fmt.Errorf("get campaign by id: %w", err)
	}
	return campaign, nil
}

// ListCampaigns returns the newest campaigns first, optionally filtered by status.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, status string, limit int) ([]Campaign, error) {
	var conds map[string]any
	if status != "" {
		conds = map[string]any{"status": status}
	}

	campaigns := []Campaign{}
	err := r.db.List(ctx, conds, "created_at desc", limit, &campaigns)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *CampaignRepository) CountCampaigns(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.Count(ctx, &Campaign{}, nil, &count); err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return count, nil
}
