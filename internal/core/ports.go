package core

import (
	"context"
	"crowdledger/internal/ethereum"
	"crowdledger/internal/repository"
	tokenIssuer "crowdledger/pkg/jwt"
	"math/big"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	CreateUserIfMissing(ctx context.Context, user repository.User) (repository.User, bool, error)
	CreateCampaign(ctx context.Context, campaign repository.Campaign) (repository.Campaign, error)
	GetCampaign(ctx context.Context, id string) (repository.Campaign, error)
	ListCampaigns(ctx context.Context, status string, limit int) ([]repository.Campaign, error)
	CountCampaigns(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name LedgerGateway . LedgerGateway
type LedgerGateway interface {
	CreateCampaign(ctx context.Context, params ethereum.CampaignParams) (ethereum.CampaignCreated, error)
	GetCampaign(ctx context.Context, campaignID *big.Int) (ethereum.CampaignData, error)
	Status(ctx context.Context) (ethereum.Status, error)
}

// SessionResolver turns a session token into the identity it was issued for.
//
//counterfeiter:generate -o fake -fake-name SessionResolver . SessionResolver
type SessionResolver interface {
	Caller(ctx context.Context, token string) (ProviderSession, error)
}
