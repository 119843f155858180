package handler

import (
	"context"
	"crowdledger/internal/core"
	"crowdledger/internal/ethereum"
	"crowdledger/internal/oauth"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CampaignService . CampaignService
type CampaignService interface {
	CreateCampaign(ctx context.Context, token string, req core.CampaignRequest) (core.CampaignReceipt, error)
	ListCampaigns(ctx context.Context, status string, limit int) ([]core.CampaignRecord, error)
	GetCampaign(ctx context.Context, id string) (core.CampaignRecord, error)
	CampaignOnChain(ctx context.Context, id string) (core.OnChainCampaign, error)
	LedgerStatus(ctx context.Context) (ethereum.Status, error)
	Health(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name IdentityService . IdentityService
type IdentityService interface {
	SignIn(ctx context.Context, profile core.Profile) (string, error)
	Session(ctx context.Context, token string) (core.SessionView, error)
}

//counterfeiter:generate -o fake -fake-name OAuthProvider . OAuthProvider
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (oauth.Profile, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
