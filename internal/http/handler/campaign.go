package handler

import (
	"crowdledger/internal/core"
	"crowdledger/internal/http/payload"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	CreateCampaign  = "POST /api/campaigns/create"
	ListCampaigns   = "GET /api/campaigns"
	GetCampaign     = "GET /api/campaigns/{id}"
	CampaignOnChain = "GET /api/campaigns/{id}/onchain"
	LedgerStatus    = "GET /api/ledger/status"
	Health          = "GET /api/health"
)

type CampaignHandler struct {
	responder
	requestValidator RequestValidator
	campaigns        CampaignService
}

func NewCampaignHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, campaignService CampaignService) *CampaignHandler {
	return &CampaignHandler{
		responder:        responder{logs: logger},
		requestValidator: requestValidator,
		campaigns:        campaignService,
	}
}

func (h *CampaignHandler) HandleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token := sessionToken(r)
	if token == "" {
		h.respond(w, ErrorResponse{
			Error: "Unauthorized",
		}, http.StatusUnauthorized,
			requestId)
		return
	}

	var body payload.CreateCampaignRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &body); err != nil {
		h.respond(w, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", CreateCampaign,
			"request_id", requestId)
		return
	}

	receipt, err := h.campaigns.CreateCampaign(r.Context(), token, body.ToMessage())
	if err != nil {
		resp := ErrorResponse{}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrUnauthorized):
			httpCode = http.StatusUnauthorized
			resp.Error = "Unauthorized"
		case errors.Is(err, core.ErrValidation):
			httpCode = http.StatusBadRequest
			resp.Error = "Missing required fields"
			resp.Details = err.Error()
		case errors.Is(err, core.ErrUserNotFound):
			httpCode = http.StatusNotFound
			resp.Error = "User not found"
		case errors.Is(err, core.ErrLedger):
			resp.Error = "Failed to create campaign on blockchain"
			resp.Details = err.Error()
		default:
			resp.Error = "Internal server error"
			resp.Details = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("campaign creation failed",
			"error", err,
			"status", httpCode,
			"handler", CreateCampaign,
			"request_id", requestId)
		return
	}

	h.logs.Infow("campaign created",
		"id", receipt.ID,
		"campaign_id", receipt.CampaignID,
		"handler", CreateCampaign,
		"request_id", requestId)

	h.respond(w, CreateCampaignResponse{
		Success:  true,
		Campaign: receipt,
	}, http.StatusOK, requestId)
}

func (h *CampaignHandler) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respond(w, Response{
				Message: "Could not list campaigns",
				Error:   fmt.Errorf("parse limit: %w", err).Error(),
			}, http.StatusBadRequest,
				requestId)
			return
		}
		limit = n
	}

	campaigns, err := h.campaigns.ListCampaigns(r.Context(), query.Get("status"), limit)
	if err != nil {
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrValidation) {
			httpCode = http.StatusBadRequest
		}
		h.respond(w, Response{
			Message: "Could not list campaigns",
			Error:   err.Error(),
		}, httpCode,
			requestId)
		h.logs.Errorw("failed to list campaigns",
			"error", err,
			"handler", ListCampaigns,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.CampaignRecord{
		"campaigns": campaigns,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CampaignHandler) HandleGetCampaign(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := chi.URLParam(r, "id")

	campaign, err := h.campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.respondLookupErr(w, err, GetCampaign, requestId)
		return
	}

	resp := map[string]core.CampaignRecord{
		"campaign": campaign,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CampaignHandler) HandleCampaignOnChain(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := chi.URLParam(r, "id")

	campaign, err := h.campaigns.CampaignOnChain(r.Context(), id)
	if err != nil {
		h.respondLookupErr(w, err, CampaignOnChain, requestId)
		return
	}

	h.respond(w, campaign, http.StatusOK, requestId)
}

func (h *CampaignHandler) HandleLedgerStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	status, err := h.campaigns.LedgerStatus(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not read ledger status",
			Error:   err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to read ledger status",
			"error", err,
			"handler", LedgerStatus,
			"request_id", requestId)
		return
	}

	h.respond(w, status, http.StatusOK, requestId)
}

func (h *CampaignHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	count, err := h.campaigns.Health(r.Context())
	if err != nil {
		h.respond(w, HealthResponse{
			Success: false,
			Message: "Database connection failed",
			Error:   err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("health check failed",
			"error", err,
			"handler", Health,
			"request_id", requestId)
		return
	}

	h.respond(w, HealthResponse{
		Success:       true,
		Message:       "Database connected successfully",
		CampaignCount: count,
	}, http.StatusOK, requestId)
}

func (h *CampaignHandler) respondLookupErr(w http.ResponseWriter, err error, route, requestId string) {
	httpCode := http.StatusInternalServerError
	message := "Could not retrieve campaign"
	if errors.Is(err, core.ErrCampaignNotFound) {
		httpCode = http.StatusNotFound
		message = "Campaign not found"
	}

	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, httpCode,
		requestId)
	h.logs.Errorw("campaign lookup failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}
