package handler

import (
	"crowdledger/internal/core"
	"crowdledger/internal/http/handler/middleware"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	SessionCookie = "session_token"
	StateCookie   = "oauth_state"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// ErrorResponse is the failure body of campaign creation, a headline with the
// underlying detail when there is one.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type CreateCampaignResponse struct {
	Success  bool                 `json:"success"`
	Campaign core.CampaignReceipt `json:"campaign"`
}

type HealthResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	CampaignCount int64  `json:"campaignCount"`
	Error         string `json:"error,omitempty"`
}

type responder struct {
	logs *zap.SugaredLogger
}

func (h responder) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

// sessionToken reads the session cookie, falling back to a bearer token.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
