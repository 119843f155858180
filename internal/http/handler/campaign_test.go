package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"crowdledger/internal/core"
	"crowdledger/internal/ethereum"
	"crowdledger/internal/http/handler"
	"crowdledger/internal/http/handler/fake"
	"crowdledger/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const campaignBody = `{
	"title": "Help Rebuild Our Town Library",
	"description": "Our town library was damaged in the storm and needs a new roof.",
	"goalAmountUsd": 5000,
	"beneficiaryName": "Jane Doe",
	"beneficiaryEmail": "jane@example.com",
	"country": "US",
	"payoutMethod": "Bank Transfer"
}`

var _ = Describe("CampaignHandler", func() {
	var (
		ch            *handler.CampaignHandler
		fakeService   *fake.CampaignService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.CampaignService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		ch = handler.NewCampaignHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleCreateCampaign", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/campaigns/create", strings.NewReader(campaignBody))
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: "session-token"})

			fakeService.CreateCampaignReturns(core.CampaignReceipt{
				ID:         "record-1",
				CampaignID: "7",
				Title:      "Help Rebuild Our Town Library",
				Status:     core.StatusPending,
			}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleCreateCampaign(w, req)
		})

		When("the campaign is created", func() {
			It("should return the receipt", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response handler.CreateCampaignResponse
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Success).To(BeTrue())
				Expect(response.Campaign.ID).To(Equal("record-1"))
				Expect(response.Campaign.CampaignID).To(Equal("7"))
				Expect(response.Campaign.Status).To(Equal("pending"))
			})

			It("should pass the session token and decoded request", func() {
				Expect(fakeService.CreateCampaignCallCount()).To(Equal(1))
				_, token, msg := fakeService.CreateCampaignArgsForCall(0)
				Expect(token).To(Equal("session-token"))
				Expect(msg.Title).To(Equal("Help Rebuild Our Town Library"))
				Expect(msg.GoalAmountUSD).To(Equal(5000.0))
				Expect(msg.PayoutMethod).To(Equal("Bank Transfer"))
			})
		})

		When("the token comes as a bearer header", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/campaigns/create", strings.NewReader(campaignBody))
				req.Header.Set("Authorization", "Bearer header-token")
			})

			It("should use it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, token, _ := fakeService.CreateCampaignArgsForCall(0)
				Expect(token).To(Equal("header-token"))
			})
		})

		When("the client sends keys the request does not declare", func() {
			BeforeEach(func() {
				body := strings.Replace(campaignBody, `"title"`, `"creatorEmail": "jane@example.com",
	"title"`, 1)
				req = httptest.NewRequest("POST", "/api/campaigns/create", strings.NewReader(body))
				req.Header.Set("Authorization", "Bearer session-token")
			})

			It("should ignore them and create the campaign", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeService.CreateCampaignCallCount()).To(Equal(1))
				_, _, msg := fakeService.CreateCampaignArgsForCall(0)
				Expect(msg.Title).To(Equal("Help Rebuild Our Town Library"))
			})
		})

		When("there is no session", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/campaigns/create", strings.NewReader(campaignBody))
			})

			It("should return 401 without decoding or calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(0))
				Expect(fakeService.CreateCampaignCallCount()).To(Equal(0))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.CreateCampaignCallCount()).To(Equal(0))
			})
		})

		When("the ledger fails", func() {
			BeforeEach(func() {
				fakeService.CreateCampaignReturns(core.CampaignReceipt{}, fmt.Errorf("%w: failed to create campaign: out of gas", core.ErrLedger))
			})

			It("should put the headline in error and the cause in details", func() {
				var response handler.ErrorResponse
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Error).To(Equal("Failed to create campaign on blockchain"))
				Expect(response.Details).To(ContainSubstring("out of gas"))
			})
		})
	})

	Describe("HandleCreateCampaign errors", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/campaigns/create", strings.NewReader(campaignBody))
			req.Header.Set("Authorization", "Bearer session-token")
		})

		DescribeTable("service errors",
			func(serviceErr error, code int, message string) {
				fakeService.CreateCampaignReturns(core.CampaignReceipt{}, serviceErr)
				ch.HandleCreateCampaign(w, req)

				Expect(w.Code).To(Equal(code))
				var response handler.ErrorResponse
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Error).To(Equal(message))
			},
			Entry("invalid session", fmt.Errorf("%w: expired", core.ErrUnauthorized), http.StatusUnauthorized, "Unauthorized"),
			Entry("missing fields", fmt.Errorf("%w: title: cannot be blank", core.ErrValidation), http.StatusBadRequest, "Missing required fields"),
			Entry("unknown user", core.ErrUserNotFound, http.StatusNotFound, "User not found"),
			Entry("ledger failure", fmt.Errorf("%w: out of gas", core.ErrLedger), http.StatusInternalServerError, "Failed to create campaign on blockchain"),
			Entry("store failure", fmt.Errorf("%w: conn reset", core.ErrStore), http.StatusInternalServerError, "Internal server error"),
		)
	})

	Describe("HandleListCampaigns", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/campaigns?status=pending&limit=5", nil)
			fakeService.ListCampaignsReturns([]core.CampaignRecord{{ID: "c-1"}, {ID: "c-2"}}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleListCampaigns(w, req)
		})

		It("should forward the filters and return the campaigns", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, status, limit := fakeService.ListCampaignsArgsForCall(0)
			Expect(status).To(Equal("pending"))
			Expect(limit).To(Equal(5))

			var response map[string][]core.CampaignRecord
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["campaigns"]).To(HaveLen(2))
		})

		When("the limit is not a number", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/campaigns?limit=ten", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ListCampaignsCallCount()).To(Equal(0))
			})
		})

		When("the status is unknown", func() {
			BeforeEach(func() {
				fakeService.ListCampaignsReturns(nil, fmt.Errorf("%w: status", core.ErrValidation))
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.ListCampaignsReturns(nil, fmt.Errorf("%w: %w", core.ErrStore, fakeErr))
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleLedgerStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/ledger/status", nil)
		})

		JustBeforeEach(func() {
			ch.HandleLedgerStatus(w, req)
		})

		When("the ledger answers", func() {
			BeforeEach(func() {
				fakeService.LedgerStatusReturns(ethereum.Status{
					WalletBalance:  "1.5",
					GasPriceGwei:   "20.0",
					TotalCampaigns: 7,
				}, nil)
			})

			It("should return the status", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"1.5"`))
			})
		})

		When("the ledger fails", func() {
			BeforeEach(func() {
				fakeService.LedgerStatusReturns(ethereum.Status{}, fmt.Errorf("%w: %w", core.ErrLedger, fakeErr))
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleHealth", func() {
		var response handler.HealthResponse

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/health", nil)
			response = handler.HealthResponse{}
		})

		JustBeforeEach(func() {
			ch.HandleHealth(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("the store is reachable", func() {
			BeforeEach(func() {
				fakeService.HealthReturns(3, nil)
			})

			It("should report the campaign count", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response.Success).To(BeTrue())
				Expect(response.Message).To(Equal("Database connected successfully"))
				Expect(response.CampaignCount).To(Equal(int64(3)))
			})
		})

		When("the store is down", func() {
			BeforeEach(func() {
				fakeService.HealthReturns(0, fmt.Errorf("%w: %w", core.ErrStore, fakeErr))
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Success).To(BeFalse())
				Expect(response.Message).To(Equal("Database connection failed"))
				Expect(response.Error).To(ContainSubstring(fakeErr.Error()))
			})
		})
	})
})
