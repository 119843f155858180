package payload_test

import (
	"crowdledger/internal/core"
	"crowdledger/internal/http/payload"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		req     payload.CreateCampaignRequest
	)

	decode := func(body string) error {
		r := httptest.NewRequest("POST", "/api/campaigns/create", strings.NewReader(body))
		return decoder.DecodeJSONPayload(r, &req)
	}

	BeforeEach(func() {
		req = payload.CreateCampaignRequest{}
	})

	It("should decode a campaign request", func() {
		err := decode(`{
			"title": "Help Rebuild Our Town Library",
			"description": "A new roof",
			"goalAmountUsd": 5000,
			"beneficiaryName": "Jane Doe",
			"beneficiaryEmail": "jane@example.com",
			"country": "US",
			"payoutMethod": "Bank Transfer"
		}`)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.ToMessage()).To(Equal(core.CampaignRequest{
			Title:            "Help Rebuild Our Town Library",
			Description:      "A new roof",
			GoalAmountUSD:    5000,
			BeneficiaryName:  "Jane Doe",
			BeneficiaryEmail: "jane@example.com",
			Country:          "US",
			PayoutMethod:     "Bank Transfer",
		}))
	})

	It("should accept the goal amount as a string", func() {
		Expect(decode(`{"goalAmountUsd": "2500.50"}`)).To(Succeed())
		Expect(float64(req.GoalAmountUSD)).To(Equal(2500.5))
	})

	It("should treat an empty goal amount as missing", func() {
		Expect(decode(`{"goalAmountUsd": ""}`)).To(Succeed())
		Expect(req.GoalAmountUSD).To(BeZero())
	})

	It("should reject a non numeric goal amount", func() {
		Expect(decode(`{"goalAmountUsd": "lots"}`)).To(MatchError(ContainSubstring("not a number")))
	})

	It("should ignore keys the request does not declare", func() {
		Expect(decode(`{"title": "x", "creatorEmail": "jane@example.com", "campaignId": "7"}`)).To(Succeed())
		Expect(req.Title).To(Equal("x"))
	})

	It("should reject malformed json", func() {
		Expect(decode(`{"title": `)).To(HaveOccurred())
	})
})
