package payload

import (
	"bytes"
	"crowdledger/internal/core"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount accepts a JSON number or a numeric string.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q is not a number", s)
		}
		*a = Amount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("amount is not a number: %w", err)
	}
	*a = Amount(v)
	return nil
}

type CreateCampaignRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	GoalAmountUSD    Amount `json:"goalAmountUsd"`
	BeneficiaryName  string `json:"beneficiaryName"`
	BeneficiaryEmail string `json:"beneficiaryEmail"`
	Country          string `json:"country"`
	PayoutMethod     string `json:"payoutMethod"`
}

func (c CreateCampaignRequest) ToMessage() core.CampaignRequest {
	return core.CampaignRequest{
		Title:            c.Title,
		Description:      c.Description,
		GoalAmountUSD:    float64(c.GoalAmountUSD),
		BeneficiaryName:  c.BeneficiaryName,
		BeneficiaryEmail: c.BeneficiaryEmail,
		Country:          c.Country,
		PayoutMethod:     c.PayoutMethod,
	}
}
