package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type CampaignParams struct {
	Title              string
	Description        string
	GoalAmountUSD      float64
	BeneficiaryAddress common.Address
	DurationDays       int
}

// CampaignCreated is the decoded CampaignCreated event of a creation receipt.
type CampaignCreated struct {
	CampaignID  *big.Int
	Title       string
	Creator     common.Address
	Beneficiary common.Address
	GoalAmount  *big.Int
	StartTime   uint64
	EndTime     uint64
	TxHash      string
}

// CampaignData is the on-chain view of a campaign. Amounts are in ether.
type CampaignData struct {
	CampaignID   string `json:"campaignId"` // decimal uint256
	Title        string `json:"title"`
	Description  string `json:"description"`
	GoalAmount   string `json:"goalAmount"`
	RaisedAmount string `json:"raisedAmount"`
	Beneficiary  string `json:"beneficiary"`
	Creator      string `json:"creator"`
	StartTime    uint64 `json:"startTime"`
	EndTime      uint64 `json:"endTime"`
	IsActive     bool   `json:"isActive"`
	GoalReached  bool   `json:"goalReached"`
}

// Status is a snapshot of the deployer wallet and contract.
type Status struct {
	WalletBalance  string `json:"walletBalance"`
	GasPriceGwei   string `json:"gasPriceGwei"`
	TotalCampaigns uint64 `json:"totalCampaigns"`
}

// raw shapes the abi package unpacks into; field names follow the ABI argument names.
type campaignCreatedLog struct {
	CampaignId  *big.Int
	Title       string
	Creator     common.Address
	Beneficiary common.Address
	GoalAmount  *big.Int
	StartTime   *big.Int
	EndTime     *big.Int
}

type campaignTuple struct {
	Title        string
	Description  string
	GoalAmount   *big.Int
	RaisedAmount *big.Int
	Beneficiary  common.Address
	Creator      common.Address
	StartTime    *big.Int
	EndTime      *big.Int
	IsActive     bool
	GoalReached  bool
}
