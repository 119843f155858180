package ethereum

// CampaignContractABI is the interface of the multi-campaign escrow contract.
const CampaignContractABI = `[
	{"type":"function","name":"createCampaign","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"title","type":"string"},
		{"name":"description","type":"string"},
		{"name":"goalAmount","type":"uint256"},
		{"name":"beneficiary","type":"address"},
		{"name":"duration","type":"uint256"}],
	 "outputs":[{"name":"campaignId","type":"uint256"}]},
	{"type":"function","name":"getCampaign","stateMutability":"view",
	 "inputs":[{"name":"campaignId","type":"uint256"}],
	 "outputs":[
		{"name":"title","type":"string"},
		{"name":"description","type":"string"},
		{"name":"goalAmount","type":"uint256"},
		{"name":"raisedAmount","type":"uint256"},
		{"name":"beneficiary","type":"address"},
		{"name":"creator","type":"address"},
		{"name":"startTime","type":"uint256"},
		{"name":"endTime","type":"uint256"},
		{"name":"isActive","type":"bool"},
		{"name":"goalReached","type":"bool"}]},
	{"type":"function","name":"getTotalCampaigns","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"donate","stateMutability":"payable",
	 "inputs":[{"name":"campaignId","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"withdrawFunds","stateMutability":"nonpayable",
	 "inputs":[{"name":"campaignId","type":"uint256"}],
	 "outputs":[]},
	{"type":"event","name":"CampaignCreated","anonymous":false,
	 "inputs":[
		{"name":"campaignId","type":"uint256","indexed":true},
		{"name":"title","type":"string","indexed":false},
		{"name":"creator","type":"address","indexed":true},
		{"name":"beneficiary","type":"address","indexed":true},
		{"name":"goalAmount","type":"uint256","indexed":false},
		{"name":"startTime","type":"uint256","indexed":false},
		{"name":"endTime","type":"uint256","indexed":false}]},
	{"type":"event","name":"DonationReceived","anonymous":false,
	 "inputs":[
		{"name":"campaignId","type":"uint256","indexed":true},
		{"name":"donor","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false}]},
	{"type":"event","name":"FundsWithdrawn","anonymous":false,
	 "inputs":[
		{"name":"campaignId","type":"uint256","indexed":true},
		{"name":"beneficiary","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false}]},
	{"type":"event","name":"GoalReached","anonymous":false,
	 "inputs":[
		{"name":"campaignId","type":"uint256","indexed":true},
		{"name":"totalRaised","type":"uint256","indexed":false}]}
]`

const (
	methodCreateCampaign    = "createCampaign"
	methodGetCampaign       = "getCampaign"
	methodGetTotalCampaigns = "getTotalCampaigns"
	methodDonate            = "donate"
	methodWithdrawFunds     = "withdrawFunds"

	eventCampaignCreated = "CampaignCreated"
)
