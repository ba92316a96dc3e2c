package quest

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// BpsDenominator is the scaling factor for the board's platform fee ratio.
const BpsDenominator = 10_000

// RouteStep is one hop of a conversion route supplied by the caller. The
// engine forwards routes opaquely to the router.
type RouteStep struct {
	Pool     common.Address
	AssetIn  common.Address
	AssetOut common.Address
}

// ConversionLeg is a single input of a batched conversion request.
type ConversionLeg struct {
	AssetIn      common.Address
	Steps        []RouteStep
	AmountIn     *big.Int
	MinAmountOut *big.Int
}

// BeneficiaryRegistry resolves the delegated campaign target for a pool.
type BeneficiaryRegistry interface {
	Beneficiary(pool common.Address) (common.Address, bool, error)
}

// ConversionRouter executes a batched conversion and credits the resulting
// incentive asset to the hook's custody.
type ConversionRouter interface {
	Convert(legs []ConversionLeg, deadline time.Time, wrapNative bool) error
}

// CampaignSettings is the per-asset campaign configuration supplied by the
// settings registry.
type CampaignSettings struct {
	Duration         uint64
	MinRewardPerVote *big.Int
	MaxRewardPerVote *big.Int
	VoteType         uint8
	CloseType        uint8
	VoterList        []common.Address
}

// SettingsRegistry supplies campaign configuration for an incentive asset.
type SettingsRegistry interface {
	SettingsFor(asset common.Address) (CampaignSettings, error)
}

// CampaignRequest carries everything the board needs to issue a campaign.
type CampaignRequest struct {
	Beneficiary common.Address
	Asset       common.Address
	// ImmediateOnly is false because the epoch gate already guarantees the
	// prior campaign has finished; creation may proceed in the current
	// period.
	ImmediateOnly    bool
	Duration         uint64
	MinRewardPerVote *big.Int
	MaxRewardPerVote *big.Int
	RewardAmount     *big.Int
	BoardFee         *big.Int
	VoteType         uint8
	CloseType        uint8
	VoterList        []common.Address
}

// CampaignBoard is the external board that issues campaigns and tracks their
// reward periods.
type CampaignBoard interface {
	PlatformFeeRatio() (uint64, error)
	CurrentPeriod() (uint64, error)
	CampaignPeriods(id uint64) ([]uint64, error)
	CreateCampaign(req CampaignRequest) (uint64, error)
}

// Custodian reports and manages the tokens held by the hook between
// conversion and campaign creation.
type Custodian interface {
	Balance(asset common.Address) (*big.Int, error)
	Approve(asset, spender common.Address, amount *big.Int) error
}
