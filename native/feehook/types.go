package feehook

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"questfee/fixedmath"
)

// SwapKind distinguishes which leg of a swap the settlement authority fixed
// up front.
type SwapKind uint8

const (
	// SwapKindExactIn means the caller fixed the input amount; the output
	// amount is the calculated leg.
	SwapKindExactIn SwapKind = iota
	// SwapKindExactOut means the caller fixed the output amount; the input
	// amount is the calculated leg.
	SwapKindExactOut
)

// Config captures the immutable hook configuration. Every address must be
// non-zero and the fee share must not exceed fixedmath.One (100%).
type Config struct {
	// FeeShare is the fixed-point fraction of the directional fee retained
	// by the hook for quest funding.
	FeeShare *big.Int
	// AllowedFactory is the only pool factory whose pools may register.
	AllowedFactory common.Address
	// Authority is the settlement authority holding pool balances.
	Authority common.Address
	// Router executes batched token conversions during quest creation.
	Router common.Address
	// Board issues and tracks incentive campaigns.
	Board common.Address
	// BeneficiaryRegistry maps pools to their delegated campaign target.
	BeneficiaryRegistry common.Address
	// SettingsRegistry supplies per-asset campaign configuration.
	SettingsRegistry common.Address
	// IncentiveAsset is the token every quest is denominated in.
	IncentiveAsset common.Address
}

// Validate rejects configurations that would be unrecoverable at runtime.
func (c Config) Validate() error {
	if c.FeeShare == nil || c.FeeShare.Sign() < 0 {
		return ErrNilFeeShare
	}
	if c.FeeShare.Cmp(fixedmath.One) > 0 {
		return ErrFeeShareTooHigh
	}
	for _, addr := range []common.Address{
		c.AllowedFactory,
		c.Authority,
		c.Router,
		c.Board,
		c.BeneficiaryRegistry,
		c.SettingsRegistry,
		c.IncentiveAsset,
	} {
		if addr == (common.Address{}) {
			return ErrZeroAddress
		}
	}
	return nil
}

// SwapContext carries everything the settlement authority knows about a swap
// when it invokes the after-swap adjustment.
type SwapContext struct {
	Kind     SwapKind
	Pool     common.Address
	AssetIn  common.Address
	AssetOut common.Address
	// BalanceIn and BalanceOut are the post-swap scaled balances of the two
	// involved assets, expressed in the same rate-adjusted 18-decimal unit.
	BalanceIn  *big.Int
	BalanceOut *big.Int
	// StaticFeePct is the externally configured static swap fee percentage.
	StaticFeePct *big.Int
	// AmountCalculated is the provisional settlement amount computed by the
	// authority, in token-native units of the calculated asset.
	AmountCalculated *big.Int
}
