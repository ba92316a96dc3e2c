package feehook

import (
	"math/big"
)

// OnComputeDynamicFee quotes the fee percentage that will apply to a swap
// before it executes. The post-swap balances are estimated by linearly adding
// the given amount to the in balance and subtracting it from the out balance;
// the settlement adjustment relies on the same approximation, so the two call
// sites agree whenever the estimate was accurate. The returned percentage is
// the portion retained by the pool after the hook share has been carved out.
//
// This is a pure read: the authority may call it speculatively before
// committing to the swap.
func (e *Engine) OnComputeDynamicFee(balanceIn, balanceOut, amountGiven, staticFeePct *big.Int) (*big.Int, error) {
	if balanceIn == nil || balanceOut == nil || amountGiven == nil {
		return nil, ErrNilAmount
	}
	estimatedIn := new(big.Int).Add(balanceIn, amountGiven)
	estimatedOut := new(big.Int).Sub(balanceOut, amountGiven)
	directional, err := e.directionalFee(estimatedIn, estimatedOut, staticFeePct)
	if err != nil {
		return nil, err
	}
	hookFee := e.hookFeePercentage(directional)
	return new(big.Int).Sub(directional, hookFee), nil
}
