package feehook

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"questfee/core/events"
	"questfee/fixedmath"
)

// OnAfterSwap is invoked exactly once after the settlement authority has
// computed a swap's provisional amount. It recomputes the directional fee on
// the actual post-swap balances, withholds the hook's share, records it in
// the fee ledger, and pulls the fee into custody. The returned amount keeps
// the authority's debits and credits consistent: the fee is denominated in
// the calculated asset, subtracted from what the caller receives on
// exact-input swaps and added to what the caller pays on exact-output swaps.
func (e *Engine) OnAfterSwap(ctx *SwapContext) (*big.Int, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if ctx.AmountCalculated == nil {
		return nil, ErrNilAmount
	}
	directional, err := e.directionalFee(ctx.BalanceIn, ctx.BalanceOut, ctx.StaticFeePct)
	if err != nil {
		return nil, err
	}
	hookFeePct := e.hookFeePercentage(directional)
	if hookFeePct.Sign() == 0 {
		return new(big.Int).Set(ctx.AmountCalculated), nil
	}

	// The provisional amount already had the full directional fee applied
	// and the hook share withheld from it; undo both to recover the pre-fee
	// base before charging the hook percentage.
	multiplier := new(big.Int).Add(fixedmath.One, directional)
	multiplier.Sub(multiplier, hookFeePct)
	preFee := fixedmath.MulDown(ctx.AmountCalculated, multiplier)
	fee := fixedmath.MulDown(preFee, hookFeePct)
	if fee.Sign() == 0 {
		return new(big.Int).Set(ctx.AmountCalculated), nil
	}

	var feeAsset common.Address
	adjusted := new(big.Int)
	switch ctx.Kind {
	case SwapKindExactIn:
		feeAsset = ctx.AssetOut
		adjusted.Sub(ctx.AmountCalculated, fee)
	case SwapKindExactOut:
		feeAsset = ctx.AssetIn
		adjusted.Add(ctx.AmountCalculated, fee)
	default:
		return nil, fmt.Errorf("feehook: unknown swap kind %d", ctx.Kind)
	}
	if adjusted.Sign() < 0 {
		return nil, ErrNegativeAmount
	}

	// Pull the fee into custody before recording it: the ledger counts fees
	// actually held, so a failed pull must leave it untouched.
	if err := e.authority.SendTo(feeAsset, fee); err != nil {
		return nil, fmt.Errorf("feehook: pull fee: %w", err)
	}
	if err := e.creditFee(ctx.Pool, feeAsset, fee); err != nil {
		return nil, err
	}
	e.state.AppendEvent(events.FeeCharged{Pool: ctx.Pool, Asset: feeAsset, Amount: fee}.Event())
	return adjusted, nil
}
