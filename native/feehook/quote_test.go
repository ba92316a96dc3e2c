package feehook

import (
	"errors"
	"math/big"
	"testing"
)

func TestQuoteUsesDirectionalFeeWhenLarger(t *testing.T) {
	engine, st, _ := newTestEngine(t, new(big.Int).Div(wad(1), big.NewInt(10)))

	// Pre-swap balances 60/80 with 40 given estimate post-swap balances of
	// 100/40, an imbalance of 60/140.
	quote, err := engine.OnComputeDynamicFee(wad(60), wad(80), wad(40), big.NewInt(3_000_000_000_000_000))
	if err != nil {
		t.Fatalf("OnComputeDynamicFee: %v", err)
	}
	want, _ := new(big.Int).SetString("385714285714285714", 10)
	if quote.Cmp(want) != 0 {
		t.Fatalf("quote = %s, want %s", quote, want)
	}
	if len(st.events) != 0 {
		t.Fatalf("quote must be side-effect free, got events %+v", st.events)
	}
}

func TestQuoteFallsBackToStaticFee(t *testing.T) {
	engine, _, _ := newTestEngine(t, new(big.Int).Div(wad(1), big.NewInt(10)))

	// A swap toward equilibrium quotes no directional surcharge, so the
	// static fee survives minus the hook share.
	static := big.NewInt(3_000_000_000_000_000)
	quote, err := engine.OnComputeDynamicFee(wad(40), wad(100), wad(10), static)
	if err != nil {
		t.Fatalf("OnComputeDynamicFee: %v", err)
	}
	want := big.NewInt(2_700_000_000_000_000)
	if quote.Cmp(want) != 0 {
		t.Fatalf("quote = %s, want %s", quote, want)
	}
}

func TestQuoteAmountExceedingOutBalance(t *testing.T) {
	engine, _, _ := newTestEngine(t, new(big.Int).Div(wad(1), big.NewInt(10)))

	// A given amount larger than the out balance drives the estimated
	// post-swap balance negative; the floor rounding keeps the quote exact
	// instead of truncating the negative intermediates toward zero.
	quote, err := engine.OnComputeDynamicFee(wad(60), wad(80), wad(100), big.NewInt(3_000_000_000_000_000))
	if err != nil {
		t.Fatalf("OnComputeDynamicFee: %v", err)
	}
	want, _ := new(big.Int).SetString("1157142857142857143", 10)
	if quote.Cmp(want) != 0 {
		t.Fatalf("quote = %s, want %s", quote, want)
	}
}

func TestQuoteZeroFeeShareReturnsDirectionalFee(t *testing.T) {
	engine, _, _ := newTestEngine(t, big.NewInt(0))
	quote, err := engine.OnComputeDynamicFee(wad(60), wad(80), wad(40), big.NewInt(0))
	if err != nil {
		t.Fatalf("OnComputeDynamicFee: %v", err)
	}
	want, _ := new(big.Int).SetString("428571428571428571", 10)
	if quote.Cmp(want) != 0 {
		t.Fatalf("quote = %s, want %s", quote, want)
	}
}

func TestQuoteNilStaticFee(t *testing.T) {
	engine, _, _ := newTestEngine(t, big.NewInt(0))
	if _, err := engine.OnComputeDynamicFee(wad(60), wad(80), wad(40), nil); !errors.Is(err, ErrNilAmount) {
		t.Fatalf("expected ErrNilAmount for nil static fee, got %v", err)
	}
}

func TestQuoteAgreesWithSettlement(t *testing.T) {
	engine, st, _ := newTestEngine(t, new(big.Int).Div(wad(1), big.NewInt(10)))
	static := big.NewInt(3_000_000_000_000_000)

	quote, err := engine.OnComputeDynamicFee(wad(60), wad(80), wad(40), static)
	if err != nil {
		t.Fatalf("OnComputeDynamicFee: %v", err)
	}
	directional, err := DirectionalFeePercentage(wad(100), wad(40))
	if err != nil {
		t.Fatalf("DirectionalFeePercentage: %v", err)
	}
	// The carved-out hook share implied by the quote must be exactly the
	// share the settlement path withholds when the estimate was accurate.
	impliedHookPct := new(big.Int).Sub(directional, quote)

	adjusted, err := engine.OnAfterSwap(&SwapContext{
		Kind:             SwapKindExactIn,
		Pool:             testPool,
		AssetIn:          testAssetIn,
		AssetOut:         testAssetOut,
		BalanceIn:        wad(100),
		BalanceOut:       wad(40),
		StaticFeePct:     static,
		AmountCalculated: wad(1000),
	})
	if err != nil {
		t.Fatalf("OnAfterSwap: %v", err)
	}
	fee := new(big.Int).Sub(wad(1000), adjusted)
	ledgered, err := st.FeeLedgerAmount(testPool, testAssetOut)
	if err != nil {
		t.Fatalf("FeeLedgerAmount: %v", err)
	}
	if ledgered.Cmp(fee) != 0 {
		t.Fatalf("ledgered fee %s does not match deducted fee %s", ledgered, fee)
	}
	if impliedHookPct.Cmp(engine.hookFeePercentage(directional)) != 0 {
		t.Fatalf("quote and settlement disagree on the hook share: %s vs %s",
			impliedHookPct, engine.hookFeePercentage(directional))
	}
}
