package feehook

import (
	"errors"
	"math/big"
	"testing"

	"questfee/fixedmath"
)

func TestDirectionalFeeZeroAtOrPastEquilibrium(t *testing.T) {
	cases := []struct {
		name string
		in   *big.Int
		out  *big.Int
	}{
		{"balanced", wad(50), wad(50)},
		{"helpful direction", wad(40), wad(100)},
		{"in zero", big.NewInt(0), wad(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fee, err := DirectionalFeePercentage(tc.in, tc.out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fee.Sign() != 0 {
				t.Fatalf("expected zero fee, got %s", fee)
			}
		})
	}
}

func TestDirectionalFeeWorkedExample(t *testing.T) {
	// in=100, out=40 gives 60/140 of the liquidity out of balance.
	fee, err := DirectionalFeePercentage(wad(100), wad(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := new(big.Int).SetString("428571428571428571", 10)
	if fee.Cmp(want) != 0 {
		t.Fatalf("fee = %s, want %s", fee, want)
	}
}

func TestDirectionalFeeBoundedAndMonotonic(t *testing.T) {
	prev := big.NewInt(-1)
	// Growing imbalance at constant total liquidity must grow the fee while
	// staying strictly inside (0, 1).
	for in := int64(51); in <= 99; in += 6 {
		out := 100 - in
		fee, err := DirectionalFeePercentage(wad(in), wad(out))
		if err != nil {
			t.Fatalf("in=%d: %v", in, err)
		}
		if fee.Sign() <= 0 || fee.Cmp(fixedmath.One) >= 0 {
			t.Fatalf("in=%d: fee %s out of (0, 1)", in, fee)
		}
		if fee.Cmp(prev) <= 0 {
			t.Fatalf("in=%d: fee %s not greater than previous %s", in, fee, prev)
		}
		prev = fee
	}
}

func TestDirectionalFeeZeroLiquidity(t *testing.T) {
	if _, err := DirectionalFeePercentage(big.NewInt(0), big.NewInt(0)); !errors.Is(err, fixedmath.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestDirectionalFeeNilBalances(t *testing.T) {
	if _, err := DirectionalFeePercentage(nil, wad(1)); !errors.Is(err, ErrNilAmount) {
		t.Fatalf("expected ErrNilAmount, got %v", err)
	}
}
