package feehook

import (
	"math/big"

	"questfee/fixedmath"
)

// DirectionalFeePercentage maps two post-swap scaled balances to a fee
// percentage. A swap that leaves the pool at or past equilibrium in the
// helpful direction pays nothing; otherwise the fee is the imbalance as a
// fraction of total liquidity, approximating a linear-pool response. Both
// balances must be expressed in the same rate-adjusted 18-decimal unit.
func DirectionalFeePercentage(finalBalanceIn, finalBalanceOut *big.Int) (*big.Int, error) {
	if finalBalanceIn == nil || finalBalanceOut == nil {
		return nil, ErrNilAmount
	}
	// Zero liquidity would make the ratio meaningless; treat it as the
	// arithmetic fault it is rather than quoting a free swap.
	if finalBalanceIn.Sign() == 0 && finalBalanceOut.Sign() == 0 {
		return nil, fixedmath.ErrDivisionByZero
	}
	if finalBalanceIn.Cmp(finalBalanceOut) <= 0 {
		return big.NewInt(0), nil
	}
	imbalance := new(big.Int).Sub(finalBalanceIn, finalBalanceOut)
	liquidity := new(big.Int).Add(finalBalanceIn, finalBalanceOut)
	return fixedmath.DivDown(imbalance, liquidity)
}
