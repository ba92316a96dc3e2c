package fixedmath

import (
	"errors"
	"math/big"
)

// One is the 18-decimal fixed-point scale shared by every percentage and
// scaled balance handled by the fee engines.
var One = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

var ErrDivisionByZero = errors.New("fixedmath: division by zero")

// MulDown multiplies two fixed-point values and floors the result, rounding
// toward negative infinity so negative intermediates round down as well.
func MulDown(a, b *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	return product.Div(product, One)
}

// DivDown divides two fixed-point values and floors the result. The divisor
// must be non-zero.
func DivDown(a, b *big.Int) (*big.Int, error) {
	if b == nil || b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	scaled := new(big.Int).Mul(a, One)
	return scaled.Div(scaled, b), nil
}
