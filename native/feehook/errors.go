package feehook

import "errors"

var (
	ErrZeroAddress     = errors.New("feehook: zero address in configuration")
	ErrFeeShareTooHigh = errors.New("feehook: fee share exceeds 100%")
	ErrNilFeeShare     = errors.New("feehook: fee share not configured")
	ErrNilState        = errors.New("feehook: nil state")
	ErrNilAuthority    = errors.New("feehook: nil settlement authority")
	ErrNilContext      = errors.New("feehook: nil swap context")
	ErrNilAmount       = errors.New("feehook: nil amount")
	ErrNegativeAmount  = errors.New("feehook: settlement amount went negative")
)
