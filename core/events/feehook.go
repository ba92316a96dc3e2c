package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"questfee/core/types"
)

const (
	TypeFeeHookRegistered = "feehook.registered"
	TypeFeeCharged        = "feehook.fee.charged"
)

// FeeHookRegistered is emitted when the hook accepts registration for a pool
// deployed by the allowed factory.
type FeeHookRegistered struct {
	Pool    common.Address
	Factory common.Address
}

func (FeeHookRegistered) EventType() string { return TypeFeeHookRegistered }

func (e FeeHookRegistered) Event() *types.Event {
	return &types.Event{
		Type: TypeFeeHookRegistered,
		Attributes: map[string]string{
			"pool":    e.Pool.Hex(),
			"factory": e.Factory.Hex(),
		},
	}
}

// FeeCharged is emitted once per settlement that withholds a non-zero hook fee.
type FeeCharged struct {
	Pool   common.Address
	Asset  common.Address
	Amount *big.Int
}

func (FeeCharged) EventType() string { return TypeFeeCharged }

func (e FeeCharged) Event() *types.Event {
	return &types.Event{
		Type: TypeFeeCharged,
		Attributes: map[string]string{
			"pool":   e.Pool.Hex(),
			"asset":  e.Asset.Hex(),
			"amount": formatAmount(e.Amount),
		},
	}
}
