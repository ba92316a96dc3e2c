package feehook

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"questfee/core/events"
	"questfee/fixedmath"
)

// Engine implements the three callbacks the settlement authority drives:
// pool registration, pre-swap dynamic fee quoting, and post-swap settlement
// adjustment. All numeric policy lives here; token movement and balance
// bookkeeping stay with the authority.
type Engine struct {
	cfg       Config
	state     State
	authority SettlementAuthority
}

// NewEngine validates the configuration and binds the engine to its state and
// settlement authority. Configuration errors are fatal: a hook that fails
// construction never serves traffic.
func NewEngine(cfg Config, state State, authority SettlementAuthority) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNilState
	}
	if authority == nil {
		return nil, ErrNilAuthority
	}
	return &Engine{cfg: cfg, state: state, authority: authority}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.FeeShare = new(big.Int).Set(e.cfg.FeeShare)
	return cfg
}

// State exposes the bound state for collaborating engines.
func (e *Engine) State() State {
	return e.state
}

// Authority exposes the bound settlement authority for collaborating engines.
func (e *Engine) Authority() SettlementAuthority {
	return e.authority
}

// OnRegister is called by the settlement authority when a pool attempts to
// attach this hook. Only pools deployed by the allowed factory are accepted.
func (e *Engine) OnRegister(factory, pool common.Address) bool {
	if factory != e.cfg.AllowedFactory {
		return false
	}
	e.state.AppendEvent(events.FeeHookRegistered{Pool: pool, Factory: factory}.Event())
	return true
}

// directionalFee applies the static-fee floor to the calculator output.
func (e *Engine) directionalFee(balanceIn, balanceOut, staticFeePct *big.Int) (*big.Int, error) {
	if staticFeePct == nil {
		return nil, ErrNilAmount
	}
	directional, err := DirectionalFeePercentage(balanceIn, balanceOut)
	if err != nil {
		return nil, err
	}
	if directional.Cmp(staticFeePct) < 0 {
		directional = new(big.Int).Set(staticFeePct)
	}
	return directional, nil
}

// hookFeePercentage carves the hook's share out of the directional fee.
func (e *Engine) hookFeePercentage(directional *big.Int) *big.Int {
	return fixedmath.MulDown(directional, e.cfg.FeeShare)
}
