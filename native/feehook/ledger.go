package feehook

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// creditFee accumulates a collected fee into the pool's ledger slot. Each
// settlement only touches the slot it computed in the same call, so plain
// read-add-write accumulation is safe under the authority's transaction
// model.
func (e *Engine) creditFee(pool, asset common.Address, fee *big.Int) error {
	current, err := e.state.FeeLedgerAmount(pool, asset)
	if err != nil {
		return err
	}
	return e.state.SetFeeLedgerAmount(pool, asset, new(big.Int).Add(current, fee))
}

// LedgeredFee reports the accumulated, not-yet-converted fee for a pool and
// asset.
func (e *Engine) LedgeredFee(pool, asset common.Address) (*big.Int, error) {
	return e.state.FeeLedgerAmount(pool, asset)
}
