package feehook

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"questfee/core/types"
)

// State describes the functionality the fee hook and the quest engine need
// from the surrounding state implementation. Absent ledger entries read as
// zero; the pool metadata caches are written once per pool and immutable
// thereafter.
type State interface {
	FeeLedgerAmount(pool, asset common.Address) (*big.Int, error)
	SetFeeLedgerAmount(pool, asset common.Address, amount *big.Int) error
	PoolAssets(pool common.Address) ([]common.Address, bool, error)
	SetPoolAssets(pool common.Address, assets []common.Address) error
	PoolBeneficiary(pool common.Address) (common.Address, bool, error)
	SetPoolBeneficiary(pool, beneficiary common.Address) error
	LastCampaignID(pool common.Address) (uint64, error)
	SetLastCampaignID(pool common.Address, id uint64) error
	AppendEvent(evt *types.Event)
}

// SettlementAuthority is the subset of the external settlement authority the
// hook interacts with. SendTo registers a matching debit against the
// authority's books and credits the hook's custody, so the authority's ledger
// stays balanced after a fee is withheld.
type SettlementAuthority interface {
	// PoolAssets returns the authoritative ordered asset list for a pool.
	PoolAssets(pool common.Address) ([]common.Address, error)
	// SendTo transfers amount units of asset from the authority to the
	// hook's custody.
	SendTo(asset common.Address, amount *big.Int) error
}
