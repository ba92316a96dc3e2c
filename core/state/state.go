package state

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"questfee/core/types"
	"questfee/storage"
)

// HookState persists the fee ledger, the per-pool metadata caches, and the
// last campaign id in the underlying key-value store. Emitted events are
// buffered in memory for the host to drain after each call.
type HookState struct {
	db storage.Database

	mu     sync.Mutex
	events []types.Event
}

// NewHookState constructs a state bound to the provided storage backend.
func NewHookState(db storage.Database) *HookState {
	return &HookState{db: db}
}

// FeeLedgerAmount returns the accumulated fee for a pool and asset. Entries
// that were never written read as zero.
func (s *HookState) FeeLedgerAmount(pool, asset common.Address) (*big.Int, error) {
	raw, err := s.db.Get(feeLedgerKey(pool, asset))
	if errors.Is(err, storage.ErrNotFound) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	amount := new(big.Int)
	if err := rlp.DecodeBytes(raw, amount); err != nil {
		return nil, err
	}
	return amount, nil
}

// SetFeeLedgerAmount overwrites the accumulated fee for a pool and asset.
func (s *HookState) SetFeeLedgerAmount(pool, asset common.Address, amount *big.Int) error {
	if amount == nil {
		amount = big.NewInt(0)
	}
	raw, err := rlp.EncodeToBytes(amount)
	if err != nil {
		return err
	}
	return s.db.Put(feeLedgerKey(pool, asset), raw)
}

// PoolAssets returns the cached asset list for a pool, reporting whether the
// cache has been populated.
func (s *HookState) PoolAssets(pool common.Address) ([]common.Address, bool, error) {
	raw, err := s.db.Get(poolAssetsKey(pool))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var assets []common.Address
	if err := rlp.DecodeBytes(raw, &assets); err != nil {
		return nil, false, err
	}
	return assets, true, nil
}

// SetPoolAssets records the pool's ordered asset list.
func (s *HookState) SetPoolAssets(pool common.Address, assets []common.Address) error {
	raw, err := rlp.EncodeToBytes(assets)
	if err != nil {
		return err
	}
	return s.db.Put(poolAssetsKey(pool), raw)
}

// PoolBeneficiary returns the cached beneficiary for a pool, reporting
// whether the cache has been populated.
func (s *HookState) PoolBeneficiary(pool common.Address) (common.Address, bool, error) {
	raw, err := s.db.Get(beneficiaryKey(pool))
	if errors.Is(err, storage.ErrNotFound) {
		return common.Address{}, false, nil
	}
	if err != nil {
		return common.Address{}, false, err
	}
	var beneficiary common.Address
	if err := rlp.DecodeBytes(raw, &beneficiary); err != nil {
		return common.Address{}, false, err
	}
	return beneficiary, true, nil
}

// SetPoolBeneficiary records the pool's delegated campaign target.
func (s *HookState) SetPoolBeneficiary(pool, beneficiary common.Address) error {
	raw, err := rlp.EncodeToBytes(beneficiary)
	if err != nil {
		return err
	}
	return s.db.Put(beneficiaryKey(pool), raw)
}

// LastCampaignID returns the most recently created campaign id for a pool,
// zero when no campaign has been created yet.
func (s *HookState) LastCampaignID(pool common.Address) (uint64, error) {
	raw, err := s.db.Get(lastCampaignIDKey(pool))
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var id uint64
	if err := rlp.DecodeBytes(raw, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// SetLastCampaignID records the campaign id issued for a pool.
func (s *HookState) SetLastCampaignID(pool common.Address, id uint64) error {
	raw, err := rlp.EncodeToBytes(id)
	if err != nil {
		return err
	}
	return s.db.Put(lastCampaignIDKey(pool), raw)
}

// AppendEvent buffers an emitted event.
func (s *HookState) AppendEvent(evt *types.Event) {
	if evt == nil {
		return
	}
	attrs := make(map[string]string, len(evt.Attributes))
	for k, v := range evt.Attributes {
		attrs[k] = v
	}
	s.mu.Lock()
	s.events = append(s.events, types.Event{Type: evt.Type, Attributes: attrs})
	s.mu.Unlock()
}

// Events drains and returns the buffered events.
func (s *HookState) Events() []types.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.events
	s.events = nil
	return drained
}
