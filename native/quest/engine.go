package quest

import (
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"questfee/core/events"
	"questfee/native/feehook"
)

// Engine converts ledgered swap fees into the incentive asset and issues a
// new campaign on the board, one live campaign per pool at a time.
type Engine struct {
	hook     *feehook.Engine
	registry BeneficiaryRegistry
	router   ConversionRouter
	board    CampaignBoard
	settings SettingsRegistry
	custody  Custodian
	clock    func() time.Time

	// busy guards the whole quest-creation path against reentrancy: the
	// conversion and approval calls hand control to external code that must
	// not be allowed to re-enter while ledger state is mid-drain.
	busy atomic.Bool
}

// NewEngine binds the quest engine to the fee hook whose ledger it drains and
// to the external collaborators it orchestrates.
func NewEngine(hook *feehook.Engine, registry BeneficiaryRegistry, router ConversionRouter, board CampaignBoard, settings SettingsRegistry, custody Custodian) (*Engine, error) {
	if hook == nil {
		return nil, ErrNilHook
	}
	if registry == nil || router == nil || board == nil || settings == nil || custody == nil {
		return nil, ErrNilCollaborator
	}
	return &Engine{
		hook:     hook,
		registry: registry,
		router:   router,
		board:    board,
		settings: settings,
		custody:  custody,
		clock:    time.Now,
	}, nil
}

// SetClock overrides the engine clock, primarily for deterministic testing.
func (e *Engine) SetClock(now func() time.Time) {
	if e == nil || now == nil {
		return
	}
	e.clock = now
}

// CreateQuest drains the pool's fee ledger through the conversion router and
// issues a new campaign funded with the resulting incentive asset balance.
// Routes map each ledgered asset to the conversion steps the router should
// take; the incentive asset itself never needs a route. The previous campaign
// must have completed its final reward period before a new one can be
// created.
func (e *Engine) CreateQuest(pool common.Address, routes map[common.Address][]RouteStep) (uint64, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return 0, ErrReentrantCall
	}
	defer e.busy.Store(false)

	st := e.hook.State()
	cfg := e.hook.Config()

	lastID, err := st.LastCampaignID(pool)
	if err != nil {
		return 0, err
	}

	var beneficiary common.Address
	var assets []common.Address
	if lastID == 0 {
		beneficiary, assets, err = e.initializePool(pool)
		if err != nil {
			return 0, err
		}
	} else {
		if err := e.checkEpochGate(lastID); err != nil {
			return 0, err
		}
		var ok bool
		beneficiary, ok, err = st.PoolBeneficiary(pool)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrNoBeneficiary
		}
		assets, ok, err = st.PoolAssets(pool)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrAssetsNotCached
		}
	}

	settings, err := e.settings.SettingsFor(cfg.IncentiveAsset)
	if err != nil {
		return 0, fmt.Errorf("quest: campaign settings: %w", err)
	}

	legs, drained, err := e.collectLegs(pool, assets, cfg.IncentiveAsset, routes)
	if err != nil {
		return 0, err
	}
	if len(legs) > 0 {
		deadline := e.clock().Add(time.Second)
		if err := e.router.Convert(legs, deadline, false); err != nil {
			return 0, fmt.Errorf("quest: conversion: %w", err)
		}
	}
	// Zero the drained entries only once the conversion has succeeded so a
	// failed attempt leaves the ledger untouched.
	for _, asset := range drained {
		if err := st.SetFeeLedgerAmount(pool, asset, big.NewInt(0)); err != nil {
			return 0, err
		}
	}

	total, err := e.custody.Balance(cfg.IncentiveAsset)
	if err != nil {
		return 0, err
	}
	net, boardFee, err := splitPlatformFee(total, e.board)
	if err != nil {
		return 0, err
	}

	allowance := new(big.Int).Add(net, boardFee)
	if err := e.custody.Approve(cfg.IncentiveAsset, cfg.Board, allowance); err != nil {
		return 0, fmt.Errorf("quest: board allowance: %w", err)
	}

	id, err := e.board.CreateCampaign(CampaignRequest{
		Beneficiary:      beneficiary,
		Asset:            cfg.IncentiveAsset,
		ImmediateOnly:    false,
		Duration:         settings.Duration,
		MinRewardPerVote: settings.MinRewardPerVote,
		MaxRewardPerVote: settings.MaxRewardPerVote,
		RewardAmount:     net,
		BoardFee:         boardFee,
		VoteType:         settings.VoteType,
		CloseType:        settings.CloseType,
		VoterList:        settings.VoterList,
	})
	if err != nil {
		return 0, fmt.Errorf("quest: create campaign: %w", err)
	}

	if err := st.SetLastCampaignID(pool, id); err != nil {
		return 0, err
	}
	st.AppendEvent(events.QuestCreated{Pool: pool, CampaignID: id, RewardAmount: net, BoardFee: boardFee}.Event())
	return id, nil
}

// initializePool resolves and caches the pool's beneficiary and asset list on
// the first quest creation. A pool with no designated beneficiary cannot
// recycle fees; nothing is cached in that case.
func (e *Engine) initializePool(pool common.Address) (common.Address, []common.Address, error) {
	st := e.hook.State()
	beneficiary, ok, err := e.registry.Beneficiary(pool)
	if err != nil {
		return common.Address{}, nil, err
	}
	if !ok || beneficiary == (common.Address{}) {
		return common.Address{}, nil, ErrNoBeneficiary
	}
	assets, err := e.hook.Authority().PoolAssets(pool)
	if err != nil {
		return common.Address{}, nil, err
	}
	if err := st.SetPoolBeneficiary(pool, beneficiary); err != nil {
		return common.Address{}, nil, err
	}
	if err := st.SetPoolAssets(pool, assets); err != nil {
		return common.Address{}, nil, err
	}
	return beneficiary, assets, nil
}

// checkEpochGate enforces one live campaign per pool: the board's current
// period must strictly exceed the final reward period of the last campaign.
func (e *Engine) checkEpochGate(lastID uint64) error {
	periods, err := e.board.CampaignPeriods(lastID)
	if err != nil {
		return err
	}
	if len(periods) == 0 {
		return ErrNoPeriods
	}
	current, err := e.board.CurrentPeriod()
	if err != nil {
		return err
	}
	if current <= periods[len(periods)-1] {
		return ErrCampaignStillActive
	}
	return nil
}

// collectLegs builds the conversion batch from the pool's cached assets,
// skipping the incentive asset and entries already at zero. It returns the
// legs together with the assets whose ledger entries are to be zeroed after
// a successful conversion.
func (e *Engine) collectLegs(pool common.Address, assets []common.Address, incentive common.Address, routes map[common.Address][]RouteStep) ([]ConversionLeg, []common.Address, error) {
	st := e.hook.State()
	legs := make([]ConversionLeg, 0, len(assets))
	drained := make([]common.Address, 0, len(assets))
	for _, asset := range assets {
		if asset == incentive {
			continue
		}
		amount, err := st.FeeLedgerAmount(pool, asset)
		if err != nil {
			return nil, nil, err
		}
		if amount.Sign() == 0 {
			continue
		}
		legs = append(legs, ConversionLeg{
			AssetIn:      asset,
			Steps:        routes[asset],
			AmountIn:     amount,
			MinAmountOut: big.NewInt(0),
		})
		drained = append(drained, asset)
	}
	return legs, drained, nil
}

// splitPlatformFee divides the converted balance into the campaign reward and
// the board's platform cut: net = total*BPS/(BPS+ratio) and
// boardFee = net*ratio/BPS, so net+boardFee never exceeds the balance held.
func splitPlatformFee(total *big.Int, board CampaignBoard) (net, boardFee *big.Int, err error) {
	ratio, err := board.PlatformFeeRatio()
	if err != nil {
		return nil, nil, err
	}
	if total == nil {
		total = big.NewInt(0)
	}
	bps := big.NewInt(BpsDenominator)
	denominator := new(big.Int).Add(bps, new(big.Int).SetUint64(ratio))
	net = new(big.Int).Mul(total, bps)
	net.Quo(net, denominator)
	boardFee = new(big.Int).Mul(net, new(big.Int).SetUint64(ratio))
	boardFee.Quo(boardFee, bps)
	return net, boardFee, nil
}
