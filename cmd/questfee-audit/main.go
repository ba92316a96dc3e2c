package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"questfee/config"
	"questfee/core/state"
	"questfee/observability/logging"
	"questfee/storage"
)

type assetReport struct {
	Asset       string `json:"asset"`
	LedgeredFee string `json:"ledgeredFee"`
}

type auditReport struct {
	FeeShare        string        `json:"feeShare"`
	AllowedFactory  string        `json:"allowedFactory"`
	Authority       string        `json:"authority"`
	Router          string        `json:"router"`
	CampaignBoard   string        `json:"campaignBoard"`
	IncentiveAsset  string        `json:"incentiveAsset"`
	Pool            string        `json:"pool,omitempty"`
	Beneficiary     string        `json:"beneficiary,omitempty"`
	LastCampaignID  uint64        `json:"lastCampaignId,omitempty"`
	LedgeredAssets  []assetReport `json:"ledgeredAssets,omitempty"`
	AssetListCached bool          `json:"assetListCached"`
}

func main() {
	configPath := flag.String("config", "./questfee.toml", "Path to hook configuration file")
	poolHex := flag.String("pool", "", "Pool address to inspect (optional)")
	flag.Parse()

	logger := logging.Setup("questfee-audit")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	hookCfg, err := cfg.HookConfig()
	if err != nil {
		logger.Error("invalid hook configuration", "error", err)
		os.Exit(1)
	}

	report := auditReport{
		FeeShare:       hookCfg.FeeShare.String(),
		AllowedFactory: hookCfg.AllowedFactory.Hex(),
		Authority:      hookCfg.Authority.Hex(),
		Router:         hookCfg.Router.Hex(),
		CampaignBoard:  hookCfg.Board.Hex(),
		IncentiveAsset: hookCfg.IncentiveAsset.Hex(),
	}

	if *poolHex != "" {
		if !common.IsHexAddress(*poolHex) {
			logger.Error("invalid pool address", "pool", *poolHex)
			os.Exit(1)
		}
		pool := common.HexToAddress(*poolHex)

		db, err := storage.NewLevelDB(cfg.DataDir)
		if err != nil {
			logger.Error("failed to open store", "dir", cfg.DataDir, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		st := state.NewHookState(db)

		if err := inspectPool(st, pool, &report); err != nil {
			logger.Error("failed to inspect pool", "pool", pool.Hex(), "error", err)
			os.Exit(1)
		}
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("failed to encode report", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}

func inspectPool(st *state.HookState, pool common.Address, report *auditReport) error {
	report.Pool = pool.Hex()

	beneficiary, ok, err := st.PoolBeneficiary(pool)
	if err != nil {
		return err
	}
	if ok {
		report.Beneficiary = beneficiary.Hex()
	}

	id, err := st.LastCampaignID(pool)
	if err != nil {
		return err
	}
	report.LastCampaignID = id

	assets, cached, err := st.PoolAssets(pool)
	if err != nil {
		return err
	}
	report.AssetListCached = cached
	for _, asset := range assets {
		amount, err := st.FeeLedgerAmount(pool, asset)
		if err != nil {
			return err
		}
		report.LedgeredAssets = append(report.LedgeredAssets, assetReport{
			Asset:       asset.Hex(),
			LedgeredFee: amount.String(),
		})
	}
	return nil
}
