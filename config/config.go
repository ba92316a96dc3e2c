package config

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"

	"questfee/native/feehook"
)

// Config mirrors the on-disk TOML configuration of the hook. Amounts are
// decimal strings in 18-decimal fixed point so operators never deal with
// float rounding.
type Config struct {
	DataDir             string `toml:"DataDir"`
	FeeShare            string `toml:"FeeShare"`
	AllowedFactory      string `toml:"AllowedFactory"`
	Authority           string `toml:"Authority"`
	Router              string `toml:"Router"`
	CampaignBoard       string `toml:"CampaignBoard"`
	BeneficiaryRegistry string `toml:"BeneficiaryRegistry"`
	SettingsRegistry    string `toml:"SettingsRegistry"`
	IncentiveAsset      string `toml:"IncentiveAsset"`
}

// Load loads the configuration from the given path and applies defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.DataDir) == "" {
		c.DataDir = "./questfee-data"
	}
	if strings.TrimSpace(c.FeeShare) == "" {
		c.FeeShare = "0"
	}
}

// Validate checks the configuration without constructing the hook.
func (c *Config) Validate() error {
	if _, err := c.feeShare(); err != nil {
		return err
	}
	for name, value := range c.addressFields() {
		if !common.IsHexAddress(value) {
			return fmt.Errorf("config: %s is not a valid address: %q", name, value)
		}
	}
	return nil
}

// HookConfig converts the loaded values into the hook's runtime
// configuration. The hook constructor performs the final bounds checks.
func (c *Config) HookConfig() (feehook.Config, error) {
	feeShare, err := c.feeShare()
	if err != nil {
		return feehook.Config{}, err
	}
	if err := c.Validate(); err != nil {
		return feehook.Config{}, err
	}
	return feehook.Config{
		FeeShare:            feeShare,
		AllowedFactory:      common.HexToAddress(c.AllowedFactory),
		Authority:           common.HexToAddress(c.Authority),
		Router:              common.HexToAddress(c.Router),
		Board:               common.HexToAddress(c.CampaignBoard),
		BeneficiaryRegistry: common.HexToAddress(c.BeneficiaryRegistry),
		SettingsRegistry:    common.HexToAddress(c.SettingsRegistry),
		IncentiveAsset:      common.HexToAddress(c.IncentiveAsset),
	}, nil
}

func (c *Config) feeShare() (*big.Int, error) {
	share, ok := new(big.Int).SetString(strings.TrimSpace(c.FeeShare), 10)
	if !ok || share.Sign() < 0 {
		return nil, fmt.Errorf("config: FeeShare must be a non-negative decimal string: %q", c.FeeShare)
	}
	return share, nil
}

func (c *Config) addressFields() map[string]string {
	return map[string]string{
		"AllowedFactory":      c.AllowedFactory,
		"Authority":           c.Authority,
		"Router":              c.Router,
		"CampaignBoard":       c.CampaignBoard,
		"BeneficiaryRegistry": c.BeneficiaryRegistry,
		"SettingsRegistry":    c.SettingsRegistry,
		"IncentiveAsset":      c.IncentiveAsset,
	}
}
