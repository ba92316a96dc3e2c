package state

import "github.com/ethereum/go-ethereum/common"

var (
	feeLedgerPrefix   = []byte("feehook/ledger/")
	poolAssetsPrefix  = []byte("feehook/assets/")
	beneficiaryPrefix = []byte("feehook/beneficiary/")
	lastCampaignKey   = []byte("quest/last/")
)

func feeLedgerKey(pool, asset common.Address) []byte {
	buf := make([]byte, 0, len(feeLedgerPrefix)+2*common.AddressLength)
	buf = append(buf, feeLedgerPrefix...)
	buf = append(buf, pool.Bytes()...)
	buf = append(buf, asset.Bytes()...)
	return buf
}

func poolAssetsKey(pool common.Address) []byte {
	buf := make([]byte, 0, len(poolAssetsPrefix)+common.AddressLength)
	buf = append(buf, poolAssetsPrefix...)
	buf = append(buf, pool.Bytes()...)
	return buf
}

func beneficiaryKey(pool common.Address) []byte {
	buf := make([]byte, 0, len(beneficiaryPrefix)+common.AddressLength)
	buf = append(buf, beneficiaryPrefix...)
	buf = append(buf, pool.Bytes()...)
	return buf
}

func lastCampaignIDKey(pool common.Address) []byte {
	buf := make([]byte, 0, len(lastCampaignKey)+common.AddressLength)
	buf = append(buf, lastCampaignKey...)
	buf = append(buf, pool.Bytes()...)
	return buf
}
