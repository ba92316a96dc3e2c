package events

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"questfee/core/types"
)

const TypeQuestCreated = "quest.created"

// QuestCreated is emitted after ledgered fees have been converted and a new
// incentive campaign has been issued on the board.
type QuestCreated struct {
	Pool         common.Address
	CampaignID   uint64
	RewardAmount *big.Int
	BoardFee     *big.Int
}

func (QuestCreated) EventType() string { return TypeQuestCreated }

func (e QuestCreated) Event() *types.Event {
	return &types.Event{
		Type: TypeQuestCreated,
		Attributes: map[string]string{
			"pool":         e.Pool.Hex(),
			"campaignId":   strconv.FormatUint(e.CampaignID, 10),
			"rewardAmount": formatAmount(e.RewardAmount),
			"boardFee":     formatAmount(e.BoardFee),
		},
	}
}
