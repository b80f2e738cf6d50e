package auction

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

type PayoutReason string

const (
	PayoutReasonWithdraw PayoutReason = "withdraw"
	PayoutReasonSale     PayoutReason = "sale"
)

// Payout is an append-only audit record of funds leaving the marketplace
type Payout struct {
	PayoutId  string         `json:"payoutId" bson:"payoutId"`
	ItemId    domain.ItemId  `json:"itemId" bson:"itemId"`
	Recipient domain.Address `json:"recipient" bson:"recipient"`
	Amount    string         `json:"amount" bson:"amount"`
	Reason    PayoutReason   `json:"reason" bson:"reason"`
	TxRef     string         `json:"txRef" bson:"txRef"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type PayoutRepo interface {
	Insert(c ctx.Ctx, payout *Payout) error
	FindByItem(c ctx.Ctx, itemId domain.ItemId) ([]*Payout, error)
}
