package auction

import (
	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// Escrow is the refundable balance held for one (item, bidder) pair. The
// live leading bid is tracked on the Item itself, never here, so an entry's
// Amount is withdrawable in full at any time.
type Escrow struct {
	ItemId domain.ItemId  `json:"itemId" bson:"itemId"`
	Bidder domain.Address `json:"bidder" bson:"bidder"`
	Amount string         `json:"amount" bson:"amount"`
}

type EscrowRepo interface {
	// FindOne returns nil without error when no entry exists
	FindOne(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) (*Escrow, error)
	Upsert(c ctx.Ctx, escrow *Escrow) error
	// Zero marks an entry fully paid out
	Zero(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) error
}
