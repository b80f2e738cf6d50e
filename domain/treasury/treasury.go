package treasury

import (
	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// Treasury moves escrowed funds out of the marketplace. Refund withdrawals
// and seller proceeds both go through Transfer; the returned reference
// identifies the transfer on the payment substrate.
type Treasury interface {
	Transfer(c ctx.Ctx, to domain.Address, amount string) (txRef string, err error)
}
