package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/service/query"
)

type escrowRepoImpl struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) auction.EscrowRepo {
	return &escrowRepoImpl{q}
}

func (im *escrowRepoImpl) FindOne(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) (*auction.Escrow, error) {
	res := auction.Escrow{}
	err := im.q.FindOne(c, domain.TableEscrows, bson.M{"itemId": itemId, "bidder": bidder.ToLower()}, &res)
	if err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
			"bidder": bidder,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &res, nil
}

func (im *escrowRepoImpl) Upsert(c ctx.Ctx, escrow *auction.Escrow) error {
	selector := bson.M{"itemId": escrow.ItemId, "bidder": escrow.Bidder.ToLower()}
	if err := im.q.Upsert(c, domain.TableEscrows, selector, escrow); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *escrowRepoImpl) Zero(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) error {
	selector := bson.M{"itemId": itemId, "bidder": bidder.ToLower()}
	err := im.q.Patch(c, domain.TableEscrows, selector, bson.M{"amount": "0"})
	if err == query.ErrNotFound {
		return domain.ErrNothingToWithdraw
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
