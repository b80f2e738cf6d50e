package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/service/query"
)

type payoutRepoImpl struct {
	q query.Mongo
}

func NewPayoutRepo(q query.Mongo) auction.PayoutRepo {
	return &payoutRepoImpl{q}
}

func (im *payoutRepoImpl) Insert(c ctx.Ctx, payout *auction.Payout) error {
	if err := im.q.Insert(c, domain.TablePayouts, payout); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"payoutId": payout.PayoutId,
		}).Error("q.Insert failed")
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (im *payoutRepoImpl) FindByItem(c ctx.Ctx, itemId domain.ItemId) ([]*auction.Payout, error) {
	res := []*auction.Payout{}
	if err := im.q.Search(c, domain.TablePayouts, 0, 0, "createdAt", bson.M{"itemId": itemId}, &res); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
