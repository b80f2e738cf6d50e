package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/service/query"
)

type itemCounter struct {
	Name string        `bson:"name"`
	Seq  domain.ItemId `bson:"seq"`
}

type itemRepoImpl struct {
	q query.Mongo
}

func NewItemRepo(q query.Mongo) auction.ItemRepo {
	return &itemRepoImpl{q}
}

func (im *itemRepoImpl) makeQuery(opts ...auction.FindAllOptionsFunc) (bson.M, error) {
	options, err := auction.ParseFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Sold != nil {
		query["sold"] = *options.Sold
	}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.DeadlineBefore != nil {
		query["deadline"] = bson.M{"$lt": *options.DeadlineBefore}
	}

	return query, nil
}

func (im *itemRepoImpl) NextItemId(c ctx.Ctx) (domain.ItemId, error) {
	counter := itemCounter{}
	if err := im.q.Increment(c, domain.TableCounters, bson.M{"name": string(domain.TableItems)}, &counter, "seq", int64(1)); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return counter.Seq, nil
}

func (im *itemRepoImpl) Insert(c ctx.Ctx, item *auction.Item) error {
	if err := im.q.Insert(c, domain.TableItems, item); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": item.ItemId,
		}).Error("q.Insert failed")
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (im *itemRepoImpl) FindOne(c ctx.Ctx, itemId domain.ItemId) (*auction.Item, error) {
	res := auction.Item{}
	err := im.q.FindOne(c, domain.TableItems, bson.M{"itemId": itemId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrItemNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return &res, nil
}

func (im *itemRepoImpl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Item, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return nil, err
	}

	options, err := auction.ParseFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	sort := "itemId"
	if options.SortBy != nil {
		sort = *options.SortBy
	}

	res := []*auction.Item{}
	if err := im.q.Search(c, domain.TableItems, offset, limit, sort, qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *itemRepoImpl) Count(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return 0, err
	}

	cnt, err := im.q.Count(c, domain.TableItems, qry)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}

func (im *itemRepoImpl) Patch(c ctx.Ctx, itemId domain.ItemId, patchable auction.ItemPatchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("mongoclient.MakeBsonM failed")
		return err
	}

	err = im.q.Patch(c, domain.TableItems, bson.M{"itemId": itemId}, updater)
	if err == query.ErrNotFound {
		return domain.ErrItemNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"itemId": itemId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
