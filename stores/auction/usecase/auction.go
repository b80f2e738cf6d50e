package usecase

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/base/ptr"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/asset"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/domain/treasury"
	"github.com/bidhaus/goapi/service/query"
)

type AuctionUseCaseCfg struct {
	ItemRepo    auction.ItemRepo
	EscrowRepo  auction.EscrowRepo
	PayoutRepo  auction.PayoutRepo
	Registry    asset.Registry
	Treasury    treasury.Treasury
	Tx          query.Tx
	Clock       clock.Clock
	ListingFee  string
	Marketplace domain.Address
}

type impl struct {
	itemRepo    auction.ItemRepo
	escrowRepo  auction.EscrowRepo
	payoutRepo  auction.PayoutRepo
	registry    asset.Registry
	treasury    treasury.Treasury
	tx          query.Tx
	clock       clock.Clock
	listingFee  string
	marketplace domain.Address
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	return &impl{
		itemRepo:    cfg.ItemRepo,
		escrowRepo:  cfg.EscrowRepo,
		payoutRepo:  cfg.PayoutRepo,
		registry:    cfg.Registry,
		treasury:    cfg.Treasury,
		tx:          cfg.Tx,
		clock:       cfg.Clock,
		listingFee:  cfg.ListingFee,
		marketplace: cfg.Marketplace.ToLower(),
	}
}

func (im *impl) CreateListing(c ctx.Ctx, payload *auction.CreateListingPayload) (*auction.Item, error) {
	minPrice, err := decimal.NewFromString(payload.MinPrice)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	if !minPrice.IsPositive() || payload.Duration <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if payload.ChainId <= 0 {
		return nil, domain.ErrInvalidChainId
	}
	if payload.Seller.IsEmpty() || payload.AssetContract.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	fee, err := decimal.NewFromString(im.listingFee)
	if err != nil {
		return nil, domain.ErrInternalServerError
	}
	paid, err := decimal.NewFromString(payload.ListingFee)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}
	if !paid.Equal(fee) {
		return nil, domain.ErrListingFeeMismatch
	}

	var item *auction.Item
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		itemId, err := im.itemRepo.NextItemId(c)
		if err != nil {
			c.WithField("err", err).Error("itemRepo.NextItemId failed")
			return err
		}

		if err := im.registry.EscrowAsset(c, payload.ChainId, payload.AssetContract, payload.AssetTokenId, payload.Seller); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"itemId": itemId,
			}).Error("registry.EscrowAsset failed")
			return err
		}

		now := im.clock.Now()
		item = &auction.Item{
			ItemId:        itemId,
			ChainId:       payload.ChainId,
			AssetContract: payload.AssetContract.ToLower(),
			AssetTokenId:  payload.AssetTokenId,
			Seller:        payload.Seller.ToLower(),
			Owner:         im.marketplace,
			MinPrice:      minPrice.String(),
			HighestBid:    "0",
			Deadline:      now.Add(time.Duration(payload.Duration) * time.Second),
			ListingFee:    paid.String(),
			CreatedAt:     now,
		}
		if err := im.itemRepo.Insert(c, item); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"itemId": itemId,
			}).Error("itemRepo.Insert failed")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (im *impl) PlaceBid(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address, amount string) (*auction.Item, error) {
	if bidder.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	bid, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, domain.ErrInvalidNumberFormat
	}

	var item *auction.Item
	err = im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		item, err = im.itemRepo.FindOne(c, itemId)
		if err != nil {
			return err
		}

		if err := item.CheckBid(im.clock.Now(), bid); err != nil {
			return err
		}

		// the outbid leader becomes withdrawable credit
		if item.HasBids() {
			if err := im.creditEscrow(c, itemId, item.HighestBidder, item.HighestBid); err != nil {
				return err
			}
		}

		patchable := auction.ItemPatchable{
			HighestBidder: bidder.ToLowerPtr(),
			HighestBid:    ptr.String(bid.String()),
		}
		if err := im.itemRepo.Patch(c, itemId, patchable); err != nil {
			return err
		}

		item.HighestBidder = bidder.ToLower()
		item.HighestBid = bid.String()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// creditEscrow folds an outbid amount into the bidder's withdrawable balance
func (im *impl) creditEscrow(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address, amount string) error {
	outbid, err := decimal.NewFromString(amount)
	if err != nil {
		c.WithField("err", err).Error("decimal.NewFromString failed")
		return domain.ErrInvalidNumberFormat
	}

	balance := decimal.Zero
	entry, err := im.escrowRepo.FindOne(c, itemId, bidder)
	if err != nil {
		return err
	}
	if entry != nil {
		balance, err = decimal.NewFromString(entry.Amount)
		if err != nil {
			c.WithField("err", err).Error("decimal.NewFromString failed")
			return domain.ErrInvalidNumberFormat
		}
	}

	return im.escrowRepo.Upsert(c, &auction.Escrow{
		ItemId: itemId,
		Bidder: bidder.ToLower(),
		Amount: balance.Add(outbid).String(),
	})
}

func (im *impl) Withdraw(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) (*auction.Payout, error) {
	if bidder.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}

	var payout *auction.Payout
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		item, err := im.itemRepo.FindOne(c, itemId)
		if err != nil {
			return err
		}
		if !item.Sold && item.HighestBidder.Equals(bidder) {
			return domain.ErrIsHighestBidder
		}

		entry, err := im.escrowRepo.FindOne(c, itemId, bidder)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNothingToWithdraw
		}
		balance, err := decimal.NewFromString(entry.Amount)
		if err != nil {
			c.WithField("err", err).Error("decimal.NewFromString failed")
			return domain.ErrInvalidNumberFormat
		}
		if !balance.IsPositive() {
			return domain.ErrNothingToWithdraw
		}

		if err := im.escrowRepo.Zero(c, itemId, bidder); err != nil {
			return err
		}

		txRef, err := im.treasury.Transfer(c, bidder, balance.String())
		if err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"itemId": itemId,
				"bidder": bidder,
			}).Error("treasury.Transfer failed")
			return err
		}

		payout = &auction.Payout{
			PayoutId:  uuid.New().String(),
			ItemId:    itemId,
			Recipient: bidder.ToLower(),
			Amount:    balance.String(),
			Reason:    auction.PayoutReasonWithdraw,
			TxRef:     txRef,
			CreatedAt: im.clock.Now(),
		}
		return im.payoutRepo.Insert(c, payout)
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

func (im *impl) CloseAuction(c ctx.Ctx, itemId domain.ItemId, caller domain.Address) (*auction.Item, error) {
	var item *auction.Item
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		var err error
		item, err = im.itemRepo.FindOne(c, itemId)
		if err != nil {
			return err
		}

		now := im.clock.Now()
		if err := item.CheckSettle(now); err != nil {
			return err
		}

		sold := true
		patchable := auction.ItemPatchable{
			Sold:      &sold,
			SettledAt: &now,
		}

		if !item.HasBids() {
			// nothing to pay out, the asset just goes home
			if err := im.registry.ReleaseAssetTo(c, item.ChainId, item.AssetContract, item.AssetTokenId, item.Seller); err != nil {
				c.WithFields(log.Fields{
					"err":    err,
					"itemId": itemId,
				}).Error("registry.ReleaseAssetTo failed")
				return err
			}
			patchable.Owner = item.Seller.ToLowerPtr()
		} else {
			if err := im.registry.ReleaseAssetTo(c, item.ChainId, item.AssetContract, item.AssetTokenId, item.HighestBidder); err != nil {
				c.WithFields(log.Fields{
					"err":    err,
					"itemId": itemId,
				}).Error("registry.ReleaseAssetTo failed")
				return err
			}

			txRef, err := im.treasury.Transfer(c, item.Seller, item.HighestBid)
			if err != nil {
				c.WithFields(log.Fields{
					"err":    err,
					"itemId": itemId,
				}).Error("treasury.Transfer failed")
				return err
			}

			payout := &auction.Payout{
				PayoutId:  uuid.New().String(),
				ItemId:    itemId,
				Recipient: item.Seller,
				Amount:    item.HighestBid,
				Reason:    auction.PayoutReasonSale,
				TxRef:     txRef,
				CreatedAt: now,
			}
			if err := im.payoutRepo.Insert(c, payout); err != nil {
				return err
			}
			patchable.Owner = item.HighestBidder.ToLowerPtr()
		}

		if err := im.itemRepo.Patch(c, itemId, patchable); err != nil {
			return err
		}

		item.Sold = true
		item.SettledAt = &now
		item.Owner = *patchable.Owner
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (im *impl) GetItem(c ctx.Ctx, itemId domain.ItemId) (*auction.Item, error) {
	return im.itemRepo.FindOne(c, itemId)
}

func (im *impl) GetOpenItems(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Item, error) {
	opts = append(opts, auction.WithSold(false))
	return im.itemRepo.FindAll(c, opts...)
}

func (im *impl) GetEscrow(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) (*auction.Escrow, error) {
	if _, err := im.itemRepo.FindOne(c, itemId); err != nil {
		return nil, err
	}
	entry, err := im.escrowRepo.FindOne(c, itemId, bidder)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &auction.Escrow{ItemId: itemId, Bidder: bidder.ToLower(), Amount: "0"}, nil
	}
	return entry, nil
}

func (im *impl) ListingFee(c ctx.Ctx) string {
	return im.listingFee
}
