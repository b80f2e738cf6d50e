package auction

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// Item is one listed auction for a specific asset instance. The marketplace
// holds the asset in escrow between listing and settlement, so Owner is the
// marketplace address until the item is sold (winner) or closed without bids
// (back to seller).
type Item struct {
	ItemId        domain.ItemId  `json:"itemId" bson:"itemId"`
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	AssetContract domain.Address `json:"assetContract" bson:"assetContract"`
	AssetTokenId  domain.TokenId `json:"assetTokenId" bson:"assetTokenId"`
	Seller        domain.Address `json:"seller" bson:"seller"`
	Owner         domain.Address `json:"owner" bson:"owner"`
	MinPrice      string         `json:"minPrice" bson:"minPrice"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	HighestBid    string         `json:"highestBid" bson:"highestBid"`
	Deadline      time.Time      `json:"deadline" bson:"deadline"`
	Sold          bool           `json:"sold" bson:"sold"`
	ListingFee    string         `json:"listingFee" bson:"listingFee"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	SettledAt     *time.Time     `json:"settledAt" bson:"settledAt,omitempty"`
}

// HasBids reports whether any bid has ever been accepted
func (i *Item) HasBids() bool {
	return !i.HighestBidder.IsEmpty()
}

// CheckBid applies the admission rules for a candidate bid. Deadline and
// sold-state come first, then the price rules: the very first bid must reach
// MinPrice, every bid must strictly exceed the current highest.
func (i *Item) CheckBid(now time.Time, amount decimal.Decimal) error {
	if i.Sold || !now.Before(i.Deadline) {
		return domain.ErrAuctionClosed
	}
	highest, err := decimal.NewFromString(i.HighestBid)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	if !i.HasBids() {
		min, err := decimal.NewFromString(i.MinPrice)
		if err != nil {
			return domain.ErrInvalidNumberFormat
		}
		if amount.LessThan(min) {
			return domain.ErrBelowMinPrice
		}
	}
	if amount.LessThanOrEqual(highest) {
		return domain.ErrBidTooLow
	}
	return nil
}

// CheckSettle applies the settlement gating rules
func (i *Item) CheckSettle(now time.Time) error {
	if now.Before(i.Deadline) {
		return domain.ErrAuctionStillOpen
	}
	if i.Sold {
		return domain.ErrAlreadySettled
	}
	return nil
}

type ItemPatchable struct {
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	HighestBid    *string         `bson:"highestBid,omitempty"`
	Owner         *domain.Address `bson:"owner,omitempty"`
	Sold          *bool           `bson:"sold,omitempty"`
	SettledAt     *time.Time      `bson:"settledAt,omitempty"`
}

type FindAllOptions struct {
	Sold           *bool
	Seller         *domain.Address
	DeadlineBefore *time.Time
	Offset         *int32
	Limit          *int32
	SortBy         *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func ParseFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithSold(sold bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sold = &sold
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithDeadlineBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.DeadlineBefore = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sortBy string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		return nil
	}
}

type ItemRepo interface {
	// NextItemId assigns the next monotonic item id
	NextItemId(c ctx.Ctx) (domain.ItemId, error)
	Insert(c ctx.Ctx, item *Item) error
	FindOne(c ctx.Ctx, itemId domain.ItemId) (*Item, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Item, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Patch(c ctx.Ctx, itemId domain.ItemId, patchable ItemPatchable) error
}

type CreateListingPayload struct {
	ChainId       domain.ChainId `json:"chainId"`
	AssetContract domain.Address `json:"assetContract" validate:"required"`
	AssetTokenId  domain.TokenId `json:"assetTokenId" validate:"required"`
	Seller        domain.Address `json:"seller" validate:"required"`
	MinPrice      string         `json:"minPrice" validate:"required"`
	Duration      int64          `json:"duration" validate:"required"`
	ListingFee    string         `json:"listingFee" validate:"required"`
}

type Usecase interface {
	CreateListing(c ctx.Ctx, payload *CreateListingPayload) (*Item, error)
	PlaceBid(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address, amount string) (*Item, error)
	Withdraw(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) (*Payout, error)
	CloseAuction(c ctx.Ctx, itemId domain.ItemId, caller domain.Address) (*Item, error)
	GetItem(c ctx.Ctx, itemId domain.ItemId) (*Item, error)
	GetOpenItems(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Item, error)
	GetEscrow(c ctx.Ctx, itemId domain.ItemId, bidder domain.Address) (*Escrow, error)
	ListingFee(c ctx.Ctx) string
}
