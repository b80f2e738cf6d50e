package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/ptr"
	"github.com/bidhaus/goapi/domain"
	mAsset "github.com/bidhaus/goapi/domain/asset/mocks"
	"github.com/bidhaus/goapi/domain/auction"
	mAuction "github.com/bidhaus/goapi/domain/auction/mocks"
	mTreasury "github.com/bidhaus/goapi/domain/treasury/mocks"
	mQuery "github.com/bidhaus/goapi/service/query/mocks"
)

var (
	mockCtx = ctx.Background()

	seller      = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bidderA     = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	bidderB     = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
	marketplace = domain.Address("0x322813fd9a801c5507c9de605d63cea4f2ce6c44")
	contract    = domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
)

type testSuite struct {
	suite.Suite

	itemRepo   *mAuction.ItemRepo
	escrowRepo *mAuction.EscrowRepo
	payoutRepo *mAuction.PayoutRepo
	registry   *mAsset.Registry
	treasury   *mTreasury.Treasury
	tx         *mQuery.Tx
	clock      *clock.Mock

	im *impl
}

func (s *testSuite) SetupTest() {
	s.itemRepo = &mAuction.ItemRepo{}
	s.escrowRepo = &mAuction.EscrowRepo{}
	s.payoutRepo = &mAuction.PayoutRepo{}
	s.registry = &mAsset.Registry{}
	s.treasury = &mTreasury.Treasury{}
	s.tx = &mQuery.Tx{}
	s.clock = clock.NewMock()
	s.clock.Set(time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC))

	s.im = New(&AuctionUseCaseCfg{
		ItemRepo:    s.itemRepo,
		EscrowRepo:  s.escrowRepo,
		PayoutRepo:  s.payoutRepo,
		Registry:    s.registry,
		Treasury:    s.treasury,
		Tx:          s.tx,
		Clock:       s.clock,
		ListingFee:  "0.025",
		Marketplace: marketplace,
	}).(*impl)

	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) }).Maybe()
}

func (s *testSuite) TearDownTest() {
	s.itemRepo.AssertExpectations(s.T())
	s.escrowRepo.AssertExpectations(s.T())
	s.payoutRepo.AssertExpectations(s.T())
	s.registry.AssertExpectations(s.T())
	s.treasury.AssertExpectations(s.T())
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) openItem() *auction.Item {
	return &auction.Item{
		ItemId:        1,
		ChainId:       1,
		AssetContract: contract,
		AssetTokenId:  "7",
		Seller:        seller,
		Owner:         marketplace,
		MinPrice:      "10",
		HighestBid:    "0",
		Deadline:      s.clock.Now().Add(time.Hour),
		ListingFee:    "0.025",
		CreatedAt:     s.clock.Now().Add(-time.Hour),
	}
}

func (s *testSuite) TestCreateListing() {
	payload := &auction.CreateListingPayload{
		ChainId:       1,
		AssetContract: contract,
		AssetTokenId:  "7",
		Seller:        seller,
		MinPrice:      "10",
		Duration:      3600,
		ListingFee:    "0.025",
	}

	s.itemRepo.On("NextItemId", mock.Anything).Return(domain.ItemId(1), nil).Once()
	s.registry.On("EscrowAsset", mock.Anything, domain.ChainId(1), contract, domain.TokenId("7"), seller).Return(nil).Once()
	s.itemRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item *auction.Item) bool {
		return item.ItemId == 1 &&
			item.Owner == marketplace &&
			item.HighestBid == "0" &&
			!item.Sold &&
			item.Deadline.Equal(s.clock.Now().Add(time.Hour))
	})).Return(nil).Once()

	item, err := s.im.CreateListing(mockCtx, payload)
	s.Require().NoError(err)
	s.Equal(domain.ItemId(1), item.ItemId)
	s.Equal(marketplace, item.Owner)
}

func (s *testSuite) TestCreateListingRejectsBadParams() {
	base := auction.CreateListingPayload{
		ChainId:       1,
		AssetContract: contract,
		AssetTokenId:  "7",
		Seller:        seller,
		MinPrice:      "10",
		Duration:      3600,
		ListingFee:    "0.025",
	}

	p := base
	p.MinPrice = "0"
	_, err := s.im.CreateListing(mockCtx, &p)
	s.Equal(domain.ErrBadParamInput, err)

	p = base
	p.MinPrice = "not-a-number"
	_, err = s.im.CreateListing(mockCtx, &p)
	s.Equal(domain.ErrInvalidNumberFormat, err)

	p = base
	p.Duration = 0
	_, err = s.im.CreateListing(mockCtx, &p)
	s.Equal(domain.ErrBadParamInput, err)

	p = base
	p.ListingFee = "0.01"
	_, err = s.im.CreateListing(mockCtx, &p)
	s.Equal(domain.ErrListingFeeMismatch, err)

	p = base
	p.Seller = ""
	_, err = s.im.CreateListing(mockCtx, &p)
	s.Equal(domain.ErrInvalidAddress, err)

	p = base
	p.ChainId = 0
	_, err = s.im.CreateListing(mockCtx, &p)
	s.Equal(domain.ErrInvalidChainId, err)
}

func (s *testSuite) TestCreateListingAbortsWhenEscrowFails() {
	payload := &auction.CreateListingPayload{
		ChainId:       1,
		AssetContract: contract,
		AssetTokenId:  "7",
		Seller:        seller,
		MinPrice:      "10",
		Duration:      3600,
		ListingFee:    "0.025",
	}

	escrowErr := errors.New("asset not approved")
	s.itemRepo.On("NextItemId", mock.Anything).Return(domain.ItemId(1), nil).Once()
	s.registry.On("EscrowAsset", mock.Anything, domain.ChainId(1), contract, domain.TokenId("7"), seller).Return(escrowErr).Once()

	_, err := s.im.CreateListing(mockCtx, payload)
	s.Equal(escrowErr, err)
	s.itemRepo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *testSuite) TestPlaceBidFirstBid() {
	item := s.openItem()
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.itemRepo.On("Patch", mock.Anything, domain.ItemId(1), auction.ItemPatchable{
		HighestBidder: bidderA.ToLowerPtr(),
		HighestBid:    ptr.String("10"),
	}).Return(nil).Once()

	got, err := s.im.PlaceBid(mockCtx, 1, bidderA, "10")
	s.Require().NoError(err)
	s.Equal(bidderA, got.HighestBidder)
	s.Equal("10", got.HighestBid)
	s.escrowRepo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *testSuite) TestPlaceBidOutbidsCreditsPreviousLeader() {
	item := s.openItem()
	item.HighestBidder = bidderA
	item.HighestBid = "10"

	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderA).Return(nil, nil).Once()
	s.escrowRepo.On("Upsert", mock.Anything, &auction.Escrow{ItemId: 1, Bidder: bidderA, Amount: "10"}).Return(nil).Once()
	s.itemRepo.On("Patch", mock.Anything, domain.ItemId(1), auction.ItemPatchable{
		HighestBidder: bidderB.ToLowerPtr(),
		HighestBid:    ptr.String("20"),
	}).Return(nil).Once()

	got, err := s.im.PlaceBid(mockCtx, 1, bidderB, "20")
	s.Require().NoError(err)
	s.Equal(bidderB, got.HighestBidder)
	s.Equal("20", got.HighestBid)
}

func (s *testSuite) TestPlaceBidAccumulatesEscrowAcrossOutbids() {
	item := s.openItem()
	item.HighestBidder = bidderA
	item.HighestBid = "30"

	// bidderA was outbid before and already holds credit
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderA).
		Return(&auction.Escrow{ItemId: 1, Bidder: bidderA, Amount: "10"}, nil).Once()
	s.escrowRepo.On("Upsert", mock.Anything, &auction.Escrow{ItemId: 1, Bidder: bidderA, Amount: "40"}).Return(nil).Once()
	s.itemRepo.On("Patch", mock.Anything, domain.ItemId(1), mock.Anything).Return(nil).Once()

	_, err := s.im.PlaceBid(mockCtx, 1, bidderB, "35")
	s.Require().NoError(err)
}

func (s *testSuite) TestPlaceBidRejections() {
	// unknown item
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(9)).Return(nil, domain.ErrItemNotFound).Once()
	_, err := s.im.PlaceBid(mockCtx, 9, bidderA, "10")
	s.Equal(domain.ErrItemNotFound, err)

	// below min price on first bid
	item := s.openItem()
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	_, err = s.im.PlaceBid(mockCtx, 1, bidderA, "5")
	s.Equal(domain.ErrBelowMinPrice, err)

	// equal to current highest
	item = s.openItem()
	item.HighestBidder = bidderA
	item.HighestBid = "20"
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	_, err = s.im.PlaceBid(mockCtx, 1, bidderB, "20")
	s.Equal(domain.ErrBidTooLow, err)

	// past deadline
	item = s.openItem()
	item.Deadline = s.clock.Now()
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	_, err = s.im.PlaceBid(mockCtx, 1, bidderA, "100")
	s.Equal(domain.ErrAuctionClosed, err)

	// already settled
	item = s.openItem()
	item.Sold = true
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	_, err = s.im.PlaceBid(mockCtx, 1, bidderA, "100")
	s.Equal(domain.ErrAuctionClosed, err)

	// zero bid falls under the min price rule
	item = s.openItem()
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	_, err = s.im.PlaceBid(mockCtx, 1, bidderA, "0")
	s.Equal(domain.ErrBelowMinPrice, err)

	// malformed amount
	_, err = s.im.PlaceBid(mockCtx, 1, bidderA, "ten")
	s.Equal(domain.ErrInvalidNumberFormat, err)

	// missing bidder
	_, err = s.im.PlaceBid(mockCtx, 1, "", "10")
	s.Equal(domain.ErrInvalidAddress, err)
}

func (s *testSuite) TestWithdrawPaysOutExactlyOnce() {
	item := s.openItem()
	item.HighestBidder = bidderB
	item.HighestBid = "20"

	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderA).
		Return(&auction.Escrow{ItemId: 1, Bidder: bidderA, Amount: "10"}, nil).Once()
	s.escrowRepo.On("Zero", mock.Anything, domain.ItemId(1), bidderA).Return(nil).Once()
	s.treasury.On("Transfer", mock.Anything, bidderA, "10").Return("0xtx1", nil).Once()
	s.payoutRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *auction.Payout) bool {
		return p.ItemId == 1 &&
			p.Recipient == bidderA &&
			p.Amount == "10" &&
			p.Reason == auction.PayoutReasonWithdraw &&
			p.TxRef == "0xtx1" &&
			p.PayoutId != ""
	})).Return(nil).Once()

	payout, err := s.im.Withdraw(mockCtx, 1, bidderA)
	s.Require().NoError(err)
	s.Equal("10", payout.Amount)

	// the second attempt finds a zeroed entry
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderA).
		Return(&auction.Escrow{ItemId: 1, Bidder: bidderA, Amount: "0"}, nil).Once()

	_, err = s.im.Withdraw(mockCtx, 1, bidderA)
	s.Equal(domain.ErrNothingToWithdraw, err)
}

func (s *testSuite) TestWithdrawRejectsCurrentLeader() {
	item := s.openItem()
	item.HighestBidder = bidderB
	item.HighestBid = "20"

	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()

	_, err := s.im.Withdraw(mockCtx, 1, bidderB)
	s.Equal(domain.ErrIsHighestBidder, err)
}

func (s *testSuite) TestWithdrawWithoutEntry() {
	item := s.openItem()
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderA).Return(nil, nil).Once()

	_, err := s.im.Withdraw(mockCtx, 1, bidderA)
	s.Equal(domain.ErrNothingToWithdraw, err)
}

func (s *testSuite) TestWithdrawAfterSettlement() {
	item := s.openItem()
	item.HighestBidder = bidderB
	item.HighestBid = "20"
	item.Sold = true
	item.Owner = bidderB

	// the displaced bidder's credit stays claimable after the close
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderA).
		Return(&auction.Escrow{ItemId: 1, Bidder: bidderA, Amount: "10"}, nil).Once()
	s.escrowRepo.On("Zero", mock.Anything, domain.ItemId(1), bidderA).Return(nil).Once()
	s.treasury.On("Transfer", mock.Anything, bidderA, "10").Return("0xtx2", nil).Once()
	s.payoutRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *auction.Payout) bool {
		return p.Recipient == bidderA && p.Amount == "10" && p.Reason == auction.PayoutReasonWithdraw
	})).Return(nil).Once()

	payout, err := s.im.Withdraw(mockCtx, 1, bidderA)
	s.Require().NoError(err)
	s.Equal("10", payout.Amount)

	// the winner's bid went to the seller, nothing is left to pull
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderB).Return(nil, nil).Once()

	_, err = s.im.Withdraw(mockCtx, 1, bidderB)
	s.Equal(domain.ErrNothingToWithdraw, err)
}

func (s *testSuite) TestCloseAuctionWithWinner() {
	item := s.openItem()
	item.HighestBidder = bidderB
	item.HighestBid = "20"
	item.Deadline = s.clock.Now().Add(-time.Minute)

	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.registry.On("ReleaseAssetTo", mock.Anything, domain.ChainId(1), contract, domain.TokenId("7"), bidderB).Return(nil).Once()
	s.treasury.On("Transfer", mock.Anything, seller, "20").Return("0xtx2", nil).Once()
	s.payoutRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *auction.Payout) bool {
		return p.Recipient == seller && p.Amount == "20" && p.Reason == auction.PayoutReasonSale
	})).Return(nil).Once()
	s.itemRepo.On("Patch", mock.Anything, domain.ItemId(1), mock.MatchedBy(func(p auction.ItemPatchable) bool {
		return p.Sold != nil && *p.Sold && p.Owner != nil && *p.Owner == bidderB && p.SettledAt != nil
	})).Return(nil).Once()

	got, err := s.im.CloseAuction(mockCtx, 1, bidderA)
	s.Require().NoError(err)
	s.True(got.Sold)
	s.Equal(bidderB, got.Owner)
	s.NotNil(got.SettledAt)
}

func (s *testSuite) TestCloseAuctionWithoutBids() {
	item := s.openItem()
	item.Deadline = s.clock.Now().Add(-time.Minute)

	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.registry.On("ReleaseAssetTo", mock.Anything, domain.ChainId(1), contract, domain.TokenId("7"), seller).Return(nil).Once()
	s.itemRepo.On("Patch", mock.Anything, domain.ItemId(1), mock.MatchedBy(func(p auction.ItemPatchable) bool {
		return p.Sold != nil && *p.Sold && p.Owner != nil && *p.Owner == seller
	})).Return(nil).Once()

	got, err := s.im.CloseAuction(mockCtx, 1, seller)
	s.Require().NoError(err)
	s.True(got.Sold)
	s.Equal(seller, got.Owner)
	s.treasury.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestCloseAuctionGating() {
	// before deadline
	item := s.openItem()
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	_, err := s.im.CloseAuction(mockCtx, 1, seller)
	s.Equal(domain.ErrAuctionStillOpen, err)

	// double close
	item = s.openItem()
	item.Deadline = s.clock.Now().Add(-time.Minute)
	item.Sold = true
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	_, err = s.im.CloseAuction(mockCtx, 1, seller)
	s.Equal(domain.ErrAlreadySettled, err)

	// unknown item
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(9)).Return(nil, domain.ErrItemNotFound).Once()
	_, err = s.im.CloseAuction(mockCtx, 9, seller)
	s.Equal(domain.ErrItemNotFound, err)
}

func (s *testSuite) TestCloseAuctionAbortsWhenTransferFails() {
	item := s.openItem()
	item.HighestBidder = bidderB
	item.HighestBid = "20"
	item.Deadline = s.clock.Now().Add(-time.Minute)

	transferErr := errors.New("substrate unavailable")
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.registry.On("ReleaseAssetTo", mock.Anything, domain.ChainId(1), contract, domain.TokenId("7"), bidderB).Return(nil).Once()
	s.treasury.On("Transfer", mock.Anything, seller, "20").Return("", transferErr).Once()

	_, err := s.im.CloseAuction(mockCtx, 1, bidderA)
	s.Equal(transferErr, err)
	s.itemRepo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestGetOpenItemsForcesUnsoldFilter() {
	s.itemRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Item{}, nil).Once()

	got, err := s.im.GetOpenItems(mockCtx, auction.WithPagination(0, 20))
	s.Require().NoError(err)
	s.Len(got, 0)
}

func (s *testSuite) TestGetEscrowDefaultsToZero() {
	item := s.openItem()
	s.itemRepo.On("FindOne", mock.Anything, domain.ItemId(1)).Return(item, nil).Once()
	s.escrowRepo.On("FindOne", mock.Anything, domain.ItemId(1), bidderA).Return(nil, nil).Once()

	got, err := s.im.GetEscrow(mockCtx, 1, bidderA)
	s.Require().NoError(err)
	s.Equal("0", got.Amount)
}

func (s *testSuite) TestListingFee() {
	s.Equal("0.025", s.im.ListingFee(mockCtx))
}
