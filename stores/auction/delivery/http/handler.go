package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/middleware"
)

type handler struct {
	auction auction.Usecase
}

// New registers the auction endpoints
func New(e *echo.Echo, auctionUC auction.Usecase) {
	h := &handler{auctionUC}

	gs := e.Group("/auctions")

	gs.POST("", h.createListing)

	gs.GET("/open", h.getOpenItems, middleware.CacheHttp(10*time.Second))

	g := e.Group("/auctions/:itemId")

	g.GET("", h.getItem)

	g.POST("/bids", h.placeBid)

	g.POST("/withdraw", h.withdraw)

	g.POST("/close", h.closeAuction)

	g.GET("/escrow/:bidder", h.getEscrow, middleware.IsValidAddress("bidder"))

	e.GET("/marketplace/fee", h.getListingFee)
}

func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := auction.CreateListingPayload{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	item, err := h.auction.CreateListing(ctx, &p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, item)
}

func (h *handler) getOpenItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Offset int32 `query:"offset"`
		Limit  int32 `query:"limit"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 100
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithPagination(p.Offset, p.Limit),
		auction.WithSort("itemId"),
	}

	items, err := h.auction.GetOpenItems(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, items)
}

func (h *handler) getItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ItemId int64 `param:"itemId" validate:"gt=0"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	item, err := h.auction.GetItem(ctx, domain.ItemId(p.ItemId))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ItemId int64          `param:"itemId" validate:"gt=0"`
		Bidder domain.Address `json:"bidder" validate:"required"`
		Amount string         `json:"amount" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	item, err := h.auction.PlaceBid(ctx, domain.ItemId(p.ItemId), p.Bidder, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ItemId int64          `param:"itemId" validate:"gt=0"`
		Bidder domain.Address `json:"bidder" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	payout, err := h.auction.Withdraw(ctx, domain.ItemId(p.ItemId), p.Bidder)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, payout)
}

func (h *handler) closeAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ItemId int64          `param:"itemId" validate:"gt=0"`
		Caller domain.Address `json:"caller"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	item, err := h.auction.CloseAuction(ctx, domain.ItemId(p.ItemId), p.Caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

func (h *handler) getEscrow(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		ItemId int64          `param:"itemId" validate:"gt=0"`
		Bidder domain.Address `param:"bidder" validate:"required"`
	}{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	escrow, err := h.auction.GetEscrow(ctx, domain.ItemId(p.ItemId), p.Bidder)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, escrow)
}

func (h *handler) getListingFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"listingFee": h.auction.ListingFee(ctx),
	})
}
