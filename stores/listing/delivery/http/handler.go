package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/delivery"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/listing"
	authMiddleware "github.com/x-xyz/swipebid/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
	explore listing.ExploreUsecase
	wallet  domain.Wallet
}

func New(
	e *echo.Echo,
	listingUC listing.Usecase,
	exploreUC listing.ExploreUsecase,
	wallet domain.Wallet,
	optionalAuth echo.MiddlewareFunc,
) {
	h := &handler{
		listing: listingUC,
		explore: exploreUC,
		wallet:  wallet,
	}

	ex := e.Group("/explore")
	ex.POST("", h.start)
	ex.GET("/:sessionId", h.current)
	ex.POST("/:sessionId/pass", h.pass)
	ex.POST("/:sessionId/previous", h.previous)
	ex.POST("/:sessionId/refresh", h.refresh)
	ex.DELETE("/:sessionId", h.close)

	ls := e.Group("/listings")
	ls.GET("/owner", h.ownerListings, optionalAuth)
	ls.GET("/won", h.wonListings, optionalAuth)
	ls.GET("/:tokenId", h.get)
	ls.POST("/:tokenId/end", h.endBidding)
}

// account is the authenticated address, else the wallet's own
func (h *handler) account(c echo.Context) (domain.Address, error) {
	if ads := authMiddleware.Address(c); !ads.IsEmpty() {
		return ads, nil
	}
	return h.wallet.Address()
}

// start
//
//	@Summary		Start an explore session
//	@Description	Loads the first page of active listings and returns the first card
//	@Tags			explore
//	@Produce		json
//	@Success		201	{object}	object{data=listing.View}
//	@Failure		500
//	@Router			/explore [post]
func (h *handler) start(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	view, err := h.explore.Start(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("explore.Start failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, view)
}

// current
//
//	@Summary		Current card of a session
//	@Tags			explore
//	@Produce		json
//	@Param			sessionId	path		string	true	"session id"
//	@Success		200			{object}	object{data=listing.View}
//	@Failure		404
//	@Router			/explore/{sessionId} [get]
func (h *handler) current(c echo.Context) error {
	return h.step(c, "explore.Current", h.explore.Current)
}

// pass
//
//	@Summary		Pass on the current card
//	@Description	Moves to the next listing, loading the next page or looping over seen listings
//	@Tags			explore
//	@Produce		json
//	@Param			sessionId	path		string	true	"session id"
//	@Success		200			{object}	object{data=listing.View}
//	@Failure		404
//	@Router			/explore/{sessionId}/pass [post]
func (h *handler) pass(c echo.Context) error {
	return h.step(c, "explore.Pass", h.explore.Pass)
}

// previous
//
//	@Summary		Back to the previous card
//	@Tags			explore
//	@Produce		json
//	@Param			sessionId	path		string	true	"session id"
//	@Success		200			{object}	object{data=listing.View}
//	@Failure		404
//	@Router			/explore/{sessionId}/previous [post]
func (h *handler) previous(c echo.Context) error {
	return h.step(c, "explore.Previous", h.explore.Previous)
}

// refresh
//
//	@Summary		Refetch the session's listings
//	@Tags			explore
//	@Produce		json
//	@Param			sessionId	path		string	true	"session id"
//	@Success		200			{object}	object{data=listing.View}
//	@Failure		404
//	@Router			/explore/{sessionId}/refresh [post]
func (h *handler) refresh(c echo.Context) error {
	return h.step(c, "explore.Refresh", h.explore.Refresh)
}

func (h *handler) step(c echo.Context, name string, f func(ctx.Ctx, string) (*listing.View, error)) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sessionId := c.Param("sessionId")
	view, err := f(ctx, sessionId)
	if err != nil {
		ctx.WithField("err", err).Warn(name + " failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) close(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.explore.Close(ctx, c.Param("sessionId")); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// get
//
//	@Summary		Get an active listing
//	@Tags			listings
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=listing.NormalizedListing}
//	@Failure		404
//	@Router			/listings/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	l, err := h.listing.Get(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

// ownerListings
//
//	@Summary		Listings of the connected account
//	@Description	Active listings sold by the authenticated address, or by the gateway wallet without a token
//	@Tags			listings
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=[]listing.OwnerListing}
//	@Failure		412
//	@Router			/listings/owner [get]
func (h *handler) ownerListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	owner, err := h.account(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	res, err := h.listing.OwnerListings(ctx, owner)
	if err != nil {
		ctx.WithField("err", err).Error("listing.OwnerListings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// wonListings
//
//	@Summary		NFTs won by the connected account
//	@Tags			listings
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	object{data=[]listing.NormalizedListing}
//	@Failure		412
//	@Router			/listings/won [get]
func (h *handler) wonListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bidder, err := h.account(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	res, err := h.listing.WonListings(ctx, bidder)
	if err != nil {
		ctx.WithField("err", err).Error("listing.WonListings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// endBidding
//
//	@Summary		End bidding on a listing
//	@Description	Sends endBidding and returns once broadcast; the listing shows as pending until mined
//	@Tags			listings
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		202		{object}	object{data=string}	"tx hash"
//	@Failure		409
//	@Failure		412
//	@Router			/listings/{tokenId}/end [post]
func (h *handler) endBidding(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	hash, err := h.listing.EndBidding(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusAccepted, hash)
}
