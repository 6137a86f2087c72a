package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/delivery"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/bid"
)

type handler struct {
	bid bid.Usecase
}

func New(e *echo.Echo, bidUC bid.Usecase) {
	h := &handler{
		bid: bidUC,
	}

	g := e.Group("/bids")
	g.POST("", h.place)
	g.GET("/:tokenId", h.get)
	g.POST("/:tokenId/ack", h.acknowledge)
}

// place
//
//	@Summary		Place a bid
//	@Description	Validates the amount against the latest listing state, sends placeBid and waits for the receipt.
//	@Description	A failed or reverted transaction is reported on the returned modal.
//	@Tags			bids
//	@Accept			json
//	@Produce		json
//	@Param			params	body		bid.PlaceParams	true	"params"
//	@Success		200		{object}	object{data=bid.Modal}
//	@Failure		404
//	@Failure		409
//	@Failure		412
//	@Failure		422		{object}	object{data=bid.FieldError}
//	@Router			/bids [post]
func (h *handler) place(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := bid.PlaceParams{}
	if err := c.Bind(&p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	modal, err := h.bid.Place(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, modal)
}

// get
//
//	@Summary		Bid modal of a listing
//	@Tags			bids
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=bid.Modal}
//	@Failure		412
//	@Router			/bids/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	modal, err := h.bid.Get(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, modal)
}

// acknowledge
//
//	@Summary		Dismiss a failed bid
//	@Tags			bids
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=bid.Modal}
//	@Failure		404
//	@Failure		409
//	@Router			/bids/{tokenId}/ack [post]
func (h *handler) acknowledge(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	modal, err := h.bid.Acknowledge(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, modal)
}
