package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/delivery"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/service/ens"
)

type handler struct {
	ens ens.ENS
}

func New(e *echo.Echo, ens ens.ENS, m ...echo.MiddlewareFunc) {
	h := &handler{
		ens,
	}

	g := e.Group("/ens", m...)
	g.GET("/resolve/:name", h.Resolve)
	g.GET("/reverse-resolve/:address", h.ReverseResolve)
}

// Resolve
//
//	@Summary		Resolve an ENS name
//	@Tags			ens
//	@Produce		json
//	@Param			name	path		string	true	"ens name"
//	@Success		200		{object}	object{data=string}
//	@Router			/ens/resolve/{name} [get]
func (h *handler) Resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name string `param:"name" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address, err := h.ens.Resolve(ctx, p.Name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": p.Name,
		}).Warn("ens.Resolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

// ReverseResolve returns the seller display name used on listing cards, "" when
// the address has none
func (h *handler) ReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `param:"address" validate:"eth_address"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.ens.ReverseResolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}
