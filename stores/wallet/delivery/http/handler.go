package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/swipebid/base/delivery"
	"github.com/x-xyz/swipebid/domain"
)

type handler struct {
	wallet domain.Wallet
}

func New(e *echo.Echo, wallet domain.Wallet) {
	h := &handler{
		wallet: wallet,
	}
	e.GET("/wallet", h.get)
}

// get
//
//	@Summary		Connected wallet
//	@Description	Address the gateway signs with, 412 when no wallet is connected
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{object}	object{data=object{address=string}}
//	@Failure		412
//	@Router			/wallet [get]
func (h *handler) get(c echo.Context) error {
	address, err := h.wallet.Address()
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]domain.Address{
		"address": address,
	})
}
