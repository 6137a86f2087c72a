package delivery

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/bid"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorStatus maps domain errors to http status, falling back to def
func ErrorStatus(err error, def int) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidBid), errors.Is(err, domain.ErrUnsupportedImage),
		errors.Is(err, domain.ErrImageTooLarge), errors.Is(err, domain.ErrMetadataIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidNumberFormat),
		errors.Is(err, domain.ErrInvalidAddress), errors.Is(err, domain.ErrInvalidJsonFormat),
		errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrWalletNotConnected):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrTxFailed), errors.Is(err, domain.ErrTxReverted), errors.Is(err, domain.ErrTxTimeout):
		return http.StatusBadGateway
	}
	return def
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrorStatus(err, status)
		var ferr *bid.FieldError
		if errors.As(err, &ferr) {
			data = ferr
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
