package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/validator"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/bid"
	"github.com/x-xyz/swipebid/domain/bid/mocks"
)

func newServer(t *testing.T) (*echo.Echo, *mocks.Usecase) {
	e := echo.New()
	e.Validator = validator.NewCustomValidator(validator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	us := mocks.NewUsecase(t)
	New(e, us)
	return e, us
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPlaceConfirmed(t *testing.T) {
	e, us := newServer(t)
	p := bid.PlaceParams{TokenId: "1", Amount: "1.5", SessionId: "ses-1"}
	us.On("Place", mock.Anything, p).Return(&bid.Modal{TokenId: "1", Amount: "1.5", State: bid.StateConfirmed, TxHash: "0xbid"}, nil).Once()

	rec := post(e, "/bids", `{"tokenId":"1","amount":"1.5","sessionId":"ses-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"state":"confirmed"`)
}

func TestPlaceFieldError(t *testing.T) {
	e, us := newServer(t)
	ferr := &bid.FieldError{Field: bid.FieldAmount, Message: "bid must be at least the base price of 1 ETH"}
	us.On("Place", mock.Anything, mock.Anything).Return(&bid.Modal{State: bid.StateFailed, Field: bid.FieldAmount}, ferr).Once()

	rec := post(e, "/bids", `{"tokenId":"1","amount":"0.5"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"data":{"field":"amount","message":"bid must be at least the base price of 1 ETH"},"status":"fail"}`, rec.Body.String())
}

func TestPlaceBadTokenId(t *testing.T) {
	e, _ := newServer(t)

	rec := post(e, "/bids", `{"tokenId":"abc","amount":"1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcknowledge(t *testing.T) {
	e, us := newServer(t)
	us.On("Acknowledge", mock.Anything, domain.TokenId("4")).Return(nil, domain.ErrInvalidTransition).Once()

	rec := post(e, "/bids/4/ack", "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetModal(t *testing.T) {
	e, us := newServer(t)
	us.On("Get", mock.Anything, domain.TokenId("4")).Return(&bid.Modal{TokenId: "4", State: bid.StateIdle}, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bids/4", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"state":"idle"`)
}
