package bid

import (
	"fmt"
	"math/big"
	"strings"

	pricefomatter "github.com/x-xyz/swipebid/base/price_fomatter"
	"github.com/x-xyz/swipebid/domain"
)

const FieldAmount = "amount"

// FieldError is an input error bound to one form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return domain.ErrInvalidBid
}

func amountError(format string, args ...interface{}) *FieldError {
	return &FieldError{Field: FieldAmount, Message: fmt.Sprintf(format, args...)}
}

// Validate checks a bid amount in ETH against the listing's base price and
// highest bid, both in wei, and returns the amount in wei.
func Validate(amount string, basePrice, highestBid *big.Int) (*big.Int, *FieldError) {
	if strings.TrimSpace(amount) == "" {
		return nil, amountError("enter a bid amount")
	}
	value, err := pricefomatter.ParseEther(amount)
	if err != nil {
		return nil, amountError("enter a valid ETH amount")
	}
	if value.Sign() <= 0 {
		return nil, amountError("bid must be greater than 0")
	}
	if basePrice != nil && value.Cmp(basePrice) < 0 {
		return nil, amountError("bid must be at least %s ETH", pricefomatter.FormatEther(basePrice))
	}
	if highestBid != nil && highestBid.Sign() > 0 && value.Cmp(highestBid) <= 0 {
		return nil, amountError("bid must be higher than the current bid of %s ETH", pricefomatter.FormatEther(highestBid))
	}
	return value, nil
}
