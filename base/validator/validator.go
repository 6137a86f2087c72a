package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	pricefomatter "github.com/x-xyz/swipebid/base/price_fomatter"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// New returns a validator with the project's custom tags registered:
//
//	eth_amount: a positive decimal ETH amount with at most 18 fraction digits
//	eth_address: a hex address
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("eth_amount", func(fl validator.FieldLevel) bool {
		wei, err := pricefomatter.ParseEther(fl.Field().String())
		return err == nil && wei.Sign() > 0
	})
	_ = v.RegisterValidation("eth_address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
