package pricefomatter

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/swipebid/domain"
)

// EthDecimals is the fixed wei exponent of the native token
const EthDecimals = 18

var amountRegex = regexp.MustCompile(`^\d*\.?\d*$`)

// ToEther converts wei to ETH; nil is zero
func ToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EthDecimals)
}

// FormatEther renders wei as a plain decimal ETH string, e.g. "1.5"
func FormatEther(wei *big.Int) string {
	return ToEther(wei).String()
}

// IsAmount reports whether s looks like an unsigned decimal, "1", "1.", ".5"
func IsAmount(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "." && amountRegex.MatchString(s)
}

// ParseEther parses an unsigned decimal ETH amount into wei. Amounts finer
// than one wei are rejected rather than rounded.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if !IsAmount(s) {
		return nil, xerrors.Errorf("%q: %w", s, domain.ErrInvalidNumberFormat)
	}
	if strings.HasSuffix(s, ".") {
		s = strings.TrimSuffix(s, ".")
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, xerrors.Errorf("%q: %w", s, domain.ErrInvalidNumberFormat)
	}
	wei := d.Shift(EthDecimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, xerrors.Errorf("%q has more than %d decimals: %w", s, EthDecimals, domain.ErrInvalidNumberFormat)
	}
	return wei.BigInt(), nil
}
