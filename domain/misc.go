package domain

import (
	"math/big"
	"strings"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty is true for "" and for the zero address
func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// Short renders 0x1234...abcd
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 10 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(string(i), 10)
	if !ok || id.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return id, nil
}

func TokenIdFromBigInt(id *big.Int) TokenId {
	if id == nil {
		return ""
	}
	return TokenId(id.String())
}

type TxHash string
