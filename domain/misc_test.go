package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	req := require.New(t)
	a := Address("0xAbCd000000000000000000000000000000001234")

	req.True(a.Equals("0xabcd000000000000000000000000000000001234"))
	req.Equal("0xAbCd...1234", a.Short())
	req.Equal("0x12", Address("0x12").Short())
	req.False(a.IsEmpty())
	req.True(Address("").IsEmpty())
	req.True(EmptyAddress.IsEmpty())
}

func TestTokenId(t *testing.T) {
	req := require.New(t)

	id, err := TokenId("42").ToBigInt()
	req.NoError(err)
	req.Equal(int64(42), id.Int64())

	_, err = TokenId("abc").ToBigInt()
	req.ErrorIs(err, ErrInvalidNumberFormat)
	_, err = TokenId("-1").ToBigInt()
	req.ErrorIs(err, ErrInvalidNumberFormat)

	req.Equal(TokenId("7"), TokenIdFromBigInt(big.NewInt(7)))
	req.Equal(TokenId(""), TokenIdFromBigInt(nil))
}
