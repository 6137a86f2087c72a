package ethereum

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/swipebid/domain"
)

func TestWalletLifecycle(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)

	w := NewWallet(hexutil.Encode(crypto.FromECDSA(privateKey)), 59141)
	req.False(w.Connected())
	_, err = w.Address()
	req.ErrorIs(err, domain.ErrWalletNotConnected)
	_, err = w.TransactOpts(context.Background(), nil)
	req.ErrorIs(err, domain.ErrWalletNotConnected)

	req.NoError(w.Init())
	req.True(w.Connected())
	addr, err := w.Address()
	req.NoError(err)
	req.True(addr.Equals(domain.Address(crypto.PubkeyToAddress(*publicKey).Hex())))

	opts, err := w.TransactOpts(context.Background(), big.NewInt(5))
	req.NoError(err)
	req.Equal(int64(5), opts.Value.Int64())
	req.Equal(crypto.PubkeyToAddress(*publicKey), opts.From)

	w.Dispose()
	req.False(w.Connected())
	_, err = w.Address()
	req.ErrorIs(err, domain.ErrWalletNotConnected)
}

func TestWalletWithoutKey(t *testing.T) {
	req := require.New(t)
	w := NewWallet("", 1)
	req.ErrorIs(w.Init(), domain.ErrWalletNotConnected)

	w = NewWallet("not-hex", 1)
	req.Error(w.Init())
	req.False(w.Connected())
}
