package ethereum

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/x-xyz/swipebid/domain"
)

// Wallet is a key-backed signer. It is inert until Init and forgets the key
// on Dispose.
type Wallet struct {
	keyHex  string
	chainId *big.Int

	mu      sync.RWMutex
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewWallet(privateKeyHex string, chainId int64) *Wallet {
	return &Wallet{
		keyHex:  strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"),
		chainId: big.NewInt(chainId),
	}
}

// NewWalletFromKey wraps an already parsed key, used by tests and tooling
func NewWalletFromKey(key *ecdsa.PrivateKey, chainId int64) *Wallet {
	return &Wallet{
		chainId: big.NewInt(chainId),
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (w *Wallet) Init() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.key != nil {
		return nil
	}
	if w.keyHex == "" {
		return domain.ErrWalletNotConnected
	}
	key, err := crypto.HexToECDSA(w.keyHex)
	if err != nil {
		return xerrors.Errorf("invalid private key: %w", err)
	}
	w.key = key
	w.address = crypto.PubkeyToAddress(key.PublicKey)
	return nil
}

func (w *Wallet) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.key = nil
	w.address = common.Address{}
}

func (w *Wallet) Connected() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.key != nil
}

func (w *Wallet) Address() (domain.Address, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.key == nil {
		return "", domain.ErrWalletNotConnected
	}
	return domain.Address(w.address.Hex()), nil
}

func (w *Wallet) TransactOpts(c context.Context, value *big.Int) (*bind.TransactOpts, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.key == nil {
		return nil, domain.ErrWalletNotConnected
	}
	opts, err := bind.NewKeyedTransactorWithChainID(w.key, w.chainId)
	if err != nil {
		return nil, err
	}
	opts.Context = c
	opts.Value = value
	return opts, nil
}
