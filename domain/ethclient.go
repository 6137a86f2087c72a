package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthClientRepo is the slice of go-ethereum/ethclient the gateway uses
type EthClientRepo interface {
	bind.ContractBackend
	BlockNumber(context.Context) (uint64, error)
	TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error)
	Close()
}

// Wallet signs transactions for the connected account
type Wallet interface {
	// Address fails with ErrWalletNotConnected until the wallet is initialized
	Address() (Address, error)
	TransactOpts(c context.Context, value *big.Int) (*bind.TransactOpts, error)
}
