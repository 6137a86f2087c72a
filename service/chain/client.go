package chain

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	"github.com/x-xyz/swipebid/base/backoff"
	bCtx "github.com/x-xyz/swipebid/base/ctx"
	baseeth "github.com/x-xyz/swipebid/base/ethereum"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/base/metrics"
	"github.com/x-xyz/swipebid/domain"
)

const defaultTxTimeout = 30 * time.Second

type ClientCfg struct {
	RpcUrl         string
	MaxConcurrency int
	// TxTimeout bounds WaitReceipt
	TxTimeout time.Duration
	// PollInterval is the first receipt polling delay, doubled up to 4s
	PollInterval time.Duration
}

type Client interface {
	Call(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(c bCtx.Ctx, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error)
	// WaitReceipt polls until the receipt shows up, the tx timeout passes or c is done
	WaitReceipt(c bCtx.Ctx, hash common.Hash) (*types.Receipt, error)
	BlockNumber(c bCtx.Ctx) (uint64, error)
	Close()
}

type clientImpl struct {
	backend      domain.EthClientRepo
	txTimeout    time.Duration
	pollInterval time.Duration
	metrics      metrics.Service
}

func NewClient(c bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(c, cfg.RpcUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	var backend domain.EthClientRepo = client
	if cfg.MaxConcurrency > 0 {
		backend = baseeth.NewThrottledClient(client, cfg.MaxConcurrency)
	}
	return NewClientWithBackend(backend, cfg), nil
}

// NewClientWithBackend builds a client over an existing backend
func NewClientWithBackend(backend domain.EthClientRepo, cfg *ClientCfg) Client {
	txTimeout := cfg.TxTimeout
	if txTimeout <= 0 {
		txTimeout = defaultTxTimeout
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}
	return &clientImpl{
		backend:      backend,
		txTimeout:    txTimeout,
		pollInterval: pollInterval,
		metrics:      metrics.New("chain"),
	}
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer c.metrics.BumpTime("call.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		c.metrics.BumpSum("call.err", 1, "method", method)
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Transaction, error) {
	defer c.metrics.BumpTime("transact.latency", "method", method).End()

	if opts.Context == nil {
		opts.Context = ctx
	}
	contract := bind.NewBoundContract(addr, _abi, c.backend, c.backend, c.backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		c.metrics.BumpSum("transact.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"from":   opts.From.Hex(),
		}).Error("contract.Transact failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrTxFailed, err)
	}
	ctx.WithFields(log.Fields{
		"method": method,
		"tx":     tx.Hash().Hex(),
	}).Info("transaction sent")
	return tx, nil
}

func (c *clientImpl) WaitReceipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	defer c.metrics.BumpTime("receipt.latency").End()

	ctx, cancel := bCtx.WithTimeout(ctx, c.txTimeout)
	defer cancel()

	b := backoff.NewExponential(c.pollInterval, 4*time.Second)
	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				ctx.WithField("tx", hash.Hex()).Warn("transaction reverted")
				return receipt, domain.ErrTxReverted
			}
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) && ctx.Err() == nil {
			ctx.WithFields(log.Fields{"err": err, "tx": hash.Hex()}).Warn("client.TransactionReceipt failed")
		}
		if err := b.Backoff(ctx); err != nil {
			ctx.WithFields(log.Fields{
				"tx":    hash.Hex(),
				"polls": b.Count(),
			}).Warn("gave up waiting for receipt")
			return nil, domain.ErrTxTimeout
		}
	}
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	return c.backend.BlockNumber(ctx)
}

func (c *clientImpl) Close() {
	c.backend.Close()
}
