package chain

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/x-xyz/swipebid/base/abi"
	bCtx "github.com/x-xyz/swipebid/base/ctx"
	baseeth "github.com/x-xyz/swipebid/base/ethereum"
	"github.com/x-xyz/swipebid/domain"
)

// fakeBackend answers only what the client uses; anything else panics on the nil embed
type fakeBackend struct {
	domain.EthClientRepo

	mu          sync.Mutex
	callOutput  []byte
	receipts    []*types.Receipt
	receiptHits int
	sent        []*types.Transaction
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	return f.callOutput, nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptHits++
	if len(f.receipts) == 0 {
		return nil, ethereum.NotFound
	}
	r := f.receipts[0]
	f.receipts = f.receipts[1:]
	if r == nil {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	return 42, nil
}

type ClientTestSuite struct {
	suite.Suite
	ctx     bCtx.Ctx
	backend *fakeBackend
	client  Client
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.backend = &fakeBackend{}
	s.client = NewClientWithBackend(s.backend, &ClientCfg{
		TxTimeout:    50 * time.Millisecond,
		PollInterval: time.Millisecond,
	})
}

func (s *ClientTestSuite) TestCall() {
	out, err := baseabi.MarketplaceABI.Methods["getTotalListings"].Outputs.Pack(big.NewInt(25))
	s.Require().NoError(err)
	s.backend.callOutput = out

	res, err := s.client.Call(s.ctx, common.HexToAddress("0x1"), baseabi.MarketplaceABI, "getTotalListings")
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(int64(25), res[0].(*big.Int).Int64())
}

func (s *ClientTestSuite) TestCallBadParams() {
	_, err := s.client.Call(s.ctx, common.HexToAddress("0x1"), baseabi.MarketplaceABI, "getActiveListings", "x")
	s.Error(err)
}

func (s *ClientTestSuite) TestWaitReceipt() {
	s.backend.receipts = []*types.Receipt{nil, nil, {Status: types.ReceiptStatusSuccessful}}
	r, err := s.client.WaitReceipt(s.ctx, common.HexToHash("0xabc"))
	s.Require().NoError(err)
	s.Equal(types.ReceiptStatusSuccessful, r.Status)
	s.Equal(3, s.backend.receiptHits)
}

func (s *ClientTestSuite) TestWaitReceiptReverted() {
	s.backend.receipts = []*types.Receipt{{Status: types.ReceiptStatusFailed}}
	_, err := s.client.WaitReceipt(s.ctx, common.HexToHash("0xabc"))
	s.ErrorIs(err, domain.ErrTxReverted)
}

func (s *ClientTestSuite) TestWaitReceiptTimeout() {
	_, err := s.client.WaitReceipt(s.ctx, common.HexToHash("0xabc"))
	s.ErrorIs(err, domain.ErrTxTimeout)
	s.Greater(s.backend.receiptHits, 1)
}

func (s *ClientTestSuite) TestTransact() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	wallet := baseeth.NewWalletFromKey(key, 1337)
	opts, err := wallet.TransactOpts(s.ctx, big.NewInt(1000))
	s.Require().NoError(err)
	opts.GasPrice = big.NewInt(1)
	opts.GasLimit = 100000
	opts.Nonce = big.NewInt(7)

	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tx, err := s.client.Transact(s.ctx, opts, addr, baseabi.MarketplaceABI, "placeBid", big.NewInt(3))
	s.Require().NoError(err)
	s.Require().Len(s.backend.sent, 1)
	s.Equal(tx.Hash(), s.backend.sent[0].Hash())
	s.Equal(addr, *tx.To())
	s.Equal(int64(1000), tx.Value().Int64())
	s.Equal(uint64(7), tx.Nonce())
	s.Equal(baseabi.MarketplaceABI.Methods["placeBid"].ID, tx.Data()[:4])
}

func (s *ClientTestSuite) TestBlockNumber() {
	n, err := s.client.BlockNumber(s.ctx)
	s.NoError(err)
	s.Equal(uint64(42), n)
}
