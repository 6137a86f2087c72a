package usecase

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/domain/listing/mocks"
	dMocks "github.com/x-xyz/swipebid/domain/mocks"
	"github.com/x-xyz/swipebid/service/cache"
	"github.com/x-xyz/swipebid/service/cache/provider/primitive"
)

const (
	me    = domain.Address("0x00000000000000000000000000000000000000aA")
	other = domain.Address("0x0000000000000000000000000000000000000bbb")
)

func makeListings(from, to int, seller domain.Address) []listing.RawListing {
	res := []listing.RawListing{}
	for i := from; i < to; i++ {
		res = append(res, listing.RawListing{
			TokenId:   big.NewInt(int64(i)),
			Seller:    seller,
			BasePrice: big.NewInt(1),
			Active:    true,
		})
	}
	return res
}

func tokenArg(id int64) interface{} {
	return mock.MatchedBy(func(got *big.Int) bool { return got.Cmp(big.NewInt(id)) == 0 })
}

func normalize(_ ctx.Ctx, l listing.RawListing) listing.NormalizedListing {
	return listing.NormalizedListing{TokenId: l.Id(), Seller: l.Seller}
}

func normalizeAll(c ctx.Ctx, ls []listing.RawListing) []listing.NormalizedListing {
	res := []listing.NormalizedListing{}
	for _, l := range ls {
		res = append(res, normalize(c, l))
	}
	return res
}

func newNormalizer() *mocks.Normalizer {
	n := &mocks.Normalizer{}
	n.On("Normalize", mock.Anything, mock.Anything).Return(normalize).Maybe()
	n.On("NormalizeAll", mock.Anything, mock.Anything).Return(normalizeAll).Maybe()
	return n
}

func newCache(name string, ttl time.Duration) cache.Service {
	return cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   name,
		Cache: primitive.NewPrimitive(name, 1),
	})
}

type ListingUseCaseTestSuite struct {
	suite.Suite
	ctx      ctx.Ctx
	repo     *mocks.Repository
	contract *mocks.Contract
	wallet   *dMocks.Wallet
	usecase  listing.Usecase
}

func TestListingUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(ListingUseCaseTestSuite))
}

func (s *ListingUseCaseTestSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.repo = &mocks.Repository{}
	s.contract = &mocks.Contract{}
	s.wallet = &dMocks.Wallet{}
	s.usecase = NewListingUseCase(&ListingUseCaseCfg{
		Repo:       s.repo,
		Contract:   s.contract,
		Normalizer: newNormalizer(),
		Wallet:     s.wallet,
		Pending:    newCache("pending", 30*time.Second),
		PageSize:   12,
		TxTimeout:  time.Second,
	})
}

func (s *ListingUseCaseTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.contract.AssertExpectations(s.T())
}

func (s *ListingUseCaseTestSuite) TestOwnerListingsKeepOrder() {
	all := makeListings(0, 10, other)
	for _, i := range []int{1, 4, 8} {
		all[i].Seller = me
	}
	s.repo.On("GetAllActive", mock.Anything, 12).Return(all, nil).Once()

	got, err := s.usecase.OwnerListings(s.ctx, domain.Address("0x00000000000000000000000000000000000000AA"))
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(domain.TokenId("1"), got[0].TokenId)
	s.Equal(domain.TokenId("4"), got[1].TokenId)
	s.Equal(domain.TokenId("8"), got[2].TokenId)
	for _, l := range got {
		s.False(l.Pending)
	}
}

func (s *ListingUseCaseTestSuite) TestOwnerListingsInvalidAddress() {
	_, err := s.usecase.OwnerListings(s.ctx, "")
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *ListingUseCaseTestSuite) TestWonListings() {
	s.repo.On("GetWon", mock.Anything, me).Return(makeListings(5, 7, other), nil).Once()

	got, err := s.usecase.WonListings(s.ctx, me)
	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal(domain.TokenId("5"), got[0].TokenId)
}

func (s *ListingUseCaseTestSuite) TestGet() {
	s.repo.On("GetAllActive", mock.Anything, 12).Return(makeListings(0, 3, other), nil).Twice()

	got, err := s.usecase.Get(s.ctx, "2")
	s.Require().NoError(err)
	s.Equal(domain.TokenId("2"), got.TokenId)

	_, err = s.usecase.Get(s.ctx, "9")
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.usecase.Get(s.ctx, "abc")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func (s *ListingUseCaseTestSuite) TestEndBiddingWithoutWallet() {
	s.wallet.On("Address").Return(domain.Address(""), domain.ErrWalletNotConnected).Once()

	_, err := s.usecase.EndBidding(s.ctx, "1")
	s.ErrorIs(err, domain.ErrWalletNotConnected)
}

func (s *ListingUseCaseTestSuite) TestEndBiddingPendingConflict() {
	release := make(chan struct{})
	invalidated := make(chan struct{})
	s.wallet.On("Address").Return(me, nil)
	s.contract.On("EndBidding", mock.Anything, tokenArg(1)).Return(domain.TxHash("0xhash"), nil).Once()
	s.contract.On("WaitMined", mock.Anything, domain.TxHash("0xhash")).Run(func(mock.Arguments) {
		<-release
	}).Return(nil).Once()
	s.repo.On("Invalidate", mock.Anything).Run(func(mock.Arguments) {
		close(invalidated)
	}).Return().Once()
	s.repo.On("GetAllActive", mock.Anything, 12).Return(makeListings(1, 2, me), nil)

	hash, err := s.usecase.EndBidding(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(domain.TxHash("0xhash"), hash)

	_, err = s.usecase.EndBidding(s.ctx, "1")
	s.ErrorIs(err, domain.ErrConflict)

	owned, err := s.usecase.OwnerListings(s.ctx, me)
	s.Require().NoError(err)
	s.True(owned[0].Pending)

	close(release)
	select {
	case <-invalidated:
	case <-time.After(time.Second):
		s.FailNow("repository not invalidated")
	}

	s.Eventually(func() bool {
		owned, err := s.usecase.OwnerListings(s.ctx, me)
		return err == nil && !owned[0].Pending
	}, time.Second, 10*time.Millisecond)
}

func (s *ListingUseCaseTestSuite) TestEndBiddingTxErrorClearsPending() {
	s.wallet.On("Address").Return(me, nil)
	s.contract.On("EndBidding", mock.Anything, tokenArg(2)).Return(domain.TxHash(""), domain.ErrTxFailed).Twice()

	_, err := s.usecase.EndBidding(s.ctx, "2")
	s.ErrorIs(err, domain.ErrTxFailed)
	_, err = s.usecase.EndBidding(s.ctx, "2")
	s.ErrorIs(err, domain.ErrTxFailed)
}

func (s *ListingUseCaseTestSuite) TestEndBiddingConcurrent() {
	s.wallet.On("Address").Return(me, nil)
	s.contract.On("EndBidding", mock.Anything, tokenArg(3)).Return(domain.TxHash("0x3"), nil).Once()
	release := make(chan struct{})
	defer close(release)
	s.contract.On("WaitMined", mock.Anything, domain.TxHash("0x3")).Run(func(mock.Arguments) {
		<-release
	}).Return(domain.ErrTxReverted).Maybe()
	s.repo.On("Invalidate", mock.Anything).Return().Maybe()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.usecase.EndBidding(s.ctx, "3")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if err == domain.ErrConflict {
				conflicts++
			}
		}()
	}
	wg.Wait()
	s.Equal(1, ok)
	s.Equal(7, conflicts)
}

func (s *ListingUseCaseTestSuite) TestFilterBySeller() {
	all := append(makeListings(0, 2, me), makeListings(2, 4, other)...)
	s.Len(FilterBySeller(all, me), 2)
	s.Empty(FilterBySeller(nil, me))
}
