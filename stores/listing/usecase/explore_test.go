package usecase

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/domain/listing/mocks"
	"github.com/x-xyz/swipebid/service/cache"
	"github.com/x-xyz/swipebid/service/cache/provider/primitive"
	listing_repository "github.com/x-xyz/swipebid/stores/listing/repository"
)

// activeSet serves pages of a listing slice the tests can swap out
type activeSet struct {
	mu  sync.Mutex
	all []listing.RawListing
}

func (a *activeSet) set(all []listing.RawListing) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.all = all
}

func (a *activeSet) page(_ ctx.Ctx, offset, limit int) []listing.RawListing {
	a.mu.Lock()
	defer a.mu.Unlock()
	if offset >= len(a.all) {
		return []listing.RawListing{}
	}
	end := offset + limit
	if end > len(a.all) {
		end = len(a.all)
	}
	return a.all[offset:end]
}

func (a *activeSet) total(ctx.Ctx) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.all)
}

func (a *activeSet) every(ctx.Ctx, int) []listing.RawListing {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]listing.RawListing(nil), a.all...)
}

// marketListings look like what a live marketplace returns, metadata uri,
// traits and a bid on every other token
func marketListings(n int) []listing.RawListing {
	eth := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	res := []listing.RawListing{}
	for i := 0; i < n; i++ {
		l := listing.RawListing{
			TokenId:     big.NewInt(int64(i)),
			Seller:      other,
			Name:        fmt.Sprintf("Harbour Lights #%d", i),
			Description: strings.Repeat("A long exposure of the old harbour at dusk. ", 5),
			ImageURI:    fmt.Sprintf("ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi/%d.json", i),
			Traits:      []string{"Background:Midnight Blue", "Palette:Warm", "Edition:First"},
			BasePrice:   new(big.Int).Set(eth),
			Active:      true,
		}
		if i%2 == 0 {
			l.HighestBidder = me
			l.HighestBid = new(big.Int).Mul(eth, big.NewInt(2))
		}
		res = append(res, l)
	}
	return res
}

func normalizeNamed(_ ctx.Ctx, l listing.RawListing) listing.NormalizedListing {
	return listing.NormalizedListing{TokenId: l.Id(), Seller: l.Seller, Name: l.Name}
}

type ExploreUseCaseTestSuite struct {
	suite.Suite
	ctx     ctx.Ctx
	active  *activeSet
	repo    *mocks.Repository
	usecase listing.ExploreUsecase
}

func TestExploreUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(ExploreUseCaseTestSuite))
}

func (s *ExploreUseCaseTestSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.active = &activeSet{}
	s.repo = &mocks.Repository{}
	s.repo.On("GetActive", mock.Anything, mock.Anything, mock.Anything).Return(s.active.page, nil).Maybe()
	s.repo.On("GetTotal", mock.Anything).Return(s.active.total, nil).Maybe()
	s.repo.On("GetAllActive", mock.Anything, mock.Anything).Return(s.active.every, nil).Maybe()
	s.usecase = NewExploreUseCase(&ExploreUseCaseCfg{
		Repo:       s.repo,
		Normalizer: newNormalizer(),
		Sessions:   newCache("session", time.Minute),
		PageSize:   12,
	})
}

func (s *ExploreUseCaseTestSuite) TestCycleVisitsEveryListingOnce() {
	s.active.set(makeListings(0, 25, other))

	v, err := s.usecase.Start(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, v.TotalPages)

	visited := map[domain.TokenId]int{}
	loops := 0
	for i := 0; i < 100 && loops == 0; i++ {
		s.Require().NotNil(v.Listing)
		visited[v.Listing.TokenId]++
		v, err = s.usecase.Pass(s.ctx, v.SessionId)
		s.Require().NoError(err)
		if v.Looped {
			loops++
		}
	}

	s.Equal(1, loops)
	s.Len(visited, 25)
	for id, n := range visited {
		s.Equal(1, n, "token %s", id)
	}
	s.True(v.FirstCycleComplete)
	s.Equal(domain.TokenId("0"), v.Listing.TokenId)
	s.Equal(25, v.Size)

	// the looping notice is transient
	v, err = s.usecase.Pass(s.ctx, v.SessionId)
	s.Require().NoError(err)
	s.False(v.Looped)
	s.Equal(domain.TokenId("1"), v.Listing.TokenId)
}

func (s *ExploreUseCaseTestSuite) TestEmpty() {
	v, err := s.usecase.Start(s.ctx)
	s.Require().NoError(err)
	s.True(v.Empty)
	s.Nil(v.Listing)

	v, err = s.usecase.Pass(s.ctx, v.SessionId)
	s.Require().NoError(err)
	s.True(v.Empty)

	v, err = s.usecase.Current(s.ctx, v.SessionId)
	s.Require().NoError(err)
	s.True(v.Empty)
}

func (s *ExploreUseCaseTestSuite) TestPreviousAndCurrent() {
	s.active.set(makeListings(0, 5, other))

	v, err := s.usecase.Start(s.ctx)
	s.Require().NoError(err)
	id := v.SessionId

	v, err = s.usecase.Previous(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(0, v.Index)

	s.usecase.Pass(s.ctx, id)
	s.usecase.Pass(s.ctx, id)
	v, err = s.usecase.Previous(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.TokenId("1"), v.Listing.TokenId)

	v, err = s.usecase.Current(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.TokenId("1"), v.Listing.TokenId)
}

func (s *ExploreUseCaseTestSuite) TestRefreshKeepsToken() {
	s.active.set(makeListings(0, 5, other))
	v, _ := s.usecase.Start(s.ctx)
	id := v.SessionId
	s.usecase.Pass(s.ctx, id)
	s.usecase.Pass(s.ctx, id)

	// token 0 got sold
	s.active.set(makeListings(1, 5, other))
	v, err := s.usecase.Refresh(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.TokenId("2"), v.Listing.TokenId)
	s.Equal(1, v.Index)
	s.Equal(4, v.Total)
}

func (s *ExploreUseCaseTestSuite) TestRefreshAfterCycle() {
	s.active.set(makeListings(0, 3, other))
	v, _ := s.usecase.Start(s.ctx)
	id := v.SessionId
	for !v.Looped {
		v, _ = s.usecase.Pass(s.ctx, id)
	}

	s.active.set(makeListings(1, 3, other))
	v, err := s.usecase.Refresh(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(2, v.Size)
	s.Equal(domain.TokenId("1"), v.Listing.TokenId)
}

func (s *ExploreUseCaseTestSuite) TestUnknownSession() {
	_, err := s.usecase.Current(s.ctx, "nope")
	s.ErrorIs(err, domain.ErrSessionNotFound)
	_, err = s.usecase.Pass(s.ctx, "nope")
	s.ErrorIs(err, domain.ErrSessionNotFound)
	s.ErrorIs(s.usecase.Close(s.ctx, "nope"), domain.ErrSessionNotFound)
}

func (s *ExploreUseCaseTestSuite) TestClose() {
	s.active.set(makeListings(0, 2, other))
	v, _ := s.usecase.Start(s.ctx)

	s.NoError(s.usecase.Close(s.ctx, v.SessionId))
	_, err := s.usecase.Current(s.ctx, v.SessionId)
	s.ErrorIs(err, domain.ErrSessionNotFound)
}

func (s *ExploreUseCaseTestSuite) TestConcurrentPassesAreSerialized() {
	s.active.set(makeListings(0, 30, other))
	v, _ := s.usecase.Start(s.ctx)
	id := v.SessionId

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.usecase.Pass(s.ctx, id)
		}()
	}
	wg.Wait()

	v, err := s.usecase.Current(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.TokenId("10"), v.Listing.TokenId)
}

func (s *ExploreUseCaseTestSuite) TestFetchError() {
	repo := &mocks.Repository{}
	repo.On("GetActive", mock.Anything, 0, 12).Return(nil, domain.ErrTxFailed)
	repo.On("GetTotal", mock.Anything).Return(0, nil)
	u := NewExploreUseCase(&ExploreUseCaseCfg{
		Repo:       repo,
		Normalizer: newNormalizer(),
		Sessions:   newCache("session", time.Minute),
	})

	_, err := u.Start(s.ctx)
	s.ErrorIs(err, domain.ErrTxFailed)
}

func (s *ExploreUseCaseTestSuite) TestUnlistedCurrent() {
	s.active.set(makeListings(0, 5, other))
	v, _ := s.usecase.Start(s.ctx)
	id := v.SessionId
	s.usecase.Pass(s.ctx, id)
	s.usecase.Pass(s.ctx, id)

	// token 2 ended while it was on screen
	s.active.set(append(makeListings(0, 2, other), makeListings(3, 5, other)...))
	v, err := s.usecase.Current(s.ctx, id)
	s.Require().NoError(err)
	s.True(v.Unlisted)
	s.Equal(domain.TokenId("2"), v.TokenId)
	s.Nil(v.Listing)

	v, err = s.usecase.Refresh(s.ctx, id)
	s.Require().NoError(err)
	s.False(v.Unlisted)
	s.Equal(domain.TokenId("3"), v.Listing.TokenId)
}

func (s *ExploreUseCaseTestSuite) TestLongSessionOnDefaultCache() {
	const n = 400
	local := primitive.NewPrimitive("swipebid", 64)
	active := &activeSet{}
	active.set(marketListings(n))

	contract := &mocks.Contract{}
	contract.On("GetTotalListings", mock.Anything).Return(active.total, nil)
	contract.On("GetActiveListings", mock.Anything, mock.Anything, mock.Anything).Return(active.page, nil)
	normalizer := &mocks.Normalizer{}
	normalizer.On("Normalize", mock.Anything, mock.Anything).Return(normalizeNamed)

	u := NewExploreUseCase(&ExploreUseCaseCfg{
		Repo: listing_repository.New(&listing_repository.ListingRepoCfg{
			Contract: contract,
			Cache:    local,
			Ttl:      time.Minute,
		}),
		Normalizer: normalizer,
		Sessions: cache.New(cache.ServiceConfig{
			Ttl:   30 * time.Minute,
			Pfx:   keys.PfxSession,
			Cache: local,
		}),
		PageSize: 12,
	})

	v, err := u.Start(s.ctx)
	s.Require().NoError(err)
	id := v.SessionId

	visited := map[domain.TokenId]bool{}
	for i := 0; !v.Looped; i++ {
		s.Require().Less(i, 2*n)
		s.Require().NotNil(v.Listing, "pass %d", i)
		s.Equal(fmt.Sprintf("Harbour Lights #%s", v.Listing.TokenId), v.Listing.Name)
		visited[v.Listing.TokenId] = true
		v, err = u.Pass(s.ctx, id)
		s.Require().NoError(err, "pass %d", i)
	}
	s.Len(visited, n)
	s.Equal(n, v.Size)

	for i := 0; i < 50; i++ {
		v, err = u.Pass(s.ctx, id)
		s.Require().NoError(err)
		s.Require().NotNil(v.Listing)
	}
	v, err = u.Refresh(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.TokenId("50"), v.Listing.TokenId)
	s.Equal("Harbour Lights #50", v.Listing.Name)

	// the stored cursor carries token ids, never listing data
	ses, err := u.(*exploreUseCase).load(s.ctx, id)
	s.Require().NoError(err)
	raw, err := json.Marshal(ses)
	s.Require().NoError(err)
	s.Less(len(raw), 8*1024)
	s.Nil(ses.PageIds)
	s.Len(ses.Seen, n)
}
