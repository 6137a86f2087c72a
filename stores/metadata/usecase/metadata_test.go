package usecase

import (
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/domain/mocks"
	"github.com/x-xyz/swipebid/service/cache"
	"github.com/x-xyz/swipebid/service/cache/provider/primitive"
	ensMocks "github.com/x-xyz/swipebid/service/ens/mocks"
)

const (
	seller = domain.Address("0x1234567890abcdef1234567890abcdef12345678")
	bidder = domain.Address("0xabcdef0000000000000000000000000000009876")
)

var oneEth = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

func gateway(u string) string {
	if !strings.HasPrefix(u, "ipfs://") {
		return u
	}
	return "https://ipfs.io/ipfs/" + strings.TrimPrefix(u, "ipfs://")
}

func rawListing(id int64, imageURI string) listing.RawListing {
	return listing.RawListing{
		TokenId:     big.NewInt(id),
		Seller:      seller,
		Name:        "Sunset",
		Description: "a warm sunset over the bay",
		ImageURI:    imageURI,
		Traits:      []string{"Color:Orange", "Mood: calm", "Rare"},
		BasePrice:   new(big.Int).Set(oneEth),
		Active:      true,
		HighestBid:  big.NewInt(0),
	}
}

type NormalizerTestSuite struct {
	suite.Suite
	ctx bCtx.Ctx
	web *mocks.WebResourceUseCase
	ens *ensMocks.ENS
	im  listing.Normalizer
}

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func (s *NormalizerTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.web = &mocks.WebResourceUseCase{}
	s.web.On("GatewayUrl", mock.Anything).Return(gateway)
	s.ens = &ensMocks.ENS{}
	s.im = NewNormalizer(&NormalizerCfg{
		WebResource: s.web,
		MetadataCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "metadata",
			Cache: primitive.NewPrimitive("metadata", 1),
		}),
		FetchTimeout: time.Second,
		Workers:      4,
	})
}

func (s *NormalizerTestSuite) TearDownTest() {
	s.web.AssertExpectations(s.T())
	s.ens.AssertExpectations(s.T())
}

func (s *NormalizerTestSuite) TestHttpsPassthrough() {
	l := rawListing(1, "https://example.com/1.png")

	got := s.im.Normalize(s.ctx, l)

	s.web.AssertNotCalled(s.T(), "GetJson", mock.Anything, mock.Anything)
	s.Equal("https://example.com/1.png", got.Image)
	s.Equal("Sunset", got.Name)
	s.Equal("a warm sunset over the bay", got.Description)
	s.False(got.MetadataResolved)
}

func (s *NormalizerTestSuite) TestIpfsFetchFailureFallsBack() {
	l := rawListing(2, "ipfs://QmImage")
	s.web.On("GetJson", mock.Anything, "ipfs://QmImage").Return(nil, errors.New("bad status 504")).Once()

	got := s.im.Normalize(s.ctx, l)

	s.Equal("https://ipfs.io/ipfs/QmImage", got.Image)
	s.Equal("Sunset", got.Name)
	s.Equal("a warm sunset over the bay", got.Description)
	s.Equal(map[string]string{"Color": "Orange", "Mood": "calm", "Rare": ""}, got.Traits)
	s.False(got.MetadataResolved)
}

func (s *NormalizerTestSuite) TestInvalidJsonFallsBack() {
	l := rawListing(2, "ipfs://QmPng")
	s.web.On("GetJson", mock.Anything, "ipfs://QmPng").Return(nil, domain.ErrInvalidJsonFormat).Once()

	got := s.im.Normalize(s.ctx, l)

	s.Equal("https://ipfs.io/ipfs/QmPng", got.Image)
	s.False(got.MetadataResolved)
}

func (s *NormalizerTestSuite) TestMetadataWithoutImageFallsBack() {
	l := rawListing(3, "ipfs://QmMeta")
	s.web.On("GetJson", mock.Anything, "ipfs://QmMeta").Return([]byte(`{"name":"Other","description":"from metadata"}`), nil).Once()

	got := s.im.Normalize(s.ctx, l)

	s.Equal("https://ipfs.io/ipfs/QmMeta", got.Image)
	s.Equal("Sunset", got.Name)
	s.Equal("a warm sunset over the bay", got.Description)
	s.False(got.MetadataResolved)
}

func (s *NormalizerTestSuite) TestMetadataMerged() {
	l := rawListing(4, "ipfs://QmMeta")
	doc := `{
		"name": "Sunset #4",
		"description": "from metadata",
		"image": "ipfs://QmRealImage",
		"attributes": [
			{"trait_type": "Background", "value": "Orange"},
			{"trait_type": "Level", "value": 5},
			{"value": "orphan"}
		]
	}`
	s.web.On("GetJson", mock.Anything, "ipfs://QmMeta").Return([]byte(doc), nil).Once()

	got := s.im.Normalize(s.ctx, l)

	s.True(got.MetadataResolved)
	s.Equal("https://ipfs.io/ipfs/QmRealImage", got.Image)
	s.Equal("Sunset #4", got.Name)
	s.Equal("from metadata", got.Description)
	s.Equal(map[string]string{"Background": "Orange", "Level": "5", "Trait": "orphan"}, got.Traits)
}

func (s *NormalizerTestSuite) TestUntypedAttributesLabelled() {
	l := rawListing(7, "ipfs://QmMeta")
	doc := `{
		"image": "ipfs://QmRealImage",
		"attributes": [
			{"value": "Gold"},
			{"trait_type": "Eyes", "value": ""},
			{"trait_type": " ", "value": "Wide"},
			{"trait_type": "Hat"}
		]
	}`
	s.web.On("GetJson", mock.Anything, "ipfs://QmMeta").Return([]byte(doc), nil).Once()

	got := s.im.Normalize(s.ctx, l)

	s.Equal(map[string]string{
		"Trait":   "Gold",
		"Trait 2": "Wide",
		"Eyes":    "Unknown",
		"Hat":     "Unknown",
	}, got.Traits)
}

func (s *NormalizerTestSuite) TestTraitsKeyAccepted() {
	l := rawListing(5, "ipfs://QmMeta")
	doc := `{"image": "https://cdn.example.com/5.png", "traits": [{"trait_type": "Hat", "value": "Cap"}]}`
	s.web.On("GetJson", mock.Anything, "ipfs://QmMeta").Return([]byte(doc), nil).Once()

	got := s.im.Normalize(s.ctx, l)

	s.Equal("https://cdn.example.com/5.png", got.Image)
	s.Equal("Sunset", got.Name)
	s.Equal(map[string]string{"Hat": "Cap"}, got.Traits)
}

func (s *NormalizerTestSuite) TestMetadataIsCached() {
	doc := `{"image": "ipfs://QmRealImage"}`
	s.web.On("GetJson", mock.Anything, "ipfs://QmMeta").Return([]byte(doc), nil).Once()

	for i := 0; i < 3; i++ {
		got := s.im.Normalize(s.ctx, rawListing(6, "ipfs://QmMeta"))
		s.Equal("https://ipfs.io/ipfs/QmRealImage", got.Image)
	}
}

func (s *NormalizerTestSuite) TestPrices() {
	l := rawListing(7, "https://example.com/7.png")

	got := s.im.Normalize(s.ctx, l)
	s.Equal("1", got.BasePrice)
	s.Equal("0", got.HighestBid)
	s.Equal("1", got.CurrentPrice)
	s.Equal(NoBids, got.HighestBidInfo)

	l.HighestBid = new(big.Int).Add(oneEth, new(big.Int).Div(oneEth, big.NewInt(2)))
	l.HighestBidder = bidder
	got = s.im.Normalize(s.ctx, l)
	s.Equal("1.5", got.HighestBid)
	s.Equal("1.5", got.CurrentPrice)
	s.Equal("1.5 ETH by 0xabcd...9876", got.HighestBidInfo)
}

func (s *NormalizerTestSuite) TestEmptyFields() {
	l := rawListing(8, "")
	l.Name = ""
	l.Description = ""
	l.Traits = nil

	got := s.im.Normalize(s.ctx, l)
	s.Equal("NFT #8", got.Name)
	s.Equal(NoDescription, got.Description)
	s.Empty(got.Traits)
	s.Equal("", got.Image)
}

func (s *NormalizerTestSuite) TestSellerName() {
	s.Equal("0x1234...5678", s.im.Normalize(s.ctx, rawListing(9, "")).SellerName)

	im := NewNormalizer(&NormalizerCfg{WebResource: s.web, Ens: s.ens})
	s.ens.On("ReverseResolve", mock.Anything, seller).Return("sunset.eth", nil).Once()
	s.Equal("sunset.eth", im.Normalize(s.ctx, rawListing(9, "")).SellerName)

	s.ens.On("ReverseResolve", mock.Anything, seller).Return("", errors.New("rpc down")).Once()
	s.Equal("0x1234...5678", im.Normalize(s.ctx, rawListing(9, "")).SellerName)
}

func (s *NormalizerTestSuite) TestNormalizeAllKeepsOrder() {
	ls := []listing.RawListing{}
	for i := 0; i < 20; i++ {
		ls = append(ls, rawListing(int64(i), "https://example.com/x.png"))
	}

	got := s.im.NormalizeAll(s.ctx, ls)

	s.Require().Len(got, 20)
	for i, l := range got {
		s.Equal(domain.TokenIdFromBigInt(big.NewInt(int64(i))), l.TokenId)
	}
	s.Empty(s.im.NormalizeAll(s.ctx, nil))
}

func TestFoldTraits(t *testing.T) {
	tests := []struct {
		name   string
		traits []string
		want   map[string]string
	}{
		{"key value", []string{"Color:Red"}, map[string]string{"Color": "Red"}},
		{"spaces", []string{" Color : Red "}, map[string]string{"Color": "Red"}},
		{"bare", []string{"Rare"}, map[string]string{"Rare": ""}},
		{"value with colon", []string{"Time:12:30"}, map[string]string{"Time": "12:30"}},
		{"empty entries", []string{"", ":x", "  "}, map[string]string{}},
		{"nil", nil, map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FoldTraits(tt.traits)
			if len(got) != len(tt.want) {
				t.Fatalf("FoldTraits() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("FoldTraits()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
