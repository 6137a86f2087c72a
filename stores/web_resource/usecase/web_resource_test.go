package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/mocks"
)

func Test_getIpfsUrl(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "pinata",
			url:  "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			want: "ipfs://QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "pinata dedicated",
			url:  "https://swipebid.mypinata.cloud/ipfs/QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
			want: "ipfs://QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
		},
		{
			name: "ipfs.io",
			url:  "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			want: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
		},
		{
			name: "noop",
			url:  "https://some.url",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getIpfsUrl(tt.url); got != tt.want {
				t.Errorf("getIpfsUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}

type WebResourceTestSuite struct {
	suite.Suite
	ctx     bCtx.Ctx
	httpR   *mocks.WebResourceReaderRepository
	ipfsR   *mocks.WebResourceReaderRepository
	dataR   *mocks.WebResourceReaderRepository
	usecase domain.WebResourceUseCase
}

func TestWebResourceTestSuite(t *testing.T) {
	suite.Run(t, new(WebResourceTestSuite))
}

func (s *WebResourceTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.httpR = &mocks.WebResourceReaderRepository{}
	s.ipfsR = &mocks.WebResourceReaderRepository{}
	s.dataR = &mocks.WebResourceReaderRepository{}
	s.usecase = NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:    s.httpR,
		IpfsReader:    s.ipfsR,
		DataUriReader: s.dataR,
		Gateway:       "https://gw.example/ipfs/",
	})
}

func (s *WebResourceTestSuite) TearDownTest() {
	s.httpR.AssertExpectations(s.T())
	s.ipfsR.AssertExpectations(s.T())
	s.dataR.AssertExpectations(s.T())
}

func (s *WebResourceTestSuite) TestGatewayUrl() {
	s.Equal("https://gw.example/ipfs/QmCid/1.png", s.usecase.GatewayUrl("ipfs://QmCid/1.png"))
	s.Equal("https://gw.example/ipfs/QmCid", s.usecase.GatewayUrl("ipfs://ipfs/QmCid"))
	s.Equal("https://cdn.example/a.png", s.usecase.GatewayUrl("https://cdn.example/a.png"))
	s.Equal("", s.usecase.GatewayUrl(""))
}

func (s *WebResourceTestSuite) TestDefaultGateway() {
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{})
	s.Equal("https://ipfs.io/ipfs/QmCid", u.GatewayUrl("ipfs://QmCid"))
}

func (s *WebResourceTestSuite) TestGetJsonIpfs() {
	s.ipfsR.On("Get", s.ctx, "QmMeta").Return([]byte(`{"image":"x"}`), nil).Once()
	b, err := s.usecase.GetJson(s.ctx, "ipfs://QmMeta")
	s.NoError(err)
	s.Equal(`{"image":"x"}`, string(b))
}

func (s *WebResourceTestSuite) TestGetJsonInvalid() {
	s.ipfsR.On("Get", s.ctx, "QmMeta").Return([]byte(`<html>`), nil).Once()
	_, err := s.usecase.GetJson(s.ctx, "ipfs://QmMeta")
	s.ErrorIs(err, domain.ErrInvalidJsonFormat)
}

func (s *WebResourceTestSuite) TestHttpsFallsBackToIpfs() {
	s.httpR.On("Get", s.ctx, "https://ipfs.io/ipfs/QmMeta").Return(nil, errors.New("429")).Once()
	s.ipfsR.On("Get", s.ctx, "QmMeta").Return([]byte(`{}`), nil).Once()
	b, err := s.usecase.Get(s.ctx, "https://ipfs.io/ipfs/QmMeta")
	s.NoError(err)
	s.Equal(`{}`, string(b))
}

func (s *WebResourceTestSuite) TestDataUri() {
	s.dataR.On("Get", s.ctx, mock.AnythingOfType("string")).Return([]byte("x"), nil).Once()
	b, err := s.usecase.Get(s.ctx, "data:text/plain,x")
	s.NoError(err)
	s.Equal("x", string(b))
}

func (s *WebResourceTestSuite) TestUnsupportedSchema() {
	_, err := s.usecase.Get(s.ctx, "ar://abc")
	s.ErrorIs(err, domain.ErrUnsupportedSchema)
}
