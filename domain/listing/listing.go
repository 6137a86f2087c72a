package listing

import (
	"math/big"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
)

// RawListing is one Listing tuple as returned by the marketplace contract
type RawListing struct {
	TokenId       *big.Int       `json:"tokenId"`
	Seller        domain.Address `json:"seller"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	ImageURI      string         `json:"imageURI"`
	Traits        []string       `json:"traits"`
	BasePrice     *big.Int       `json:"basePrice"`
	Active        bool           `json:"active"`
	HighestBidder domain.Address `json:"highestBidder"`
	HighestBid    *big.Int       `json:"highestBid"`
}

func (l RawListing) Id() domain.TokenId {
	return domain.TokenIdFromBigInt(l.TokenId)
}

// HasBid is true once the contract recorded a non-zero highest bid
func (l RawListing) HasBid() bool {
	return l.HighestBid != nil && l.HighestBid.Sign() > 0
}

// CurrentPrice is the highest bid when there is one, else the base price
func (l RawListing) CurrentPrice() *big.Int {
	if l.HasBid() {
		return l.HighestBid
	}
	if l.BasePrice == nil {
		return new(big.Int)
	}
	return l.BasePrice
}

// NormalizedListing is a RawListing merged with its off-chain metadata,
// prices rendered in ETH.
type NormalizedListing struct {
	TokenId          domain.TokenId    `json:"tokenId"`
	Seller           domain.Address    `json:"seller"`
	SellerName       string            `json:"sellerName"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Image            string            `json:"image"`
	Traits           map[string]string `json:"traits"`
	BasePrice        string            `json:"basePrice"`
	HighestBid       string            `json:"highestBid"`
	HighestBidder    domain.Address    `json:"highestBidder"`
	HighestBidInfo   string            `json:"highestBidInfo"`
	CurrentPrice     string            `json:"currentPrice"`
	Active           bool              `json:"active"`
	MetadataResolved bool              `json:"metadataResolved"`
}

// OwnerListing is a seller's row on the management page
type OwnerListing struct {
	NormalizedListing
	Pending bool `json:"pending"`
}

// Contract is the typed surface of the marketplace contract. Writes are
// signed by the connected wallet and return once the tx is broadcast.
type Contract interface {
	GetTotalListings(c ctx.Ctx) (int, error)
	GetActiveListings(c ctx.Ctx, offset, limit int) ([]RawListing, error)
	GetWonNFTsDetails(c ctx.Ctx, bidder domain.Address) ([]RawListing, error)

	CreateNFT(c ctx.Ctx, name, description, metadataURI string, traits []string, basePrice *big.Int) (domain.TxHash, error)
	PlaceBid(c ctx.Ctx, tokenId, value *big.Int) (domain.TxHash, error)
	EndBidding(c ctx.Ctx, tokenId *big.Int) (domain.TxHash, error)
	// WaitMined resolves to nil, ErrTxReverted or ErrTxTimeout
	WaitMined(c ctx.Ctx, hash domain.TxHash) error
}

// Repository is the cached read side of the marketplace contract
type Repository interface {
	GetTotal(c ctx.Ctx) (int, error)
	GetActive(c ctx.Ctx, offset, limit int) ([]RawListing, error)
	// GetAllActive pages through every active listing in contract order
	GetAllActive(c ctx.Ctx, pageSize int) ([]RawListing, error)
	GetWon(c ctx.Ctx, bidder domain.Address) ([]RawListing, error)
	// Invalidate drops every cached read so the next call hits the chain
	Invalidate(c ctx.Ctx)
}

type Normalizer interface {
	// Normalize never fails; metadata problems degrade to the raw fields
	Normalize(c ctx.Ctx, l RawListing) NormalizedListing
	NormalizeAll(c ctx.Ctx, ls []RawListing) []NormalizedListing
}

type Usecase interface {
	// Get returns one active listing by token id
	Get(c ctx.Ctx, tokenId domain.TokenId) (*NormalizedListing, error)
	OwnerListings(c ctx.Ctx, owner domain.Address) ([]OwnerListing, error)
	WonListings(c ctx.Ctx, bidder domain.Address) ([]NormalizedListing, error)
	EndBidding(c ctx.Ctx, tokenId domain.TokenId) (domain.TxHash, error)
}

// View is what a client renders for an explore session
type View struct {
	SessionId          string             `json:"sessionId"`
	TokenId            domain.TokenId     `json:"tokenId"`
	Listing            *NormalizedListing `json:"listing"`
	Index              int                `json:"index"`
	Page               int                `json:"page"`
	TotalPages         int                `json:"totalPages"`
	Total              int                `json:"total"`
	Size               int                `json:"size"`
	FirstCycleComplete bool               `json:"firstCycleComplete"`
	// Looped is raised on the response that wrapped the cursor around
	Looped bool `json:"looped"`
	Empty  bool `json:"empty"`
	// Unlisted means the current token left the active set since the cursor
	// reached it; Listing is nil until a Refresh or Pass
	Unlisted bool `json:"unlisted"`
}

type ExploreUsecase interface {
	Start(c ctx.Ctx) (*View, error)
	Current(c ctx.Ctx, sessionId string) (*View, error)
	Pass(c ctx.Ctx, sessionId string) (*View, error)
	Previous(c ctx.Ctx, sessionId string) (*View, error)
	Refresh(c ctx.Ctx, sessionId string) (*View, error)
	Close(c ctx.Ctx, sessionId string) error
}
