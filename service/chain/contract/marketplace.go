package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/swipebid/base/abi"
	bCtx "github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/service/chain"
)

// listingTuple mirrors the Listing struct of the contract, field names match
// the ABI components after camel casing
type listingTuple struct {
	TokenId       *big.Int
	Seller        common.Address
	Name          string
	Description   string
	ImageURI      string
	Traits        []string
	BasePrice     *big.Int
	Active        bool
	HighestBidder common.Address
	HighestBid    *big.Int
}

type Marketplace struct {
	chainService chain.Client
	wallet       domain.Wallet
	address      common.Address
	abi          ethabi.ABI
}

func NewMarketplace(chainService chain.Client, wallet domain.Wallet, address domain.Address) listing.Contract {
	return &Marketplace{
		chainService: chainService,
		wallet:       wallet,
		address:      common.HexToAddress(address.ToLowerStr()),
		abi:          baseabi.MarketplaceABI,
	}
}

func (m *Marketplace) GetTotalListings(c bCtx.Ctx) (int, error) {
	unpacked, err := m.chainService.Call(c, m.address, m.abi, "getTotalListings")
	if err != nil {
		return 0, err
	}
	total, ok := unpacked[0].(*big.Int)
	if !ok || !total.IsInt64() {
		return 0, xerrors.Errorf("%w: bad total %v", domain.ErrInvalidListing, unpacked[0])
	}
	return int(total.Int64()), nil
}

func (m *Marketplace) GetActiveListings(c bCtx.Ctx, offset, limit int) ([]listing.RawListing, error) {
	if offset < 0 || limit <= 0 {
		return nil, domain.ErrBadParamInput
	}
	unpacked, err := m.chainService.Call(c, m.address, m.abi, "getActiveListings", big.NewInt(int64(offset)), big.NewInt(int64(limit)))
	if err != nil {
		return nil, err
	}
	return decodeListings(c, unpacked)
}

func (m *Marketplace) GetWonNFTsDetails(c bCtx.Ctx, bidder domain.Address) ([]listing.RawListing, error) {
	if !common.IsHexAddress(bidder.ToLowerStr()) {
		return nil, domain.ErrInvalidAddress
	}
	unpacked, err := m.chainService.Call(c, m.address, m.abi, "getWonNFTsDetails", common.HexToAddress(bidder.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return decodeListings(c, unpacked)
}

func (m *Marketplace) CreateNFT(c bCtx.Ctx, name, description, metadataURI string, traits []string, basePrice *big.Int) (domain.TxHash, error) {
	if traits == nil {
		traits = []string{}
	}
	return m.transact(c, nil, "createNFT", name, description, metadataURI, traits, basePrice)
}

func (m *Marketplace) PlaceBid(c bCtx.Ctx, tokenId, value *big.Int) (domain.TxHash, error) {
	return m.transact(c, value, "placeBid", tokenId)
}

func (m *Marketplace) EndBidding(c bCtx.Ctx, tokenId *big.Int) (domain.TxHash, error) {
	return m.transact(c, nil, "endBidding", tokenId)
}

func (m *Marketplace) WaitMined(c bCtx.Ctx, hash domain.TxHash) error {
	_, err := m.chainService.WaitReceipt(c, common.HexToHash(string(hash)))
	return err
}

func (m *Marketplace) transact(c bCtx.Ctx, value *big.Int, method string, params ...interface{}) (domain.TxHash, error) {
	opts, err := m.wallet.TransactOpts(c, value)
	if err != nil {
		return "", err
	}
	tx, err := m.chainService.Transact(c, opts, m.address, m.abi, method, params...)
	if err != nil {
		return "", err
	}
	return domain.TxHash(tx.Hash().Hex()), nil
}

func decodeListings(c bCtx.Ctx, unpacked []interface{}) ([]listing.RawListing, error) {
	if len(unpacked) == 0 {
		return nil, domain.ErrInvalidListing
	}
	tuples, err := convertTuples(unpacked[0])
	if err != nil {
		c.WithField("err", err).Error("convertTuples failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrInvalidListing, err)
	}
	res := make([]listing.RawListing, 0, len(tuples))
	for i, t := range tuples {
		l, err := toRawListing(t)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "index": i}).Error("toRawListing failed")
			return nil, err
		}
		res = append(res, l)
	}
	return res, nil
}

func convertTuples(v interface{}) (res []listingTuple, err error) {
	// ConvertType panics on shape mismatch
	defer func() {
		if r := recover(); r != nil {
			err = xerrors.Errorf("unexpected listing shape: %v", r)
		}
	}()
	return *ethabi.ConvertType(v, new([]listingTuple)).(*[]listingTuple), nil
}

func toRawListing(t listingTuple) (listing.RawListing, error) {
	switch {
	case t.TokenId == nil:
		return listing.RawListing{}, xerrors.Errorf("%w: missing token id", domain.ErrInvalidListing)
	case t.Seller == (common.Address{}):
		return listing.RawListing{}, xerrors.Errorf("%w: missing seller of token %s", domain.ErrInvalidListing, t.TokenId)
	case t.BasePrice == nil:
		return listing.RawListing{}, xerrors.Errorf("%w: missing base price of token %s", domain.ErrInvalidListing, t.TokenId)
	}
	l := listing.RawListing{
		TokenId:     t.TokenId,
		Seller:      domain.Address(t.Seller.Hex()),
		Name:        t.Name,
		Description: t.Description,
		ImageURI:    t.ImageURI,
		Traits:      t.Traits,
		BasePrice:   t.BasePrice,
		Active:      t.Active,
		HighestBid:  t.HighestBid,
	}
	if l.HighestBid == nil {
		l.HighestBid = new(big.Int)
	}
	if t.HighestBidder != (common.Address{}) {
		l.HighestBidder = domain.Address(t.HighestBidder.Hex())
	}
	return l, nil
}
