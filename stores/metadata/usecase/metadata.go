package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	pricefomatter "github.com/x-xyz/swipebid/base/price_fomatter"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/domain/nft"
	"github.com/x-xyz/swipebid/service/cache"
	"github.com/x-xyz/swipebid/service/ens"
)

const (
	NoBids             = "No bids yet"
	NoDescription      = "No description available"
	defaultFetchTimout = 10 * time.Second
	defaultWorkers     = 8
)

type NormalizerCfg struct {
	WebResource domain.WebResourceUseCase
	// MetadataCache keeps fetched documents by URI, optional
	MetadataCache cache.Service
	// Ens names sellers, optional
	Ens          ens.ENS
	FetchTimeout time.Duration
	Workers      int
}

type normalizer struct {
	web          domain.WebResourceUseCase
	cache        cache.Service
	ens          ens.ENS
	fetchTimeout time.Duration
	workers      int
}

func NewNormalizer(cfg *NormalizerCfg) listing.Normalizer {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimout
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	return &normalizer{
		web:          cfg.WebResource,
		cache:        cfg.MetadataCache,
		ens:          cfg.Ens,
		fetchTimeout: cfg.FetchTimeout,
		workers:      cfg.Workers,
	}
}

func (u *normalizer) Normalize(c bCtx.Ctx, l listing.RawListing) listing.NormalizedListing {
	res := u.fallback(c, l)

	if !strings.HasPrefix(l.ImageURI, "ipfs://") {
		return res
	}

	meta, err := u.getMetadata(c, l.ImageURI)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": res.TokenId,
			"uri":     l.ImageURI,
			"err":     err,
		}).Warn("metadata unavailable, using listing fields")
		return res
	}

	res.Image = u.web.GatewayUrl(meta.Image)
	if meta.Name != "" {
		res.Name = meta.Name
	}
	if meta.Description != "" {
		res.Description = meta.Description
	}
	if attrs := meta.AllAttributes(); len(attrs) > 0 {
		res.Traits = foldAttributes(attrs)
	}
	res.MetadataResolved = true
	return res
}

func (u *normalizer) NormalizeAll(c bCtx.Ctx, ls []listing.RawListing) []listing.NormalizedListing {
	res := make([]listing.NormalizedListing, len(ls))
	if len(ls) == 0 {
		return res
	}

	b := goroutines.NewBatch(u.workers, goroutines.WithBatchSize(len(ls)))
	defer b.Close()
	for i := 0; i < len(ls); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			res[idx] = u.Normalize(c, ls[idx])
			return idx, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("normalize task failed")
		}
	}
	return res
}

// fallback renders the listing from its own on-chain fields
func (u *normalizer) fallback(c bCtx.Ctx, l listing.RawListing) listing.NormalizedListing {
	id := l.Id()
	name := l.Name
	if name == "" {
		name = "NFT #" + id.String()
	}
	description := l.Description
	if description == "" {
		description = NoDescription
	}
	return listing.NormalizedListing{
		TokenId:        id,
		Seller:         l.Seller,
		SellerName:     u.sellerName(c, l.Seller),
		Name:           name,
		Description:    description,
		Image:          u.web.GatewayUrl(l.ImageURI),
		Traits:         FoldTraits(l.Traits),
		BasePrice:      pricefomatter.FormatEther(l.BasePrice),
		HighestBid:     pricefomatter.FormatEther(l.HighestBid),
		HighestBidder:  l.HighestBidder,
		HighestBidInfo: HighestBidInfo(l),
		CurrentPrice:   pricefomatter.FormatEther(l.CurrentPrice()),
		Active:         l.Active,
	}
}

func (u *normalizer) sellerName(c bCtx.Ctx, seller domain.Address) string {
	if u.ens == nil || seller.IsEmpty() {
		return seller.Short()
	}
	name, err := u.ens.ReverseResolve(c, seller)
	if err != nil {
		c.WithFields(log.Fields{
			"seller": seller,
			"err":    err,
		}).Warn("ens.ReverseResolve failed")
		return seller.Short()
	}
	if name == "" {
		return seller.Short()
	}
	return name
}

func (u *normalizer) getMetadata(c bCtx.Ctx, uri string) (*nft.Metadata, error) {
	if u.cache == nil {
		return u.fetch(c, uri)
	}
	meta := nft.Metadata{}
	err := u.cache.GetByFunc(c, keys.MD5(uri), &meta, func() (interface{}, error) {
		return u.fetch(c, uri)
	})
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func (u *normalizer) fetch(c bCtx.Ctx, uri string) (*nft.Metadata, error) {
	fc, cancel := bCtx.WithTimeout(c, u.fetchTimeout)
	defer cancel()

	data, err := u.web.GetJson(fc, uri)
	if err != nil {
		return nil, err
	}
	meta := nft.Metadata{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if meta.Image == "" {
		return nil, domain.ErrMetadataIncomplete
	}
	return &meta, nil
}

// FoldTraits turns "key:value" strings into a map. A trait without a colon
// is kept as a key with an empty value.
func FoldTraits(traits []string) map[string]string {
	res := make(map[string]string, len(traits))
	for _, t := range traits {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		parts := strings.SplitN(t, ":", 2)
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		if len(parts) == 1 {
			res[key] = ""
			continue
		}
		res[key] = strings.TrimSpace(parts[1])
	}
	return res
}

const (
	untypedTrait = "Trait"
	unknownValue = "Unknown"
)

// foldAttributes keys attributes by trait type. Untyped ones are labelled
// Trait, Trait 2 and so on, empty values read Unknown.
func foldAttributes(attrs []nft.Attribute) map[string]string {
	res := make(map[string]string, len(attrs))
	untyped := 0
	for _, a := range attrs {
		key := strings.TrimSpace(a.TraitType)
		if key == "" {
			untyped++
			key = untypedTrait
			if untyped > 1 {
				key = fmt.Sprintf("%s %d", untypedTrait, untyped)
			}
		}
		switch v := a.Value.(type) {
		case nil:
			res[key] = unknownValue
		case string:
			if v == "" {
				v = unknownValue
			}
			res[key] = v
		default:
			res[key] = fmt.Sprint(v)
		}
	}
	return res
}

// HighestBidInfo renders "No bids yet" or "<eth> ETH by 0x1234...abcd"
func HighestBidInfo(l listing.RawListing) string {
	if !l.HasBid() {
		return NoBids
	}
	bidder := "Unknown"
	if !l.HighestBidder.IsEmpty() {
		bidder = l.HighestBidder.Short()
	}
	return fmt.Sprintf("%s ETH by %s", pricefomatter.FormatEther(l.HighestBid), bidder)
}
