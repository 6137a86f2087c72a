package repository

import (
	"strconv"
	"time"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/service/cache"
	"github.com/x-xyz/swipebid/service/cache/provider"
)

const defaultTtl = 30 * time.Second

type ListingRepoCfg struct {
	Contract listing.Contract
	Cache    provider.Provider
	// Ttl bounds how stale a read can be when nobody invalidates
	Ttl time.Duration
}

type impl struct {
	contract listing.Contract
	provider provider.Provider
	cache    cache.Service
	genKey   string
}

// New caches contract reads under a generation number. Invalidate bumps the
// generation so every older entry is skipped and left to expire.
func New(cfg *ListingRepoCfg) listing.Repository {
	if cfg.Ttl <= 0 {
		cfg.Ttl = defaultTtl
	}
	return &impl{
		contract: cfg.Contract,
		provider: cfg.Cache,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.Ttl,
			Pfx:   keys.PfxListing,
			Cache: cfg.Cache,
		}),
		genKey: keys.RedisKey(keys.PfxListing, "generation"),
	}
}

func (im *impl) generation(c ctx.Ctx) (string, error) {
	if _, err := im.provider.SetNX(c, im.genKey, []byte("0"), 0); err != nil {
		return "", err
	}
	gen, _, err := im.provider.Incr(c, im.genKey, 0)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(gen, 10), nil
}

// key is the cache key of one read; with a broken cache the read goes to
// the chain uncached.
func (im *impl) key(c ctx.Ctx, parts ...string) (string, bool) {
	gen, err := im.generation(c)
	if err != nil {
		c.WithField("err", err).Warn("generation unavailable, skip cache")
		return "", false
	}
	return keys.RedisKey(append([]string{gen}, parts...)...), true
}

func (im *impl) GetTotal(c ctx.Ctx) (int, error) {
	getter := func() (interface{}, error) {
		total, err := im.contract.GetTotalListings(c)
		if err != nil {
			c.WithField("err", err).Error("contract.GetTotalListings failed")
			return nil, err
		}
		return &total, nil
	}

	key, ok := im.key(c, "total")
	if !ok {
		v, err := getter()
		if err != nil {
			return 0, err
		}
		return *v.(*int), nil
	}

	total := 0
	if err := im.cache.GetByFunc(c, key, &total, getter); err != nil {
		return 0, err
	}
	return total, nil
}

func (im *impl) GetActive(c ctx.Ctx, offset, limit int) ([]listing.RawListing, error) {
	if offset < 0 || limit <= 0 {
		return nil, domain.ErrBadParamInput
	}
	getter := func() (interface{}, error) {
		ls, err := im.contract.GetActiveListings(c, offset, limit)
		if err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"offset": offset,
				"limit":  limit,
			}).Error("contract.GetActiveListings failed")
			return nil, err
		}
		return &ls, nil
	}
	return im.getList(c, getter, "active", strconv.Itoa(offset), strconv.Itoa(limit))
}

func (im *impl) GetAllActive(c ctx.Ctx, pageSize int) ([]listing.RawListing, error) {
	if pageSize <= 0 {
		return nil, domain.ErrBadParamInput
	}
	total, err := im.GetTotal(c)
	if err != nil {
		return nil, err
	}

	res := []listing.RawListing{}
	for offset := 0; offset < total; offset += pageSize {
		page, err := im.GetActive(c, offset, pageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			// total counts every listing ever made, the active set is shorter
			break
		}
		res = append(res, page...)
	}
	return res, nil
}

func (im *impl) GetWon(c ctx.Ctx, bidder domain.Address) ([]listing.RawListing, error) {
	getter := func() (interface{}, error) {
		ls, err := im.contract.GetWonNFTsDetails(c, bidder)
		if err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"bidder": bidder,
			}).Error("contract.GetWonNFTsDetails failed")
			return nil, err
		}
		return &ls, nil
	}
	return im.getList(c, getter, "won", bidder.ToLowerStr())
}

func (im *impl) getList(c ctx.Ctx, getter cache.OneTimeGetter, parts ...string) ([]listing.RawListing, error) {
	key, ok := im.key(c, parts...)
	if !ok {
		v, err := getter()
		if err != nil {
			return nil, err
		}
		return *v.(*[]listing.RawListing), nil
	}

	res := []listing.RawListing{}
	if err := im.cache.GetByFunc(c, key, &res, getter); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) Invalidate(c ctx.Ctx) {
	if _, err := im.generation(c); err != nil {
		c.WithField("err", err).Error("generation failed")
		return
	}
	gen, _, err := im.provider.Incr(c, im.genKey, 1)
	if err != nil {
		c.WithField("err", err).Error("provider.Incr failed")
		return
	}
	c.WithField("generation", gen).Info("listing cache invalidated")
}
