package usecase

import (
	"time"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/goroutine"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/service/cache"
)

const (
	DefaultPageSize  = 12
	defaultTxTimeout = 30 * time.Second
)

type ListingUseCaseCfg struct {
	Repo       listing.Repository
	Contract   listing.Contract
	Normalizer listing.Normalizer
	Wallet     domain.Wallet
	// Pending marks owner transactions in flight, its ttl should match TxTimeout
	Pending   cache.Service
	PageSize  int
	TxTimeout time.Duration
}

type listingUseCase struct {
	repo       listing.Repository
	contract   listing.Contract
	normalizer listing.Normalizer
	wallet     domain.Wallet
	pending    cache.Service
	pageSize   int
	txTimeout  time.Duration
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.Usecase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.TxTimeout <= 0 {
		cfg.TxTimeout = defaultTxTimeout
	}
	return &listingUseCase{
		repo:       cfg.Repo,
		contract:   cfg.Contract,
		normalizer: cfg.Normalizer,
		wallet:     cfg.Wallet,
		pending:    cfg.Pending,
		pageSize:   cfg.PageSize,
		txTimeout:  cfg.TxTimeout,
	}
}

func (u *listingUseCase) Get(c ctx.Ctx, tokenId domain.TokenId) (*listing.NormalizedListing, error) {
	if _, err := tokenId.ToBigInt(); err != nil {
		return nil, err
	}
	l, err := u.find(c, tokenId)
	if err != nil {
		return nil, err
	}
	res := u.normalizer.Normalize(c, *l)
	return &res, nil
}

func (u *listingUseCase) find(c ctx.Ctx, tokenId domain.TokenId) (*listing.RawListing, error) {
	all, err := u.repo.GetAllActive(c, u.pageSize)
	if err != nil {
		c.WithField("err", err).Error("repo.GetAllActive failed")
		return nil, err
	}
	for i := range all {
		if all[i].Id() == tokenId {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (u *listingUseCase) OwnerListings(c ctx.Ctx, owner domain.Address) ([]listing.OwnerListing, error) {
	if owner.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	all, err := u.repo.GetAllActive(c, u.pageSize)
	if err != nil {
		c.WithField("err", err).Error("repo.GetAllActive failed")
		return nil, err
	}

	owned := FilterBySeller(all, owner)
	normalized := u.normalizer.NormalizeAll(c, owned)

	res := make([]listing.OwnerListing, len(normalized))
	for i, l := range normalized {
		res[i] = listing.OwnerListing{
			NormalizedListing: l,
			Pending:           u.isPending(c, l.TokenId),
		}
	}
	return res, nil
}

// FilterBySeller keeps the listings of seller in input order
func FilterBySeller(ls []listing.RawListing, seller domain.Address) []listing.RawListing {
	res := []listing.RawListing{}
	for _, l := range ls {
		if l.Seller.Equals(seller) {
			res = append(res, l)
		}
	}
	return res
}

func (u *listingUseCase) WonListings(c ctx.Ctx, bidder domain.Address) ([]listing.NormalizedListing, error) {
	if bidder.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	won, err := u.repo.GetWon(c, bidder)
	if err != nil {
		c.WithField("err", err).Error("repo.GetWon failed")
		return nil, err
	}
	return u.normalizer.NormalizeAll(c, won), nil
}

func pendingKey(tokenId domain.TokenId) string {
	return keys.RedisKey("endBidding", tokenId.String())
}

func (u *listingUseCase) isPending(c ctx.Ctx, tokenId domain.TokenId) bool {
	hash := domain.TxHash("")
	err := u.pending.Get(c, pendingKey(tokenId), &hash)
	if err != nil && err != cache.ErrNotFound {
		c.WithField("err", err).Warn("pending.Get failed")
	}
	return err == nil
}

func (u *listingUseCase) EndBidding(c ctx.Ctx, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	if _, err := u.wallet.Address(); err != nil {
		return "", err
	}

	key := pendingKey(tokenId)
	ok, err := u.pending.SetNX(c, key, domain.TxHash(""))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrConflict
	}

	hash, err := u.contract.EndBidding(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("contract.EndBidding failed")
		if err := u.pending.Del(c, key); err != nil {
			c.WithField("err", err).Warn("pending.Del failed")
		}
		return "", err
	}
	if err := u.pending.Set(c, key, hash); err != nil {
		c.WithField("err", err).Warn("pending.Set failed")
	}

	u.watch(c, tokenId, hash)
	return hash, nil
}

// watch clears the pending mark once the receipt resolves. The request
// context is detached so the wait outlives the handler.
func (u *listingUseCase) watch(c ctx.Ctx, tokenId domain.TokenId, hash domain.TxHash) {
	wc := ctx.WithValues(ctx.Detach(c), map[string]interface{}{
		"tokenId": tokenId,
		"txHash":  hash,
	})
	goroutine.RecoverableGo(func() {
		tc, cancel := ctx.WithTimeout(wc, u.txTimeout)
		defer cancel()

		if err := u.contract.WaitMined(tc, hash); err != nil {
			wc.WithField("err", err).Warn("endBidding not confirmed")
		} else {
			wc.Info("endBidding confirmed")
		}
		if err := u.pending.Del(wc, pendingKey(tokenId)); err != nil {
			wc.WithField("err", err).Warn("pending.Del failed")
		}
		u.repo.Invalidate(wc)
	}, goroutine.WithName("endBidding"), goroutine.WithLogger(wc.Logger))
}
