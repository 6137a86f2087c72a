package usecase

import (
	"hash/fnv"
	"math/big"
	"sync"
	"time"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/bid"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/service/cache"
)

const (
	defaultPageSize  = 12
	defaultTxTimeout = 30 * time.Second
	modalLockStripes = 64
)

type BidUseCaseCfg struct {
	Repo     listing.Repository
	Contract listing.Contract
	Wallet   domain.Wallet
	Modals   cache.Service
	// Explore advances the caller's session after a confirmed bid, optional
	Explore   listing.ExploreUsecase
	PageSize  int
	TxTimeout time.Duration
}

type bidUseCase struct {
	repo      listing.Repository
	contract  listing.Contract
	wallet    domain.Wallet
	modals    cache.Service
	explore   listing.ExploreUsecase
	pageSize  int
	txTimeout time.Duration

	locks [modalLockStripes]sync.Mutex
}

func NewBidUseCase(cfg *BidUseCaseCfg) bid.Usecase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.TxTimeout <= 0 {
		cfg.TxTimeout = defaultTxTimeout
	}
	return &bidUseCase{
		repo:      cfg.Repo,
		contract:  cfg.Contract,
		wallet:    cfg.Wallet,
		modals:    cfg.Modals,
		explore:   cfg.Explore,
		pageSize:  cfg.PageSize,
		txTimeout: cfg.TxTimeout,
	}
}

func modalKey(bidder domain.Address, tokenId domain.TokenId) string {
	return keys.RedisKey(bidder.ToLowerStr(), tokenId.String())
}

func (u *bidUseCase) lock(key string) func() {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &u.locks[h.Sum32()%modalLockStripes]
	m.Lock()
	return m.Unlock
}

func (u *bidUseCase) Place(c ctx.Ctx, p bid.PlaceParams) (*bid.Modal, error) {
	id, err := p.TokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	bidder, err := u.wallet.Address()
	if err != nil {
		return nil, err
	}
	c = ctx.WithValues(c, map[string]interface{}{
		"tokenId": p.TokenId,
		"bidder":  bidder,
	})
	key := modalKey(bidder, p.TokenId)

	modal, value, err := u.submit(c, key, bidder, p)
	if err != nil || value == nil {
		return modal, err
	}

	hash, err := u.contract.PlaceBid(c, id, value)
	if err != nil {
		c.WithField("err", err).Warn("contract.PlaceBid failed")
		return u.update(c, key, func(m *bid.Modal) error { return m.Fail(err) })
	}
	if _, err := u.update(c, key, func(m *bid.Modal) error { return m.Sent(hash) }); err != nil {
		return nil, err
	}

	tc, cancel := ctx.WithTimeout(c, u.txTimeout)
	defer cancel()
	if err := u.contract.WaitMined(tc, hash); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": hash,
		}).Warn("placeBid not confirmed")
		return u.update(c, key, func(m *bid.Modal) error { return m.Fail(err) })
	}

	modal, err = u.update(c, key, func(m *bid.Modal) error { return m.Confirm() })
	if err != nil {
		return nil, err
	}
	u.afterConfirm(c, p.SessionId, p.TokenId)
	return modal, nil
}

// submit validates the amount against the latest listing and moves the
// modal to submitting. A nil value means the modal was rejected.
func (u *bidUseCase) submit(c ctx.Ctx, key string, bidder domain.Address, p bid.PlaceParams) (*bid.Modal, *big.Int, error) {
	unlock := u.lock(key)
	defer unlock()

	modal, err := u.load(c, key)
	if err == domain.ErrNotFound {
		modal = bid.NewModal(p.TokenId, bidder)
	} else if err != nil {
		return nil, nil, err
	}

	switch modal.State {
	case bid.StateSubmitting:
		return nil, nil, domain.ErrConflict
	case bid.StateConfirmed:
		modal = bid.NewModal(p.TokenId, bidder)
	case bid.StateFailed:
		if err := modal.Acknowledge(); err != nil {
			return nil, nil, err
		}
	}

	l, err := u.find(c, p.TokenId)
	if err != nil {
		return nil, nil, err
	}

	value, ferr := bid.Validate(p.Amount, l.BasePrice, l.HighestBid)
	if ferr != nil {
		if err := modal.Reject(p.Amount, ferr); err != nil {
			return nil, nil, err
		}
		if err := u.save(c, key, modal); err != nil {
			return nil, nil, err
		}
		return modal, nil, ferr
	}

	if err := modal.Submit(p.Amount); err != nil {
		return nil, nil, err
	}
	if err := u.save(c, key, modal); err != nil {
		return nil, nil, err
	}
	return modal, value, nil
}

func (u *bidUseCase) find(c ctx.Ctx, tokenId domain.TokenId) (*listing.RawListing, error) {
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

// update applies one transition to the stored modal. Tx outcomes live on the
// modal, not in the returned error.
func (u *bidUseCase) update(c ctx.Ctx, key string, f func(*bid.Modal) error) (*bid.Modal, error) {
	unlock := u.lock(key)
	defer unlock()

	modal, err := u.load(c, key)
	if err != nil {
		return nil, err
	}
	if err := f(modal); err != nil {
		return nil, err
	}
	if err := u.save(c, key, modal); err != nil {
		return nil, err
	}
	return modal, nil
}

// afterConfirm moves the session past the card that was bid on. A bid on any
// other token only refreshes the session.
func (u *bidUseCase) afterConfirm(c ctx.Ctx, sessionId string, tokenId domain.TokenId) {
	u.repo.Invalidate(c)
	if sessionId == "" || u.explore == nil {
		return
	}
	cur, err := u.explore.Current(c, sessionId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": sessionId,
		}).Warn("explore.Current failed")
		return
	}
	if cur.TokenId == tokenId {
		if _, err := u.explore.Pass(c, sessionId); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"sessionId": sessionId,
			}).Warn("explore.Pass failed")
			return
		}
	}
	if _, err := u.explore.Refresh(c, sessionId); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": sessionId,
		}).Warn("explore.Refresh failed")
	}
}

func (u *bidUseCase) Get(c ctx.Ctx, tokenId domain.TokenId) (*bid.Modal, error) {
	if _, err := tokenId.ToBigInt(); err != nil {
		return nil, err
	}
	bidder, err := u.wallet.Address()
	if err != nil {
		return nil, err
	}
	modal, err := u.load(c, modalKey(bidder, tokenId))
	if err == domain.ErrNotFound {
		return bid.NewModal(tokenId, bidder), nil
	}
	return modal, err
}

func (u *bidUseCase) Acknowledge(c ctx.Ctx, tokenId domain.TokenId) (*bid.Modal, error) {
	if _, err := tokenId.ToBigInt(); err != nil {
		return nil, err
	}
	bidder, err := u.wallet.Address()
	if err != nil {
		return nil, err
	}
	return u.update(c, modalKey(bidder, tokenId), func(m *bid.Modal) error {
		return m.Acknowledge()
	})
}

func (u *bidUseCase) load(c ctx.Ctx, key string) (*bid.Modal, error) {
	modal := &bid.Modal{}
	err := u.modals.Get(c, key, modal)
	if err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return modal, nil
}

func (u *bidUseCase) save(c ctx.Ctx, key string, modal *bid.Modal) error {
	return u.modals.Set(c, key, modal)
}
