package usecase

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/service/cache"
)

const sessionLockStripes = 64

type ExploreUseCaseCfg struct {
	Repo       listing.Repository
	Normalizer listing.Normalizer
	// Sessions stores cursors, its ttl is the idle lifetime of a session
	Sessions cache.Service
	PageSize int
}

type exploreUseCase struct {
	repo       listing.Repository
	normalizer listing.Normalizer
	sessions   cache.Service
	pageSize   int

	locks [sessionLockStripes]sync.Mutex
}

func NewExploreUseCase(cfg *ExploreUseCaseCfg) listing.ExploreUsecase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &exploreUseCase{
		repo:       cfg.Repo,
		normalizer: cfg.Normalizer,
		sessions:   cfg.Sessions,
		pageSize:   cfg.PageSize,
	}
}

func (u *exploreUseCase) lock(sessionId string) func() {
	h := fnv.New32a()
	h.Write([]byte(sessionId))
	m := &u.locks[h.Sum32()%sessionLockStripes]
	m.Lock()
	return m.Unlock
}

func (u *exploreUseCase) Start(c ctx.Ctx) (*listing.View, error) {
	ses := listing.NewSession(uuid.NewString(), u.pageSize)
	c = ctx.WithValue(c, "sessionId", ses.Id)

	items, total, err := u.fetchPage(c, ses)
	if err != nil {
		return nil, err
	}
	step := ses.LoadPage(items, total)
	if err := u.save(c, ses); err != nil {
		return nil, err
	}
	return u.view(c, ses, step)
}

func (u *exploreUseCase) Current(c ctx.Ctx, sessionId string) (*listing.View, error) {
	ses, err := u.load(c, sessionId)
	if err != nil {
		return nil, err
	}
	step := listing.StepStay
	if ses.Empty() {
		step = listing.StepEmpty
	}
	return u.view(c, ses, step)
}

func (u *exploreUseCase) Pass(c ctx.Ctx, sessionId string) (*listing.View, error) {
	return u.mutate(c, sessionId, func(ses *listing.Session) (listing.Step, error) {
		step := ses.Next()
		if step != listing.StepFetch {
			return step, nil
		}
		items, total, err := u.fetchPage(c, ses)
		if err != nil {
			return step, err
		}
		return ses.LoadPage(items, total), nil
	})
}

func (u *exploreUseCase) Previous(c ctx.Ctx, sessionId string) (*listing.View, error) {
	return u.mutate(c, sessionId, func(ses *listing.Session) (listing.Step, error) {
		ses.Previous()
		if ses.Empty() {
			return listing.StepEmpty, nil
		}
		return listing.StepStay, nil
	})
}

func (u *exploreUseCase) Refresh(c ctx.Ctx, sessionId string) (*listing.View, error) {
	return u.mutate(c, sessionId, func(ses *listing.Session) (listing.Step, error) {
		if !ses.FirstCycleComplete {
			items, total, err := u.fetchPage(c, ses)
			if err != nil {
				return listing.StepStay, err
			}
			return ses.Refresh(items, total), nil
		}

		// after the first cycle the working list is every active listing
		var (
			items []listing.RawListing
			total int
		)
		eg, ec := errgroup.WithContext(c)
		gc := ctx.From(ec, c.Logger)
		eg.Go(func() (err error) {
			items, err = u.repo.GetAllActive(gc, ses.PageSize)
			return err
		})
		eg.Go(func() (err error) {
			total, err = u.repo.GetTotal(gc)
			return err
		})
		if err := eg.Wait(); err != nil {
			c.WithField("err", err).Error("refresh failed")
			return listing.StepStay, err
		}
		return ses.Refresh(items, total), nil
	})
}

func (u *exploreUseCase) Close(c ctx.Ctx, sessionId string) error {
	unlock := u.lock(sessionId)
	defer unlock()

	if _, err := u.load(c, sessionId); err != nil {
		return err
	}
	return u.sessions.Del(c, sessionId)
}

// mutate runs f on the stored session under its lock and saves the result
func (u *exploreUseCase) mutate(c ctx.Ctx, sessionId string, f func(*listing.Session) (listing.Step, error)) (*listing.View, error) {
	unlock := u.lock(sessionId)
	defer unlock()

	c = ctx.WithValue(c, "sessionId", sessionId)
	ses, err := u.load(c, sessionId)
	if err != nil {
		return nil, err
	}
	step, err := f(ses)
	if err != nil {
		return nil, err
	}
	if err := u.save(c, ses); err != nil {
		return nil, err
	}
	return u.view(c, ses, step)
}

// fetchPage reads the session's page and the listing total together
func (u *exploreUseCase) fetchPage(c ctx.Ctx, ses *listing.Session) ([]listing.RawListing, int, error) {
	var (
		items []listing.RawListing
		total int
	)
	eg, ec := errgroup.WithContext(c)
	gc := ctx.From(ec, c.Logger)
	eg.Go(func() (err error) {
		items, err = u.repo.GetActive(gc, ses.Offset(), ses.PageSize)
		return err
	})
	eg.Go(func() (err error) {
		total, err = u.repo.GetTotal(gc)
		return err
	})
	if err := eg.Wait(); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"page": ses.Page,
		}).Error("fetch page failed")
		return nil, 0, err
	}
	return items, total, nil
}

func (u *exploreUseCase) load(c ctx.Ctx, sessionId string) (*listing.Session, error) {
	ses := &listing.Session{}
	err := u.sessions.Get(c, sessionId, ses)
	if err == cache.ErrNotFound {
		return nil, domain.ErrSessionNotFound
	} else if err != nil {
		return nil, err
	}
	return ses, nil
}

func (u *exploreUseCase) save(c ctx.Ctx, ses *listing.Session) error {
	if err := u.sessions.Set(c, ses.Id, ses); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"seen": len(ses.Seen),
		}).Error("sessions.Set failed")
		return err
	}
	return nil
}

// resolve looks the token up on the page it most likely sits on, then in the
// whole active set. Both reads hit the repository cache.
func (u *exploreUseCase) resolve(c ctx.Ctx, ses *listing.Session, tokenId domain.TokenId) (*listing.RawListing, error) {
	items, err := u.repo.GetActive(c, ses.HintOffset(), ses.PageSize)
	if err != nil {
		return nil, err
	}
	if l := find(items, tokenId); l != nil {
		return l, nil
	}
	all, err := u.repo.GetAllActive(c, ses.PageSize)
	if err != nil {
		return nil, err
	}
	return find(all, tokenId), nil
}

func find(items []listing.RawListing, tokenId domain.TokenId) *listing.RawListing {
	for i := range items {
		if items[i].Id() == tokenId {
			return &items[i]
		}
	}
	return nil
}

func (u *exploreUseCase) view(c ctx.Ctx, ses *listing.Session, step listing.Step) (*listing.View, error) {
	v := &listing.View{
		SessionId:          ses.Id,
		Index:              ses.Index,
		Page:               ses.Page,
		TotalPages:         ses.TotalPages(),
		Total:              ses.Total,
		Size:               ses.Size(),
		FirstCycleComplete: ses.FirstCycleComplete,
		Looped:             step == listing.StepLoop,
		Empty:              step == listing.StepEmpty,
	}
	tokenId, ok := ses.Current()
	if !ok || v.Empty {
		return v, nil
	}
	v.TokenId = tokenId

	cur, err := u.resolve(c, ses, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
		}).Error("resolve failed")
		return nil, err
	}
	if cur == nil {
		v.Unlisted = true
		return v, nil
	}
	n := u.normalizer.Normalize(c, *cur)
	v.Listing = &n
	return v, nil
}
