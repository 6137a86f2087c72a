package compound

import (
	"strconv"
	"time"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// NewCompound stacks providers, fastest first. Reads stop at the first hit
// and fill the layers in front of it. The last layer is the source of truth
// for SetNX and Incr.
func NewCompound(layers []provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) last() provider.Provider {
	return im.layers[len(im.layers)-1]
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		} else if err != nil {
			return nil, 0, err
		}
		if err := im.fill(c, idx, key, val, ttl); err != nil {
			return nil, 0, err
		}
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

// fill writes to every layer in front of hitIdx
func (im *impl) fill(c ctx.Ctx, hitIdx int, key string, val []byte, ttl time.Duration) error {
	for idx := 0; idx < hitIdx; idx++ {
		if err := im.layers[idx].Set(c, key, val, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error) {
	ok, err := im.last().SetNX(c, key, value, ttl)
	if err != nil || !ok {
		return ok, err
	}
	return true, im.fill(c, len(im.layers)-1, key, value, ttl)
}

func (im *impl) Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error) {
	res, ttl, err := im.last().Incr(c, key, val)
	if err != nil {
		return 0, 0, err
	}
	if err := im.fill(c, len(im.layers)-1, key, []byte(strconv.FormatInt(res, 10)), ttl); err != nil {
		return 0, 0, err
	}
	return res, ttl, nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
