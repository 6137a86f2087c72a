package primitive

import (
	"strconv"
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process provider holding up to sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func seconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	// freecache counts whole seconds, round sub-second ttl up
	return int((ttl + time.Second - 1) / time.Second)
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Get failed")
		return nil, 0, err
	}
	if exp == 0 {
		return val, 0, nil
	}
	return val, time.Until(time.Unix(int64(exp), 0)), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, seconds(ttl)); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error) {
	prev, err := im.cache.GetOrSet([]byte(key), value, seconds(ttl))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.GetOrSet failed")
		return false, err
	}
	return prev == nil, nil
}

func (im *impl) Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error) {
	v, ttl, err := im.Get(c, key)
	if err != nil {
		return 0, 0, err
	}

	i, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("strconv.ParseInt failed")
		return 0, 0, err
	}

	nv := i + int64(val)
	return nv, ttl, im.Set(c, key, []byte(strconv.FormatInt(nv, 10)), ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
