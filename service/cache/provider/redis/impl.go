package redis

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/service/cache/provider"
)

// Pool is satisfied by *redis.Pool
type Pool interface {
	GetContext(context.Context) (redis.Conn, error)
}

type impl struct {
	pool Pool
}

func NewRedis(pool Pool) provider.Provider {
	return &impl{pool}
}

func (im *impl) do(c ctx.Ctx, cmd string, args ...interface{}) (interface{}, error) {
	conn, err := im.pool.GetContext(c)
	if err != nil {
		c.WithField("err", err).Error("pool.GetContext failed")
		return nil, err
	}
	defer conn.Close()
	return conn.Do(cmd, args...)
}

// ttl converts a PTTL reply, -1 means no expiry and -2 a missing key
func (im *impl) ttl(c ctx.Ctx, key string) (time.Duration, error) {
	ms, err := redis.Int64(im.do(c, "PTTL", key))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis PTTL failed")
		return 0, err
	}
	switch {
	case ms == -2:
		return 0, provider.ErrNotFound
	case ms < 0:
		return 0, nil
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func setArgs(key string, value []byte, ttl time.Duration) []interface{} {
	args := []interface{}{key, value}
	if ttl > 0 {
		args = append(args, "PX", ttl.Milliseconds())
	}
	return args
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := redis.Bytes(im.do(c, "GET", key))
	if err == redis.ErrNil {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis GET failed")
		return nil, 0, err
	}
	ttl, err := im.ttl(c, key)
	if err != nil {
		return nil, 0, err
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if _, err := im.do(c, "SET", setArgs(key, value, ttl)...); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis SET failed")
		return err
	}
	return nil
}

func (im *impl) SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error) {
	_, err := redis.String(im.do(c, "SET", append(setArgs(key, value, ttl), "NX")...))
	if err == redis.ErrNil {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis SET NX failed")
		return false, err
	}
	return true, nil
}

func (im *impl) Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error) {
	// missing keys are not created, same as the in-process provider
	if exists, err := redis.Bool(im.do(c, "EXISTS", key)); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis EXISTS failed")
		return 0, 0, err
	} else if !exists {
		return 0, 0, provider.ErrNotFound
	}
	res, err := redis.Int64(im.do(c, "INCRBY", key, val))
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis INCRBY failed")
		return 0, 0, err
	}
	ttl, err := im.ttl(c, key)
	if err != nil {
		return 0, 0, err
	}
	return res, ttl, nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.do(c, "DEL", key); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("redis DEL failed")
		return err
	}
	return nil
}
