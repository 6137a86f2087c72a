package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/swipebid/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw cache implementation, a zero ttl never expires
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	// SetNX stores value only when key is absent and reports whether it did
	SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error)
	Incr(c ctx.Ctx, key string, val int) (int64, time.Duration, error)
	Del(c ctx.Ctx, key string) error
}
