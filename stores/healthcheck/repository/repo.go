package repository

import (
	"time"

	"github.com/x-xyz/swipebid/base/ctx"
	hcdomain "github.com/x-xyz/swipebid/domain/healthcheck"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/service/cache/provider"
	"github.com/x-xyz/swipebid/service/chain"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chain chain.Client
	cache provider.Provider
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(
	chain chain.Client,
	cache provider.Provider,
) hcdomain.HealthCheckRepo {
	return &impl{
		chain: chain,
		cache: cache,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := im.chain.BlockNumber(ctx); err != nil {
		context.WithField("err", err).Error("chain.BlockNumber failed")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.cache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	return nil
}
