package repository

import (
	"strings"

	"golang.org/x/time/rate"

	bCtx "github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
)

type ipfsGatewayReaderRepo struct {
	http    domain.WebResourceReaderRepository
	gateway string
	limiter *rate.Limiter
}

// NewIpfsGatewayReaderRepo reads <gateway>/<cid> through http. Public gateways
// throttle hard, so requests wait on limiter when one is given.
func NewIpfsGatewayReaderRepo(http domain.WebResourceReaderRepository, gateway string, limiter *rate.Limiter) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{
		http:    http,
		gateway: strings.TrimRight(gateway, "/"),
		limiter: limiter,
	}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(c); err != nil {
			c.WithField("cid", cid).Warn("gateway rate limit wait aborted")
			return nil, err
		}
	}
	return r.http.Get(c, r.gateway+"/"+cid)
}
