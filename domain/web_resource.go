package domain

import (
	"github.com/x-xyz/swipebid/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// GatewayUrl turns ipfs://<cid> into an HTTP URL on the configured gateway.
	// Other URLs are returned unchanged.
	GatewayUrl(string) string
}
