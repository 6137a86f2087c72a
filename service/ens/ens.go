package ens

import (
	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
)

type ENS interface {
	Resolve(c ctx.Ctx, name string) (domain.Address, error)
	// ReverseResolve returns "" when the address has no primary name
	ReverseResolve(c ctx.Ctx, address domain.Address) (string, error)
}
