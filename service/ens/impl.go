package ens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/service/cache"
)

type impl struct {
	backend bind.ContractBackend
	cache   cache.Service

	resolve        func(bind.ContractBackend, string) (common.Address, error)
	reverseResolve func(bind.ContractBackend, common.Address) (string, error)
}

// New resolves names against a mainnet backend; both directions are cached
// in svc, misses included.
func New(backend bind.ContractBackend, svc cache.Service) ENS {
	return &impl{
		backend:        backend,
		cache:          svc,
		resolve:        goens.Resolve,
		reverseResolve: goens.ReverseResolve,
	}
}

func (im *impl) Resolve(c ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.RedisKey("resolve", name)
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(im.backend, name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.Hex())
		return &val, nil
	})

	if err != nil {
		return "", err
	}

	return res, nil
}

func (im *impl) ReverseResolve(c ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(im.backend, common.HexToAddress(string(address)))
		if err != nil && isNoName(err) {
			none := ""
			return &none, nil
		}
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		return "", err
	}

	return res, nil
}

func isNoName(err error) bool {
	switch err.Error() {
	case "not a resolver", "no resolution", "unregistered name":
		return true
	}
	return false
}
