package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/swipebid/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// Nonce issues the one-time value the wallet signs
	Nonce(ctx ctx.Ctx, address Address) (string, error)
	// SignToken checks the signature over the signing message and issues a token
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address Address, err error)
}
