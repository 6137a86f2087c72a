package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/ethereum"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/service/cache"
)

const defaultTokenTtl = 24 * time.Hour

type AuthUseCaseCfg struct {
	JwtSecret string
	// SigningMsgTemplate has one %s, replaced with the nonce
	SigningMsgTemplate string
	Nonces             cache.Service
	TokenTtl           time.Duration
}

type impl struct {
	jwtSecret []byte
	template  string
	nonces    cache.Service
	tokenTtl  time.Duration
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	if cfg.TokenTtl <= 0 {
		cfg.TokenTtl = defaultTokenTtl
	}
	return &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		template:  cfg.SigningMsgTemplate,
		nonces:    cfg.Nonces,
		tokenTtl:  cfg.TokenTtl,
	}
}

func (im *impl) Nonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	if address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}
	nonce := uuid.NewString()
	if err := im.nonces.Set(ctx, address.ToLowerStr(), nonce); err != nil {
		ctx.WithField("err", err).Error("nonces.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	nonce := ""
	if err := im.nonces.Get(ctx, address.ToLowerStr(), &nonce); err == cache.ErrNotFound {
		return "", domain.ErrInvalidSignature
	} else if err != nil {
		ctx.WithField("err", err).Error("nonces.Get failed")
		return "", err
	}

	msg := fmt.Sprintf(im.template, nonce)
	ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrInvalidSignature
	}

	// nonces are one-time
	if err := im.nonces.Del(ctx, address.ToLowerStr()); err != nil {
		ctx.WithField("err", err).Warn("nonces.Del failed")
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}

	return "", domain.ErrInvalidSignature
}
