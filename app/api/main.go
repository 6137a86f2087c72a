package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/swipebid/app/api/docs"
	"github.com/x-xyz/swipebid/app/bootstrap"
	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/log"
	bValidator "github.com/x-xyz/swipebid/base/validator"
	mmiddleware "github.com/x-xyz/swipebid/middleware"
	auth_delivery "github.com/x-xyz/swipebid/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/swipebid/stores/auth/delivery/http/middleware"
	bid_delivery "github.com/x-xyz/swipebid/stores/bid/delivery/http"
	ens_delivery "github.com/x-xyz/swipebid/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/swipebid/stores/healthcheck/delivery/http"
	listing_delivery "github.com/x-xyz/swipebid/stores/listing/delivery/http"
	nft_delivery "github.com/x-xyz/swipebid/stores/nft/delivery/http"
	wallet_delivery "github.com/x-xyz/swipebid/stores/wallet/delivery/http"
)

var configPath = pflag.String("config", "infra/configs/config.yaml", "path to the yaml config")

//	@title			SwipeBid API
//	@version		1.0
//	@description	Gateway for the SwipeBid marketplace contract.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	pflag.Parse()
	if err := bootstrap.LoadConfig(*configPath); err != nil {
		panic(err)
	}

	context := ctx.Background()
	app, err := bootstrap.New(context)
	if err != nil {
		context.WithField("err", err).Panic("bootstrap.New failed")
	}
	defer app.Close()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(viper.GetString("server.allowOrigin"))
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	authMiddleware := auth_middleware.New(app.Auth)

	hc_delivery.New(e, app.HealthCheck)
	auth_delivery.New(e, app.Auth, viper.GetString("auth.signingMsg"))
	listing_delivery.New(e, app.Listing, app.Explore, app.Wallet, authMiddleware.OptionalAuth())
	bid_delivery.New(e, app.Bid)
	nft_delivery.New(e, app.Nft)
	wallet_delivery.New(e, app.Wallet)
	if app.Ens != nil {
		ens_delivery.New(e, app.Ens, mmiddleware.CacheHttp(app.HttpCache))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
