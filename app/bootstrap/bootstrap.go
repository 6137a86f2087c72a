package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/base/database/redisclient"
	"github.com/x-xyz/swipebid/base/ethereum"
	"github.com/x-xyz/swipebid/base/log"
	"github.com/x-xyz/swipebid/domain"
	"github.com/x-xyz/swipebid/domain/bid"
	hcdomain "github.com/x-xyz/swipebid/domain/healthcheck"
	"github.com/x-xyz/swipebid/domain/keys"
	"github.com/x-xyz/swipebid/domain/listing"
	"github.com/x-xyz/swipebid/domain/nft"
	"github.com/x-xyz/swipebid/service/cache"
	"github.com/x-xyz/swipebid/service/cache/provider"
	"github.com/x-xyz/swipebid/service/cache/provider/compound"
	"github.com/x-xyz/swipebid/service/cache/provider/primitive"
	"github.com/x-xyz/swipebid/service/cache/provider/redis"
	"github.com/x-xyz/swipebid/service/chain"
	"github.com/x-xyz/swipebid/service/chain/contract"
	"github.com/x-xyz/swipebid/service/ens"
	"github.com/x-xyz/swipebid/service/pinata"
	auth_usecase "github.com/x-xyz/swipebid/stores/auth/usecase"
	bid_usecase "github.com/x-xyz/swipebid/stores/bid/usecase"
	file_usecase "github.com/x-xyz/swipebid/stores/file/usecase"
	hc_repo "github.com/x-xyz/swipebid/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/swipebid/stores/healthcheck/usecase"
	listing_repository "github.com/x-xyz/swipebid/stores/listing/repository"
	listing_usecase "github.com/x-xyz/swipebid/stores/listing/usecase"
	metadata_usecase "github.com/x-xyz/swipebid/stores/metadata/usecase"
	nft_usecase "github.com/x-xyz/swipebid/stores/nft/usecase"
	web_resource_repository "github.com/x-xyz/swipebid/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/swipebid/stores/web_resource/usecase"
)

const EnvPrefix = "SWIPEBID"

// App holds everything the api server and the cli share
type App struct {
	Wallet      *ethereum.Wallet
	Chain       chain.Client
	Contract    listing.Contract
	Ens         ens.ENS
	Listing     listing.Usecase
	Explore     listing.ExploreUsecase
	Bid         bid.Usecase
	Nft         nft.Usecase
	Auth        domain.AuthUsecase
	HealthCheck hcdomain.HealthCheckUsecase
	// HttpCache backs the response cache middleware
	HttpCache cache.Service
}

// LoadConfig reads the yaml config at path into the global viper, env vars
// prefixed with SWIPEBID_ override it (chain.rpcUrl -> SWIPEBID_CHAIN_RPCURL)
func LoadConfig(path string) error {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	log.SetDebug(viper.GetBool("debug"))
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.address", ":9090")
	viper.SetDefault("chain.chainId", 1)
	viper.SetDefault("chain.maxConcurrency", 8)
	viper.SetDefault("pager.pageSize", listing_usecase.DefaultPageSize)
	viper.SetDefault("session.ttl", 30*time.Minute)
	viper.SetDefault("listing.ttl", 30*time.Second)
	viper.SetDefault("tx.timeout", 30*time.Second)
	viper.SetDefault("ipfs.gateway", web_resource_usecase.DefaultGateway)
	viper.SetDefault("ipfs.rateLimit", 10)
	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("metadata.ttl", time.Hour)
	viper.SetDefault("metadata.workers", 8)
	viper.SetDefault("pinata.endpoint", pinata.DefaultEndpoint)
	viper.SetDefault("pinata.timeout", 2*time.Minute)
	viper.SetDefault("cache.sizeMB", 64)
	viper.SetDefault("auth.tokenTtl", 24*time.Hour)
	viper.SetDefault("app_name", "swipebid")
}

// New builds the app from the loaded config. A missing private key leaves the
// wallet disconnected instead of failing, every write then answers
// domain.ErrWalletNotConnected.
func New(c ctx.Ctx) (*App, error) {
	txTimeout := viper.GetDuration("tx.timeout")
	httpTimeout := viper.GetDuration("http.timeout")
	pageSize := viper.GetInt("pager.pageSize")

	c.Info("init wallet")
	wallet := ethereum.NewWallet(viper.GetString("wallet.privateKey"), viper.GetInt64("chain.chainId"))
	if err := wallet.Init(); err == domain.ErrWalletNotConnected {
		c.Warn("no private key configured, wallet not connected")
	} else if err != nil {
		c.WithField("err", err).Error("wallet.Init failed")
		return nil, err
	}

	c.Info("init cache")
	local, shared := initCache(c)

	c.Info("init chain client")
	chainClient, err := chain.NewClient(c, &chain.ClientCfg{
		RpcUrl:         viper.GetString("chain.rpcUrl"),
		MaxConcurrency: viper.GetInt("chain.maxConcurrency"),
		TxTimeout:      txTimeout,
	})
	if err != nil {
		wallet.Dispose()
		return nil, err
	}
	marketplace := contract.NewMarketplace(chainClient, wallet, domain.Address(viper.GetString("contract.address")))

	ensService := initEns(c, local)

	httpReader := web_resource_repository.NewHttpReaderRepo(&http.Client{}, httpTimeout, nil)
	dataUriReader := web_resource_repository.NewDataUriReaderRepo()
	ipfsReader := web_resource_repository.NewIpfsGatewayReaderRepo(
		httpReader,
		viper.GetString("ipfs.gateway"),
		rate.NewLimiter(rate.Limit(viper.GetFloat64("ipfs.rateLimit")), 1),
	)
	if nodeApi := viper.GetString("ipfs.nodeApi"); nodeApi != "" {
		c.WithField("nodeApi", nodeApi).Info("reading ipfs through node api")
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    httpReader,
		IpfsReader:    ipfsReader,
		DataUriReader: dataUriReader,
		Gateway:       viper.GetString("ipfs.gateway"),
	})

	normalizer := metadata_usecase.NewNormalizer(&metadata_usecase.NormalizerCfg{
		WebResource:   webResource,
		MetadataCache: newCacheService(local, keys.PfxMetadata, viper.GetDuration("metadata.ttl")),
		Ens:           ensService,
		FetchTimeout:  httpTimeout,
		Workers:       viper.GetInt("metadata.workers"),
	})

	listingRepo := listing_repository.New(&listing_repository.ListingRepoCfg{
		Contract: marketplace,
		Cache:    local,
		Ttl:      viper.GetDuration("listing.ttl"),
	})
	listingUC := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Repo:       listingRepo,
		Contract:   marketplace,
		Normalizer: normalizer,
		Wallet:     wallet,
		Pending:    newCacheService(shared, keys.PfxPending, txTimeout),
		PageSize:   pageSize,
		TxTimeout:  txTimeout,
	})
	exploreUC := listing_usecase.NewExploreUseCase(&listing_usecase.ExploreUseCaseCfg{
		Repo:       listingRepo,
		Normalizer: normalizer,
		Sessions:   newCacheService(shared, keys.PfxSession, viper.GetDuration("session.ttl")),
		PageSize:   pageSize,
	})
	bidUC := bid_usecase.NewBidUseCase(&bid_usecase.BidUseCaseCfg{
		Repo:      listingRepo,
		Contract:  marketplace,
		Wallet:    wallet,
		Modals:    newCacheService(shared, keys.PfxBidModal, viper.GetDuration("session.ttl")),
		Explore:   exploreUC,
		PageSize:  pageSize,
		TxTimeout: txTimeout,
	})

	pinataService := pinata.New(pinata.Config{
		Endpoint:  viper.GetString("pinata.endpoint"),
		Jwt:       viper.GetString("pinata.jwt"),
		ApiKey:    viper.GetString("pinata.apiKey"),
		ApiSecret: viper.GetString("pinata.apiSecret"),
		Timeout:   viper.GetDuration("pinata.timeout"),
	})
	nftUC := nft_usecase.NewNftUseCase(&nft_usecase.NftUseCaseCfg{
		Repo:      listingRepo,
		Contract:  marketplace,
		Wallet:    wallet,
		File:      file_usecase.New(pinataService, dataUriReader),
		TxTimeout: txTimeout,
	})

	authUC := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signingMsg"),
		Nonces:             newCacheService(shared, keys.PfxNonce, 10*time.Minute),
		TokenTtl:           viper.GetDuration("auth.tokenTtl"),
	})

	return &App{
		Wallet:      wallet,
		Chain:       chainClient,
		Contract:    marketplace,
		Ens:         ensService,
		Listing:     listingUC,
		Explore:     exploreUC,
		Bid:         bidUC,
		Nft:         nftUC,
		Auth:        authUC,
		HealthCheck: hc_usecase.New(hc_repo.New(chainClient, shared)),
		HttpCache:   newCacheService(local, "http", time.Minute),
	}, nil
}

// initCache returns the in-process provider and the provider for state that
// must survive across instances. With redis configured the shared provider is
// redis and the local one is freecache in front of it.
func initCache(c ctx.Ctx) (local, shared provider.Provider) {
	mem := primitive.NewPrimitive("swipebid", viper.GetInt("cache.sizeMB"))
	uri := viper.GetString("redis_cache.uri")
	if uri == "" {
		return mem, mem
	}

	c.WithField("uri", uri).Info("init redis cache")
	pool := redisclient.MustConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	r := redis.NewRedis(pool)
	return compound.NewCompound([]provider.Provider{mem, r}), r
}

// initEns dials the ens rpc, ens is optional and sellers fall back to short
// addresses without it
func initEns(c ctx.Ctx, local provider.Provider) ens.ENS {
	url := viper.GetString("ens.rpcUrl")
	if url == "" {
		return nil
	}
	client, err := ethclient.DialContext(c, url)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"url": url,
		}).Warn("ens disabled, failed to dial rpc")
		return nil
	}
	return ens.New(client, newCacheService(local, keys.PfxEns, time.Hour))
}

func newCacheService(p provider.Provider, pfx string, ttl time.Duration) cache.Service {
	return cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   pfx,
		Cache: p,
	})
}

// Close releases the wallet key and the rpc connection
func (a *App) Close() {
	a.Wallet.Dispose()
	a.Chain.Close()
}
