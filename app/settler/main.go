package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	bCtx "github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/base/ethereum"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/base/settler"
	"github.com/bidhaus/goapi/domain"
	mmiddleware "github.com/bidhaus/goapi/middleware"
	"github.com/bidhaus/goapi/service/chain"
	"github.com/bidhaus/goapi/service/chain/contract"
	"github.com/bidhaus/goapi/service/chain/registry"
	"github.com/bidhaus/goapi/service/chain/treasury"
	"github.com/bidhaus/goapi/service/query"
	auction_repository "github.com/bidhaus/goapi/stores/auction/repository"
	auction_usecase "github.com/bidhaus/goapi/stores/auction/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/settler/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	ctx.Info("init mongo")
	q := initMongo()

	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(k + ".chainId")
		rpcUrl := networks.GetString(k + ".rpcUrl")
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		ctx.WithField("err", err).Panic("chainService init failed")
	}
	erc721Service := contract.NewErc721(chainService)

	marketplace := domain.Address(viper.GetString("marketplace.address")).ToLower()
	operatorKey, err := ethereum.ParsePrivateKey(viper.GetString("marketplace.operatorKey"))
	if err != nil {
		ctx.WithField("err", err).Panic("invalid operator key")
	}
	payoutChainId := domain.ChainId(viper.GetInt64("marketplace.payoutChainId"))
	registryService := registry.New(erc721Service, operatorKey, marketplace)
	treasuryService := treasury.New(chainService, payoutChainId, operatorKey)

	itemRepo := auction_repository.NewItemRepo(q)
	escrowRepo := auction_repository.NewEscrowRepo(q)
	payoutRepo := auction_repository.NewPayoutRepo(q)

	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		ItemRepo:    itemRepo,
		EscrowRepo:  escrowRepo,
		PayoutRepo:  payoutRepo,
		Registry:    registryService,
		Treasury:    treasuryService,
		Tx:          q,
		Clock:       clock.New(),
		ListingFee:  viper.GetString("marketplace.listingFee"),
		Marketplace: marketplace,
	})

	errCh := make(chan error, 1)
	s := settler.NewSettler(&settler.SettlerCfg{
		ItemRepo:  itemRepo,
		AuctionUC: auctionUC,
		Clock:     clock.New(),
		Caller:    marketplace,
		Interval:  viper.GetDuration("settler.interval"),
		BatchSize: viper.GetInt32("settler.batchSize"),
		Workers:   viper.GetInt("settler.workers"),
		ErrorCh:   errCh,
	})
	s.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		ctx.WithField("signal", sig).Info("received signal")
	case err := <-errCh:
		ctx.WithField("err", err).Error("settler stopped with error")
	}
	cancel()
	s.Wait()
	ctx.Info("settler shutdown")
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
