package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gobridgerouter/config"
	"gobridgerouter/endpoint"
	"gobridgerouter/redis"
	"gobridgerouter/router"
	"gobridgerouter/token"
	"gobridgerouter/workers"

	"github.com/ethereum/go-ethereum/common"
)

func main() {
	log.Print("Starting cross-chain transfer router")

	f, err := os.OpenFile(fmt.Sprintf("logs/log_%s.txt", time.Now().Format("2006-01-02")), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file for writing: %v", err)
	}
	defer f.Close()

	log.SetOutput(f)

	config.Init()

	// connect to Redis, without persistence do not continue
	redis.Init()
	if err := redis.Ping(); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}

	tokens := token.Book{}
	for _, t := range config.Config.Tokens {
		tokens[common.HexToAddress(t)] = token.NewLedger()
	}

	endpoints := endpoint.Set{}
	for addr, urls := range config.Config.Endpoints {
		endpoints[common.HexToAddress(addr)] = endpoint.NewRPCEndpoint(urls)
	}

	rt, err := router.New(router.Config{
		Address:      common.HexToAddress(config.Config.Router.Address),
		Owner:        common.HexToAddress(config.Config.Router.Owner),
		FeeRecipient: common.HexToAddress(config.Config.Router.FeeRecipient),
		FeeBps:       config.Config.Router.FeeBps,
		Tokens:       tokens,
		Endpoints:    endpoints,
		Processed:    redis.NewProcessedStore(),
		Records:      redis.NewRecordStore(),
		Routes:       redis.NewRouteStore(),
	})
	if err != nil {
		log.Fatalf("error creating router: %v", err)
	}

	// there are 2 worker threads:
	// * event log observer
	// * API serving HTTP(S) server (serves as main worker thread)
	workers.Worker_EventLog(rt)
	workers.Worker_HTTP(rt)
}
