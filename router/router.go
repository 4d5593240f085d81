package router

import (
	"fmt"
	"math/big"
	"sync"

	"gobridgerouter/config"
	"gobridgerouter/endpoint"
	"gobridgerouter/token"
	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
)

// Config wires a Router instance together. Tokens is required; the
// stores default to in-memory implementations and Endpoints may be nil
// when no out-of-process bridge operators are attached.
type Config struct {
	Address      common.Address // custody account funds move through
	Owner        common.Address // capability holder for admin operations
	FeeRecipient common.Address
	FeeBps       uint64

	Tokens    token.Source
	Endpoints endpoint.Source
	Processed ProcessedStore
	Records   RecordStore
	Routes    RouteStore
}

// Router is the cross-chain transfer router: it custodies caller
// funds, deducts the protocol fee, selects the best registered route
// and releases the remainder to the chosen bridge endpoint.
//
// A single mutex serializes every mutating operation, so the whole
// Received->Completed pipeline of one request is atomic to observers.
// Read-only queries take the read lock and run against a consistent
// snapshot.
type Router struct {
	mu sync.RWMutex

	address      common.Address
	owner        common.Address
	feeRecipient common.Address
	feeBps       uint64
	paused       bool

	routes     map[types.ChainID][]types.BridgeRoute
	authorized map[common.Address]bool

	tokens    token.Source
	endpoints endpoint.Source
	processed ProcessedStore
	records   RecordStore
	store     RouteStore

	bus *EventBus
}

func New(cfg Config) (*Router, error) {
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("router: no token source configured")
	}
	if cfg.FeeBps > config.MAX_FEE_BPS {
		return nil, ErrFeeExceedsCeiling
	}
	if cfg.FeeRecipient == (common.Address{}) {
		return nil, ErrInvalidFeeRecipient
	}

	r := &Router{
		address:      cfg.Address,
		owner:        cfg.Owner,
		feeRecipient: cfg.FeeRecipient,
		feeBps:       cfg.FeeBps,
		routes:       map[types.ChainID][]types.BridgeRoute{},
		authorized:   map[common.Address]bool{},
		tokens:       cfg.Tokens,
		endpoints:    cfg.Endpoints,
		processed:    cfg.Processed,
		records:      cfg.Records,
		store:        cfg.Routes,
		bus:          NewEventBus(),
	}
	if r.processed == nil {
		r.processed = NewMemoryProcessedStore()
	}
	if r.records == nil {
		r.records = NewMemoryRecordStore()
	}

	if r.store != nil {
		saved, err := r.store.LoadAll()
		if err != nil {
			return nil, fmt.Errorf("router: cannot load route snapshots: %w", err)
		}
		for chain, routes := range saved {
			r.routes[chain] = routes
			for _, rt := range routes {
				// authorization is monotonic, rebuild it from every
				// route ever registered
				r.authorized[rt.Endpoint] = true
			}
		}
	}

	return r, nil
}

// Events exposes the router's event bus for observer registration.
func (r *Router) Events() *EventBus {
	return r.bus
}

// Records exposes the transfer record store for observability queries.
func (r *Router) Records() RecordStore {
	return r.records
}

// Address returns the custody account.
func (r *Router) Address() common.Address {
	return r.address
}

func (r *Router) FeeRate() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.feeBps
}

func (r *Router) FeeRecipient() common.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.feeRecipient
}

func (r *Router) Paused() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.paused
}

// CustodyBalance returns the router's current holding of a token.
func (r *Router) CustodyBalance(tokenAddr common.Address) (*big.Int, error) {
	tok, found := r.tokens.Resolve(tokenAddr)
	if !found {
		return nil, ErrUnknownToken
	}
	return tok.BalanceOf(r.address), nil
}

// IsProcessed reports whether a transfer id has already been executed.
func (r *Router) IsProcessed(id types.TransferId) (bool, error) {
	return r.processed.IsProcessed(id)
}
