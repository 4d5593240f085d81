package router

import (
	"log"
	"time"

	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// RouteStore persists per-chain route sequences across restarts.
type RouteStore interface {
	SaveChain(chain types.ChainID, routes []types.BridgeRoute) error
	LoadAll() (map[types.ChainID][]types.BridgeRoute, error)
}

// AddRoute registers a new route for a destination chain. The route is
// appended (indices stay stable forever) and its endpoint becomes
// authorized for dispatch. Owner capability required.
func (r *Router) AddRoute(caller common.Address, chain types.ChainID, ep common.Address, cost, latency, fee uint64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwner(caller); err != nil {
		return 0, err
	}
	if ep == (common.Address{}) {
		return 0, ErrInvalidRoute
	}

	r.routes[chain] = append(r.routes[chain], types.BridgeRoute{
		Endpoint: ep,
		Cost:     cost,
		Latency:  latency,
		Fee:      fee,
		Active:   true,
	})
	// once authorized, an endpoint stays authorized even if all its
	// routes are later deactivated
	r.authorized[ep] = true

	index := len(r.routes[chain]) - 1
	r.persistChain(chain)

	log.Printf("Added route %d for chain %d: endpoint %s, cost %d, latency %d, fee %d", index, chain, ep.Hex(), cost, latency, fee)
	r.bus.Publish(types.Event{
		ID:         uuid.New().String(),
		Type:       types.EventRouteAdded,
		Ts:         time.Now().Unix(),
		Chain:      uint64(chain),
		RouteIndex: index,
		Endpoint:   ep.Hex(),
		Active:     true,
	})
	return index, nil
}

// ToggleRoute flips the active flag of the route at index in place.
// Inactive routes become invisible to selection but keep their slot.
func (r *Router) ToggleRoute(caller common.Address, chain types.ChainID, index int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwner(caller); err != nil {
		return false, err
	}
	routes := r.routes[chain]
	if index < 0 || index >= len(routes) {
		return false, ErrRouteIndexOutOfRange
	}

	routes[index].Active = !routes[index].Active
	r.persistChain(chain)

	log.Printf("Toggled route %d for chain %d: active=%v", index, chain, routes[index].Active)
	r.bus.Publish(types.Event{
		ID:         uuid.New().String(),
		Type:       types.EventRouteToggled,
		Ts:         time.Now().Unix(),
		Chain:      uint64(chain),
		RouteIndex: index,
		Endpoint:   routes[index].Endpoint.Hex(),
		Active:     routes[index].Active,
	})
	return routes[index].Active, nil
}

// ListRoutes returns the full ordered route sequence for a chain,
// inactive routes included.
func (r *Router) ListRoutes(chain types.ChainID) []types.BridgeRoute {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.BridgeRoute, len(r.routes[chain]))
	copy(out, r.routes[chain])
	return out
}

// IsAuthorizedEndpoint reports whether the router ever registered a
// route naming this endpoint.
func (r *Router) IsAuthorizedEndpoint(ep common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.authorized[ep]
}

func (r *Router) persistChain(chain types.ChainID) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveChain(chain, r.routes[chain]); err != nil {
		// registry state in memory stays authoritative
		log.Printf("Error persisting routes for chain %d: %s", chain, err.Error())
	}
}
