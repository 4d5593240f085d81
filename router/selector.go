package router

import (
	"math/big"

	"gobridgerouter/types"
)

// RouteScore is the routing heuristic: amount / (route fee + latency),
// integer arithmetic with truncation. Cheap, fast routes win, and the
// amount scaling the numerator means larger transfers weight fee and
// latency efficiency more heavily.
func RouteScore(amount *big.Int, route types.BridgeRoute) *big.Int {
	den := route.Fee + route.Latency
	if den == 0 {
		// a free instant route outscores everything
		den = 1
	}
	return new(big.Int).Div(amount, new(big.Int).SetUint64(den))
}

// SelectBest scores the active routes for a chain and returns the best
// one with its registry index. First-registered wins ties. Read-only;
// safe to call as a dry run while transfers execute.
func (r *Router) SelectBest(chain types.ChainID, amount *big.Int) (types.BridgeRoute, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selectBest(chain, amount)
}

// caller must hold at least the read lock
func (r *Router) selectBest(chain types.ChainID, amount *big.Int) (types.BridgeRoute, int, error) {
	routes := r.routes[chain]
	if len(routes) == 0 {
		return types.BridgeRoute{}, 0, ErrNoRoutesAvailable
	}

	bestIndex := -1
	bestScore := new(big.Int)
	for i, route := range routes {
		if !route.Active {
			continue
		}
		score := RouteScore(amount, route)
		// strictly greater, so the earliest registration keeps ties
		if bestIndex == -1 || score.Cmp(bestScore) > 0 {
			bestIndex = i
			bestScore = score
		}
	}
	if bestIndex == -1 {
		return types.BridgeRoute{}, 0, ErrNoActiveRoutes
	}
	return routes[bestIndex], bestIndex, nil
}
