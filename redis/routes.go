package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"gobridgerouter/types"

	"github.com/gomodule/redigo/redis"
)

// RouteStore persists per-chain route sequences so the registry (and
// the monotonic endpoint authorization derived from it) survives
// restarts.
type RouteStore struct{}

func NewRouteStore() *RouteStore {
	return &RouteStore{}
}

const routeChainsKey = "routes:chains"

func routesKey(chain types.ChainID) string {
	return fmt.Sprintf("routes:%d", chain)
}

func (s *RouteStore) SaveChain(chain types.ChainID, routes []types.BridgeRoute) error {
	conn, err := getConn()
	if err != nil {
		return err
	}
	defer conn.Close()

	routesJSON, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("cannot marshal routes to JSON: %s", err.Error())
	}

	_, err = conn.Do("SET", routesKey(chain), routesJSON)
	if err != nil {
		log.Printf("error Redis SET: %s", err.Error())
		return err
	}

	_, err = conn.Do("SADD", routeChainsKey, uint64(chain))
	if err != nil {
		log.Printf("error Redis SADD: %s", err.Error())
		return err
	}

	return nil
}

func (s *RouteStore) LoadAll() (map[types.ChainID][]types.BridgeRoute, error) {
	conn, err := getConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	chains, err := redis.Strings(conn.Do("SMEMBERS", routeChainsKey))
	if err != nil {
		log.Printf("error Redis SMEMBERS: %s", err.Error())
		return nil, err
	}

	out := map[types.ChainID][]types.BridgeRoute{}
	for _, c := range chains {
		chainID, err := strconv.ParseUint(c, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad chain id %q in %s: %s", c, routeChainsKey, err.Error())
		}

		raw, err := redis.Bytes(conn.Do("GET", routesKey(types.ChainID(chainID))))
		if err != nil {
			log.Printf("error Redis GET: %s", err.Error())
			return nil, err
		}

		var routes []types.BridgeRoute
		if err := json.Unmarshal(raw, &routes); err != nil {
			return nil, err
		}
		out[types.ChainID(chainID)] = routes
	}

	return out, nil
}
