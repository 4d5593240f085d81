package handlers

import (
	"net/http"
	"strconv"

	"gobridgerouter/router"
	"gobridgerouter/types"

	"github.com/go-chi/chi"
)

// GetRoutes returns the full ordered route sequence for a chain,
// inactive routes included, for observability.
func GetRoutes(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chain, err := strconv.ParseUint(chi.URLParam(r, "chain"), 10, 64)
		if err != nil {
			responseError(w, "chain", "Chain id is not a number", http.StatusBadRequest)
			return
		}

		responseJSON(w, rt.ListRoutes(types.ChainID(chain)), http.StatusOK)
	}
}
