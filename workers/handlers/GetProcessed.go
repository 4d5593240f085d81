package handlers

import (
	"net/http"

	"gobridgerouter/router"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
)

// GetProcessed reports whether a transfer id was already executed.
func GetProcessed(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		if len(raw) != 2+2*common.HashLength || raw[:2] != "0x" {
			responseError(w, "id", "Transfer id must be a 32-byte hex string", http.StatusBadRequest)
			return
		}
		id := common.HexToHash(raw)

		processed, err := rt.IsProcessed(id)
		if err != nil {
			responseError(w, "", err.Error(), http.StatusInternalServerError)
			return
		}

		responseJSON(w, &APIProcessedResponse{
			Status:     "ok",
			TransferId: id.Hex(),
			Processed:  processed,
		}, http.StatusOK)
	}
}
