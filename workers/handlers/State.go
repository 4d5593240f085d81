package handlers

import (
	"net/http"

	"gobridgerouter/router"
)

func State(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responseJSON(w, &APIStateResponse{
			Status:       "ok",
			Paused:       rt.Paused(),
			FeeBps:       rt.FeeRate(),
			FeeRecipient: rt.FeeRecipient().Hex(),
		}, http.StatusOK)
	}
}
