package handlers

import (
	"net/http"

	"gobridgerouter/router"

	"github.com/go-chi/chi"
)

type APIBalanceResponse struct {
	Status  string `json:"status"`
	Token   string `json:"token"`
	Balance string `json:"balance"` // custody holding, smallest unit
}

// Balance reports the router's custody holding of a token.
func Balance(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenAddr, err := parseAddress(chi.URLParam(r, "token"))
		if err != nil {
			responseError(w, "token", "No token address or invalid address provided", http.StatusBadRequest)
			return
		}

		balance, err := rt.CustodyBalance(tokenAddr)
		if err != nil {
			responseError(w, "token", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIBalanceResponse{
			Status:  "ok",
			Token:   tokenAddr.Hex(),
			Balance: balance.String(),
		}, http.StatusOK)
	}
}
