package handlers

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"math/big"
	"net/http"

	"gobridgerouter/router"
)

func Pause(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := adminCaller(r)
		if err != nil {
			responseError(w, "X-Router-Key", "No capability address or invalid address provided", http.StatusUnauthorized)
			return
		}

		if err := rt.Pause(caller); err != nil {
			responseError(w, "", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIResponse{Status: "ok"}, http.StatusOK)
	}
}

func Unpause(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := adminCaller(r)
		if err != nil {
			responseError(w, "X-Router-Key", "No capability address or invalid address provided", http.StatusUnauthorized)
			return
		}

		if err := rt.Unpause(caller); err != nil {
			responseError(w, "", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIResponse{Status: "ok"}, http.StatusOK)
	}
}

type WithdrawRequest struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

func EmergencyWithdraw(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := adminCaller(r)
		if err != nil {
			responseError(w, "X-Router-Key", "No capability address or invalid address provided", http.StatusUnauthorized)
			return
		}

		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			responseError(w, "", "Error reading request body", http.StatusBadRequest)
			return
		}

		var req WithdrawRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Printf("Error unmarshalling request body: %s\n", err.Error())
			responseError(w, "", "Cannot unmarshal input JSON", http.StatusBadRequest)
			return
		}

		tokenAddr, err := parseAddress(req.Token)
		if err != nil {
			responseError(w, "token", "No token address or invalid address provided", http.StatusBadRequest)
			return
		}

		amount, ok := new(big.Int).SetString(req.Amount, 10)
		if !ok {
			responseError(w, "amount", "Amount is not a base-10 integer", http.StatusBadRequest)
			return
		}

		if err := rt.EmergencyWithdraw(caller, tokenAddr, amount); err != nil {
			responseError(w, "", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIResponse{Status: "ok"}, http.StatusOK)
	}
}
