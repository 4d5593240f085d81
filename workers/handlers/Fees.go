package handlers

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"

	"gobridgerouter/router"
)

type SetFeeRateRequest struct {
	FeeBps uint64 `json:"feeBps"`
}

type SetFeeRecipientRequest struct {
	Recipient string `json:"recipient"`
}

func SetFeeRate(rt *router.Router) http.HandlerFunc {
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

		var req SetFeeRateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Printf("Error unmarshalling request body: %s\n", err.Error())
			responseError(w, "", "Cannot unmarshal input JSON", http.StatusBadRequest)
			return
		}

		if err := rt.SetFeeRate(caller, req.FeeBps); err != nil {
			responseError(w, "feeBps", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIResponse{Status: "ok"}, http.StatusOK)
	}
}

func SetFeeRecipient(rt *router.Router) http.HandlerFunc {
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

		var req SetFeeRecipientRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Printf("Error unmarshalling request body: %s\n", err.Error())
			responseError(w, "", "Cannot unmarshal input JSON", http.StatusBadRequest)
			return
		}

		recipient, err := parseAddress(req.Recipient)
		if err != nil {
			responseError(w, "recipient", "No recipient address or invalid address provided", http.StatusBadRequest)
			return
		}

		if err := rt.SetFeeRecipient(caller, recipient); err != nil {
			responseError(w, "recipient", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIResponse{Status: "ok"}, http.StatusOK)
	}
}
