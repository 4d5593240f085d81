package handlers

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"

	"gobridgerouter/router"
	"gobridgerouter/types"
)

type AddRouteRequest struct {
	Chain    uint64 `json:"chain"`
	Endpoint string `json:"endpoint"`
	Cost     uint64 `json:"cost"`
	Latency  uint64 `json:"latency"`
	Fee      uint64 `json:"fee"`
}

func AddRoute(rt *router.Router) http.HandlerFunc {
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

		var req AddRouteRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Printf("Error unmarshalling request body: %s\n", err.Error())
			responseError(w, "", "Cannot unmarshal input JSON", http.StatusBadRequest)
			return
		}

		ep, err := parseAddress(req.Endpoint)
		if err != nil {
			responseError(w, "endpoint", "No endpoint address or invalid address provided", http.StatusBadRequest)
			return
		}

		index, err := rt.AddRoute(caller, types.ChainID(req.Chain), ep, req.Cost, req.Latency, req.Fee)
		if err != nil {
			responseError(w, "", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIRouteResponse{
			Status: "ok",
			Chain:  req.Chain,
			Index:  index,
			Active: true,
		}, http.StatusOK)
	}
}
