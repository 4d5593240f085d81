package handlers

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"

	"gobridgerouter/router"
	"gobridgerouter/types"
)

type ToggleRouteRequest struct {
	Chain uint64 `json:"chain"`
	Index int    `json:"index"`
}

func ToggleRoute(rt *router.Router) http.HandlerFunc {
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

		var req ToggleRouteRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Printf("Error unmarshalling request body: %s\n", err.Error())
			responseError(w, "", "Cannot unmarshal input JSON", http.StatusBadRequest)
			return
		}

		active, err := rt.ToggleRoute(caller, types.ChainID(req.Chain), req.Index)
		if err != nil {
			responseError(w, "index", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APIRouteResponse{
			Status: "ok",
			Chain:  req.Chain,
			Index:  req.Index,
			Active: active,
		}, http.StatusOK)
	}
}
