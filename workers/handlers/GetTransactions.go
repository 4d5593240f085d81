package handlers

import (
	"net/http"

	"gobridgerouter/router"
)

func GetCompletedTransfers(rt *router.Router) http.HandlerFunc {
	return transfersByStatus(rt, "completed")
}

func GetRejectedTransfers(rt *router.Router) http.HandlerFunc {
	return transfersByStatus(rt, "rejected")
}

func transfersByStatus(rt *router.Router, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := rt.Records().FindAllByStatus(status)
		if err != nil {
			responseJSON(w, nil, http.StatusInternalServerError)
			return
		}

		responseJSON(w, recs, http.StatusOK)
	}
}
