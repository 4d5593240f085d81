package handlers

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"math/big"
	"net/http"
	"time"

	"gobridgerouter/router"
	"gobridgerouter/types"
)

type TransferSubmitRequest struct {
	Initiator   string `json:"initiator"`
	Token       string `json:"token"`
	Amount      string `json:"amount"` // base-10 integer, smallest unit
	DestChain   uint64 `json:"destChain"`
	Recipient   string `json:"recipient"`
	Deadline    int64  `json:"deadline"`
	SubmittedAt int64  `json:"submittedAt"` // optional, defaults to now
	RouteHint   string `json:"routeHint"`
}

func SubmitTransfer(rt *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			log.Printf("Error reading request body: %s", err.Error())
			responseError(w, "", "Error reading request body", http.StatusBadRequest)
			return
		}

		var req TransferSubmitRequest
		err = json.Unmarshal(body, &req)
		if err != nil {
			log.Printf("Error unmarshalling request body: %s\n", err.Error())
			responseError(w, "", "Cannot unmarshal input JSON", http.StatusBadRequest)
			return
		}

		initiator, err := parseAddress(req.Initiator)
		if err != nil {
			log.Printf("Error validating initiator address '%s': %s\n", req.Initiator, err.Error())
			responseError(w, "initiator", "No initiator address or invalid address provided", http.StatusBadRequest)
			return
		}

		tokenAddr, err := parseAddress(req.Token)
		if err != nil {
			log.Printf("Error validating token address '%s': %s\n", req.Token, err.Error())
			responseError(w, "token", "No token address or invalid address provided", http.StatusBadRequest)
			return
		}

		recipient, err := parseAddress(req.Recipient)
		if err != nil {
			log.Printf("Error validating recipient address '%s': %s\n", req.Recipient, err.Error())
			responseError(w, "recipient", "No recipient address or invalid address provided", http.StatusBadRequest)
			return
		}

		amount, ok := new(big.Int).SetString(req.Amount, 10)
		if !ok {
			responseError(w, "amount", "Amount is not a base-10 integer", http.StatusBadRequest)
			return
		}

		submittedAt := req.SubmittedAt
		if submittedAt == 0 {
			submittedAt = time.Now().Unix()
		}

		rec, err := rt.Execute(types.TransferRequest{
			Initiator:   initiator,
			Token:       tokenAddr,
			Amount:      amount,
			DestChain:   types.ChainID(req.DestChain),
			Recipient:   recipient,
			Deadline:    req.Deadline,
			SubmittedAt: submittedAt,
			RouteHint:   req.RouteHint,
		})
		if err != nil {
			responseError(w, "", err.Error(), statusForError(err))
			return
		}

		responseJSON(w, &APISubmitResponse{
			Status:     "ok",
			TransferId: rec.TransferId,
			Endpoint:   rec.Endpoint,
			RouteIndex: rec.RouteIndex,
			Fee:        rec.Fee,
			NetAmount:  rec.NetAmount,
		}, http.StatusOK)
	}
}
