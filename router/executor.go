package router

import (
	"fmt"
	"log"
	"time"

	"gobridgerouter/endpoint"
	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// Execute runs one transfer through the pipeline:
//
//	validate -> replay mark -> custody -> fee -> route -> dispatch -> event
//
// The router lock is held for the whole run, so concurrent submissions
// serialize and the replay check-and-mark can never race custody.
//
// The replay marker is set strictly before any token movement. A
// request that fails after the marker is set can never be retried with
// the same canonical inputs; callers must pick a fresh SubmittedAt.
// That closes the double-spend window at the cost of burning the id on
// transient custody failures.
func (r *Router) Execute(req types.TransferRequest) (*types.TransferRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.paused {
		return nil, ErrPaused
	}

	now := time.Now().Unix()
	if req.Deadline < now {
		return nil, ErrTransferExpired
	}
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Recipient == (common.Address{}) {
		return nil, ErrInvalidRecipient
	}

	id := ComputeTransferId(req.Initiator, req.Token, req.Amount, req.DestChain, req.Recipient, req.SubmittedAt)

	ok, err := r.processed.CheckAndMark(id)
	if err != nil {
		return nil, fmt.Errorf("replay check failed: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyProcessed
	}

	rec := &types.TransferRecord{
		ID:         uuid.New().String(),
		TransferId: id.Hex(),
		Token:      req.Token.Hex(),
		Amount:     req.Amount.String(),
		DestChain:  uint64(req.DestChain),
		Recipient:  req.Recipient.Hex(),
		RouteIndex: -1,
		TsCreated:  now,
	}

	tok, found := r.tokens.Resolve(req.Token)
	if !found {
		return r.reject(rec, ErrUnknownToken)
	}

	// CustodyTaken: pull the gross amount from the initiator
	if err := tok.TransferFrom(r.address, req.Initiator, r.address, req.Amount); err != nil {
		return r.reject(rec, fmt.Errorf("custody transfer failed: %w", err))
	}

	// FeeExtracted: forward the protocol cut to the fee recipient
	fee, net := ComputeFee(req.Amount, r.feeBps)
	if fee.Sign() > 0 {
		if err := tok.Transfer(r.address, r.feeRecipient, fee); err != nil {
			return r.reject(rec, fmt.Errorf("fee transfer failed: %w", err))
		}
	}
	rec.Fee = fee.String()
	rec.NetAmount = net.String()

	// RouteChosen
	route, index, err := r.selectBest(req.DestChain, net)
	if err != nil {
		return r.reject(rec, err)
	}
	rec.RouteIndex = index
	rec.Endpoint = route.Endpoint.Hex()

	// Dispatched: re-check endpoint authorization, then release the
	// net amount. The cross-chain leg is the endpoint's problem.
	if !r.authorized[route.Endpoint] {
		return r.reject(rec, ErrUnauthorizedEndpoint)
	}
	if err := tok.Approve(r.address, route.Endpoint, net); err != nil {
		return r.reject(rec, fmt.Errorf("endpoint approval failed: %w", err))
	}

	rec.Status = "completed"
	if err := r.records.Save(rec); err != nil {
		log.Printf("Error saving transfer record %s: %s", rec.ID, err.Error())
	}

	log.Printf("Transfer %s: %s of %s to chain %d via route %d (%s), fee %s", rec.TransferId, rec.NetAmount, rec.Token, rec.DestChain, index, rec.Endpoint, rec.Fee)

	// fire-and-forget: endpoint failures are not observable here and
	// do not block completion
	if r.endpoints != nil {
		if ep, found := r.endpoints.Resolve(route.Endpoint); found {
			notice := endpoint.NoticeFor(rec)
			go func() {
				if err := ep.Dispatch(notice); err != nil {
					log.Printf("Error dispatching transfer %s to endpoint %s: %s", notice.TransferId, rec.Endpoint, err.Error())
				}
			}()
		}
	}

	r.bus.Publish(types.Event{
		ID:         uuid.New().String(),
		Type:       types.EventTransferInitiated,
		Ts:         time.Now().Unix(),
		Chain:      rec.DestChain,
		RouteIndex: index,
		Endpoint:   rec.Endpoint,
		TransferId: rec.TransferId,
		Token:      rec.Token,
		Amount:     rec.NetAmount,
		Recipient:  rec.Recipient,
	})

	return rec, nil
}

// reject persists the failed run (the replay marker is already burned
// at this point, the record keeps the why) and surfaces the error.
func (r *Router) reject(rec *types.TransferRecord, err error) (*types.TransferRecord, error) {
	rec.Status = "rejected"
	rec.Message = err.Error()
	if serr := r.records.Save(rec); serr != nil {
		log.Printf("Error saving rejected transfer record %s: %s", rec.ID, serr.Error())
	}
	log.Printf("Rejected transfer %s: %s", rec.TransferId, err.Error())
	return nil, err
}
