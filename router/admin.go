package router

import (
	"fmt"
	"log"
	"math/big"
	"time"

	"gobridgerouter/config"
	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// Administrative operations are capability-gated: each takes the
// caller's address explicitly and checks it against the configured
// owner.

// caller must hold the write lock
func (r *Router) requireOwner(caller common.Address) error {
	if caller != r.owner {
		return ErrNotOwner
	}
	return nil
}

// SetFeeRate updates the protocol fee rate, bounded by the ceiling.
// Never silently clamped.
func (r *Router) SetFeeRate(caller common.Address, rateBps uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwner(caller); err != nil {
		return err
	}
	if rateBps > config.MAX_FEE_BPS {
		return ErrFeeExceedsCeiling
	}

	r.feeBps = rateBps
	log.Printf("Fee rate updated to %d bps", rateBps)
	r.bus.Publish(types.Event{
		ID:     uuid.New().String(),
		Type:   types.EventFeeUpdated,
		Ts:     time.Now().Unix(),
		FeeBps: rateBps,
	})
	return nil
}

func (r *Router) SetFeeRecipient(caller, recipient common.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwner(caller); err != nil {
		return err
	}
	if recipient == (common.Address{}) {
		return ErrInvalidFeeRecipient
	}

	r.feeRecipient = recipient
	log.Printf("Fee recipient updated to %s", recipient.Hex())
	r.bus.Publish(types.Event{
		ID:        uuid.New().String(),
		Type:      types.EventFeeRecipientUpdated,
		Ts:        time.Now().Unix(),
		Recipient: recipient.Hex(),
	})
	return nil
}

// Pause stops new transfers from entering the pipeline. A request that
// already started is not aborted mid-flight.
func (r *Router) Pause(caller common.Address) error {
	return r.setPaused(caller, true, types.EventPaused)
}

func (r *Router) Unpause(caller common.Address) error {
	return r.setPaused(caller, false, types.EventUnpaused)
}

func (r *Router) setPaused(caller common.Address, paused bool, evType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwner(caller); err != nil {
		return err
	}
	r.paused = paused
	log.Printf("Router paused=%v", paused)
	r.bus.Publish(types.Event{
		ID:   uuid.New().String(),
		Type: evType,
		Ts:   time.Now().Unix(),
	})
	return nil
}

// EmergencyWithdraw moves amount of a token held in custody to the
// owner. Escape hatch for funds stranded by failed runs.
func (r *Router) EmergencyWithdraw(caller, tokenAddr common.Address, amount *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireOwner(caller); err != nil {
		return err
	}
	tok, found := r.tokens.Resolve(tokenAddr)
	if !found {
		return ErrUnknownToken
	}
	if err := tok.Transfer(r.address, r.owner, amount); err != nil {
		return fmt.Errorf("emergency withdraw failed: %w", err)
	}

	log.Printf("Emergency withdraw of %s %s to owner %s", amount.String(), tokenAddr.Hex(), r.owner.Hex())
	r.bus.Publish(types.Event{
		ID:        uuid.New().String(),
		Type:      types.EventEmergencyWithdraw,
		Ts:        time.Now().Unix(),
		Token:     tokenAddr.Hex(),
		Amount:    amount.String(),
		Recipient: r.owner.Hex(),
	})
	return nil
}
