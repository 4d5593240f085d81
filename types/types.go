package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// destination networks are addressed by their numeric chain id
// (Eth mainnet 1, Optimism 10, BNB 56, etc.)
type ChainID uint64

// TransferId is the deterministic fingerprint of a transfer request,
// used for replay protection.
type TransferId = common.Hash

// BridgeRoute is one registered way to move funds to a destination
// network via a specific bridge endpoint. Routes are append-only and
// soft-disabled via Active, never deleted, so a route index handed out
// once stays valid forever.
type BridgeRoute struct {
	Endpoint common.Address `json:"endpoint"`
	Cost     uint64         `json:"cost"`    // estimated execution cost, endpoint units
	Latency  uint64         `json:"latency"` // estimated seconds to destination finality
	Fee      uint64         `json:"fee"`     // route fee charged by the bridge
	Active   bool           `json:"active"`
}

// TransferRequest is built by the caller per submission and not persisted.
type TransferRequest struct {
	Initiator   common.Address
	Token       common.Address
	Amount      *big.Int
	DestChain   ChainID
	Recipient   common.Address
	Deadline    int64 // unix seconds
	SubmittedAt int64 // unix seconds, feeds TransferId; a retry needs a fresh one
	RouteHint   string
}

// TransferRecord is the persisted outcome of one executor run,
// having a status
type TransferRecord struct {
	ID         string `json:"id"`
	TransferId string `json:"transferId"`
	Status     string `json:"status"`
	Token      string `json:"token"`
	Amount     string `json:"amount"` // gross amount pulled into custody
	Fee        string `json:"fee"`
	NetAmount  string `json:"netAmount"`
	DestChain  uint64 `json:"destChain"`
	Recipient  string `json:"recipient"`
	Endpoint   string `json:"endpoint"` // bridge endpoint the net amount was released to
	RouteIndex int    `json:"routeIndex"`
	TsCreated  int64  `json:"tsCreated"`
	Message    string `json:"message"` // messages that help to track processing/errors
}

// Event types emitted by the router after the corresponding state
// transition commits.
const (
	EventRouteAdded          = "route_added"
	EventRouteToggled        = "route_toggled"
	EventTransferInitiated   = "transfer_initiated"
	EventFeeUpdated          = "fee_updated"
	EventFeeRecipientUpdated = "fee_recipient_updated"
	EventPaused              = "paused"
	EventUnpaused            = "unpaused"
	EventEmergencyWithdraw   = "emergency_withdraw"
)

// Event is a structured record for off-core observers. Only the fields
// relevant to the event type are populated.
type Event struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Ts         int64  `json:"ts"`
	Chain      uint64 `json:"chain,omitempty"`
	RouteIndex int    `json:"routeIndex,omitempty"`
	Endpoint   string `json:"endpoint,omitempty"`
	TransferId string `json:"transferId,omitempty"`
	Token      string `json:"token,omitempty"`
	Amount     string `json:"amount,omitempty"` // net amount for transfer_initiated
	Recipient  string `json:"recipient,omitempty"`
	FeeBps     uint64 `json:"feeBps,omitempty"`
	Active     bool   `json:"active,omitempty"`
}
