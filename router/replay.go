package router

import (
	"encoding/binary"
	"math/big"
	"sync"

	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ComputeTransferId derives the canonical transfer fingerprint:
// Keccak-256 over the tight concatenation of
//
//	initiator[20] || token[20] || amount[32 BE] || chain[8 BE] || recipient[20] || submittedAt[8 BE]
//
// Field order and widths are part of the wire contract; changing
// either breaks replay protection across implementations.
func ComputeTransferId(initiator, tok common.Address, amount *big.Int, chain types.ChainID, recipient common.Address, submittedAt int64) types.TransferId {
	buf := make([]byte, 0, 20+20+32+8+20+8)
	buf = append(buf, initiator.Bytes()...)
	buf = append(buf, tok.Bytes()...)

	var amt [32]byte
	amount.FillBytes(amt[:])
	buf = append(buf, amt[:]...)

	var u64 [8]byte
	binary.BigEndian.PutUint64(u64[:], uint64(chain))
	buf = append(buf, u64[:]...)

	buf = append(buf, recipient.Bytes()...)

	binary.BigEndian.PutUint64(u64[:], uint64(submittedAt))
	buf = append(buf, u64[:]...)

	return crypto.Keccak256Hash(buf)
}

// ProcessedStore is the persistent processed-set: append-only,
// monotonically growing, ids are never removed. CheckAndMark must be
// atomic across concurrent submissions of the same id.
type ProcessedStore interface {
	// CheckAndMark returns false without state change when id is
	// already marked, otherwise marks it and returns true.
	CheckAndMark(id types.TransferId) (bool, error)
	IsProcessed(id types.TransferId) (bool, error)
}

// MemoryProcessedStore keeps the processed-set in process memory.
type MemoryProcessedStore struct {
	mu  sync.Mutex
	ids map[types.TransferId]bool
}

func NewMemoryProcessedStore() *MemoryProcessedStore {
	return &MemoryProcessedStore{ids: map[types.TransferId]bool{}}
}

func (s *MemoryProcessedStore) CheckAndMark(id types.TransferId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[id] {
		return false, nil
	}
	s.ids[id] = true
	return true, nil
}

func (s *MemoryProcessedStore) IsProcessed(id types.TransferId) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id], nil
}
