package router

import (
	"sync"

	"gobridgerouter/types"
)

// RecordStore persists the outcome of executor runs for observability.
type RecordStore interface {
	Save(rec *types.TransferRecord) error
	FindByTransferId(transferId string) (*types.TransferRecord, error)
	FindAllByStatus(status string) ([]*types.TransferRecord, error)
}

// MemoryRecordStore keeps transfer records in process memory.
type MemoryRecordStore struct {
	mu      sync.Mutex
	records []*types.TransferRecord
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{}
}

func (s *MemoryRecordStore) Save(rec *types.TransferRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rec
	s.records = append(s.records, &cp)
	return nil
}

func (s *MemoryRecordStore) FindByTransferId(transferId string) (*types.TransferRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.TransferId == transferId {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MemoryRecordStore) FindAllByStatus(status string) ([]*types.TransferRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.TransferRecord, 0)
	for _, rec := range s.records {
		if rec.Status == status {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}
