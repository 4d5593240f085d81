package endpoint

import (
	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
)

// DispatchNotice tells a bridge endpoint that the net amount of a
// transfer has been approved to it and the cross-chain leg is now its
// responsibility. No return contract is assumed beyond accepting the
// call.
type DispatchNotice struct {
	TransferId string `json:"transferId"`
	Token      string `json:"token"`
	Amount     string `json:"amount"`
	DestChain  uint64 `json:"destChain"`
	Recipient  string `json:"recipient"`
}

type Endpoint interface {
	Dispatch(notice DispatchNotice) error
}

// Source resolves a registered endpoint address to its client.
type Source interface {
	Resolve(addr common.Address) (Endpoint, bool)
}

// Set is a static Source over an address -> Endpoint map.
type Set map[common.Address]Endpoint

func (s Set) Resolve(addr common.Address) (Endpoint, bool) {
	e, ok := s[addr]
	return e, ok
}

// NoticeFor builds the dispatch notice for a completed executor run.
func NoticeFor(rec *types.TransferRecord) DispatchNotice {
	return DispatchNotice{
		TransferId: rec.TransferId,
		Token:      rec.Token,
		Amount:     rec.NetAmount,
		DestChain:  rec.DestChain,
		Recipient:  rec.Recipient,
	}
}
