package router

import (
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gobridgerouter/endpoint"
	"gobridgerouter/token"
	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	routerAddr   = common.Address{0xAA}
	owner        = common.Address{0x0A}
	feeRecipient = common.Address{0x0F}
	alice        = common.Address{0xA1}
	bob          = common.Address{0xB0}
	tokenAddr    = common.Address{0x70}
	endpointA    = common.Address{0xE1}
	endpointB    = common.Address{0xE2}
)

type recordingEndpoint struct {
	mu      sync.Mutex
	notices []endpoint.DispatchNotice
}

func (e *recordingEndpoint) Dispatch(n endpoint.DispatchNotice) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notices = append(e.notices, n)
	return nil
}

func (e *recordingEndpoint) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.notices)
}

type fixture struct {
	rt     *Router
	ledger *token.Ledger
	ep     *recordingEndpoint
}

func newTestRouter(t *testing.T, feeBps uint64) *fixture {
	t.Helper()

	ledger := token.NewLedger()
	ep := &recordingEndpoint{}
	rt, err := New(Config{
		Address:      routerAddr,
		Owner:        owner,
		FeeRecipient: feeRecipient,
		FeeBps:       feeBps,
		Tokens:       token.Book{tokenAddr: ledger},
		Endpoints:    endpoint.Set{endpointA: ep, endpointB: ep},
	})
	require.NoError(t, err)
	return &fixture{rt: rt, ledger: ledger, ep: ep}
}

func (f *fixture) fund(t *testing.T, amount int64) {
	t.Helper()
	f.ledger.Mint(alice, big.NewInt(amount))
	require.NoError(t, f.ledger.Approve(alice, routerAddr, big.NewInt(amount)))
}

var submitSeq int64

// request builds a valid transfer request with a unique submission
// time so every call yields a fresh transfer id.
func request(amount int64) types.TransferRequest {
	return types.TransferRequest{
		Initiator:   alice,
		Token:       tokenAddr,
		Amount:      big.NewInt(amount),
		DestChain:   10,
		Recipient:   bob,
		Deadline:    time.Now().Unix() + 300,
		SubmittedAt: atomic.AddInt64(&submitSeq, 1),
	}
}

func (f *fixture) addRoute(t *testing.T, chain types.ChainID, ep common.Address, latency, fee uint64) int {
	t.Helper()
	index, err := f.rt.AddRoute(owner, chain, ep, 21000, latency, fee)
	require.NoError(t, err)
	return index
}

func tokenBook() token.Book {
	return token.Book{tokenAddr: token.NewLedger()}
}

func eventsOfType(bus *EventBus, evType string) []types.Event {
	var out []types.Event
	for _, ev := range bus.Log() {
		if ev.Type == evType {
			out = append(out, ev)
		}
	}
	return out
}
