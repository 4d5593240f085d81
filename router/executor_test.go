package router

import (
	"math/big"
	"testing"
	"time"

	"gobridgerouter/token"
	"gobridgerouter/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteHappyPath(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)
	f.addRoute(t, 10, endpointB, 50, 2)
	f.fund(t, 100000)

	rec, err := f.rt.Execute(request(100000))
	require.NoError(t, err)

	assert.Equal(t, "completed", rec.Status)
	assert.Equal(t, "1000", rec.Fee)
	assert.Equal(t, "99000", rec.NetAmount)
	assert.Equal(t, 0, rec.RouteIndex)
	assert.Equal(t, endpointA.Hex(), rec.Endpoint)

	// accounting: fee went out, the rest sits in custody approved to
	// the chosen endpoint
	assert.Equal(t, int64(0), f.ledger.BalanceOf(alice).Int64())
	assert.Equal(t, int64(1000), f.ledger.BalanceOf(feeRecipient).Int64())
	assert.Equal(t, int64(99000), f.ledger.BalanceOf(routerAddr).Int64())
	assert.Equal(t, int64(99000), f.ledger.Allowance(routerAddr, endpointA).Int64())

	// marked processed
	processed, err := f.rt.IsProcessed(common.HexToHash(rec.TransferId))
	require.NoError(t, err)
	assert.True(t, processed)

	// one transfer-initiated event with the net amount
	events := eventsOfType(f.rt.Events(), types.EventTransferInitiated)
	require.Len(t, events, 1)
	assert.Equal(t, rec.TransferId, events[0].TransferId)
	assert.Equal(t, "99000", events[0].Amount)
	assert.Equal(t, uint64(10), events[0].Chain)
	assert.Equal(t, bob.Hex(), events[0].Recipient)

	// fire-and-forget notice reaches the endpoint
	require.Eventually(t, func() bool { return f.ep.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestExecuteExpiredDeadline(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)
	f.fund(t, 1000)

	req := request(1000)
	req.Deadline = time.Now().Unix() - 1

	_, err := f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrTransferExpired)

	// rejected before any custody call
	assert.Equal(t, int64(1000), f.ledger.BalanceOf(alice).Int64())
	assert.Equal(t, int64(0), f.ledger.BalanceOf(routerAddr).Int64())
}

func TestExecuteInvalidAmount(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)

	req := request(0)
	_, err := f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	req = request(1000)
	req.Amount = big.NewInt(-5)
	_, err = f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	req = request(1000)
	req.Amount = nil
	_, err = f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestExecuteZeroRecipient(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)
	f.fund(t, 1000)

	req := request(1000)
	req.Recipient = common.Address{}

	_, err := f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestExecuteReplayRejected(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)
	f.fund(t, 200000)

	req := request(100000)
	_, err := f.rt.Execute(req)
	require.NoError(t, err)

	// identical canonical inputs: same id, second call must lose
	_, err = f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	// exactly one custody pull and one event happened
	assert.Equal(t, int64(100000), f.ledger.BalanceOf(alice).Int64())
	assert.Len(t, eventsOfType(f.rt.Events(), types.EventTransferInitiated), 1)

	// a fresh submission time yields a fresh id and succeeds
	req.SubmittedAt++
	_, err = f.rt.Execute(req)
	assert.NoError(t, err)
}

func TestExecuteCustodyFailureBurnsTransferId(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)
	// no funding: custody pull fails after the replay mark

	req := request(1000)
	_, err := f.rt.Execute(req)
	require.ErrorIs(t, err, token.ErrInsufficientAllowance)

	// the id is burned; retrying the same request now reports a replay
	f.fund(t, 1000)
	_, err = f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	// the failed run left a rejected record behind
	recs, err := f.rt.Records().FindAllByStatus("rejected")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Message, "custody transfer failed")

	// a fresh submission time works
	req.SubmittedAt++
	_, err = f.rt.Execute(req)
	assert.NoError(t, err)
}

func TestExecuteNoRoutes(t *testing.T) {
	f := newTestRouter(t, 100)
	f.fund(t, 1000)

	_, err := f.rt.Execute(request(1000))
	assert.ErrorIs(t, err, ErrNoRoutesAvailable)
}

func TestExecuteNoActiveRoutes(t *testing.T) {
	f := newTestRouter(t, 100)
	index := f.addRoute(t, 10, endpointA, 10, 5)
	_, err := f.rt.ToggleRoute(owner, 10, index)
	require.NoError(t, err)
	f.fund(t, 1000)

	_, err = f.rt.Execute(request(1000))
	assert.ErrorIs(t, err, ErrNoActiveRoutes)
}

func TestExecuteUnknownToken(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)

	req := request(1000)
	req.Token = common.Address{0x77}

	_, err := f.rt.Execute(req)
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestExecutePaused(t *testing.T) {
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)
	f.fund(t, 1000)

	require.NoError(t, f.rt.Pause(owner))
	_, err := f.rt.Execute(request(1000))
	assert.ErrorIs(t, err, ErrPaused)

	require.NoError(t, f.rt.Unpause(owner))
	_, err = f.rt.Execute(request(1000))
	assert.NoError(t, err)
}

func TestExecuteSelectsOnNetAmount(t *testing.T) {
	// fee deduction happens before route selection, so scoring sees
	// the dispatch amount
	f := newTestRouter(t, 100)
	f.addRoute(t, 10, endpointA, 10, 5)
	f.fund(t, 100000)

	rec, err := f.rt.Execute(request(100000))
	require.NoError(t, err)
	assert.Equal(t, "99000", rec.NetAmount)

	events := eventsOfType(f.rt.Events(), types.EventTransferInitiated)
	require.Len(t, events, 1)
	assert.Equal(t, "99000", events[0].Amount)
}
