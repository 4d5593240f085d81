package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gobridgerouter/router"
	"gobridgerouter/token"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	routerAddr = common.Address{0xAA}
	owner      = common.Address{0x0A}
	feeSink    = common.Address{0x0F}
	alice      = common.Address{0xA1}
	bob        = common.Address{0xB0}
	tokenAddr  = common.Address{0x70}
	endpointA  = common.Address{0xE1}
)

func newTestServer(t *testing.T) (*httptest.Server, *token.Ledger) {
	t.Helper()

	ledger := token.NewLedger()
	rt, err := router.New(router.Config{
		Address:      routerAddr,
		Owner:        owner,
		FeeRecipient: feeSink,
		FeeBps:       100,
		Tokens:       token.Book{tokenAddr: ledger},
	})
	require.NoError(t, err)

	_, err = rt.AddRoute(owner, 10, endpointA, 21000, 10, 5)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/state", State(rt))
	r.Get("/routes/{chain}", GetRoutes(rt))
	r.Get("/processed/{id}", GetProcessed(rt))
	r.Get("/balance/{token}", Balance(rt))
	r.Post("/submit", SubmitTransfer(rt))
	r.Post("/admin/fee", SetFeeRate(rt))
	r.Post("/admin/route/toggle", ToggleRoute(rt))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, ledger
}

func submitBody(amount string, deadline, submittedAt int64) []byte {
	body, _ := json.Marshal(&TransferSubmitRequest{
		Initiator:   alice.Hex(),
		Token:       tokenAddr.Hex(),
		Amount:      amount,
		DestChain:   10,
		Recipient:   bob.Hex(),
		Deadline:    deadline,
		SubmittedAt: submittedAt,
	})
	return body
}

func TestSubmitTransferHandler(t *testing.T) {
	srv, ledger := newTestServer(t)
	ledger.Mint(alice, big.NewInt(100000))
	require.NoError(t, ledger.Approve(alice, routerAddr, big.NewInt(100000)))

	deadline := time.Now().Unix() + 300
	resp, err := http.Post(srv.URL+"/submit", "application/json", bytes.NewReader(submitBody("100000", deadline, 1)))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out APISubmitResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "1000", out.Fee)
	assert.Equal(t, "99000", out.NetAmount)
	assert.Equal(t, endpointA.Hex(), out.Endpoint)

	// processed query now reports the id
	resp2, err := http.Get(srv.URL + "/processed/" + out.TransferId)
	require.NoError(t, err)
	defer resp2.Body.Close()
	var proc APIProcessedResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&proc))
	assert.True(t, proc.Processed)
}

func TestSubmitTransferHandlerDuplicate(t *testing.T) {
	srv, ledger := newTestServer(t)
	ledger.Mint(alice, big.NewInt(200000))
	require.NoError(t, ledger.Approve(alice, routerAddr, big.NewInt(200000)))

	deadline := time.Now().Unix() + 300
	body := submitBody("1000", deadline, 7)

	resp, err := http.Post(srv.URL+"/submit", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/submit", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSubmitTransferHandlerExpired(t *testing.T) {
	srv, ledger := newTestServer(t)
	ledger.Mint(alice, big.NewInt(1000))
	require.NoError(t, ledger.Approve(alice, routerAddr, big.NewInt(1000)))

	resp, err := http.Post(srv.URL+"/submit", "application/json", bytes.NewReader(submitBody("1000", time.Now().Unix()-1, 8)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// no custody happened
	assert.Equal(t, int64(1000), ledger.BalanceOf(alice).Int64())
}

func TestSubmitTransferHandlerBadAddress(t *testing.T) {
	srv, _ := newTestServer(t)

	body, _ := json.Marshal(&TransferSubmitRequest{
		Initiator: "not-an-address",
		Token:     tokenAddr.Hex(),
		Amount:    "1000",
		DestChain: 10,
		Recipient: bob.Hex(),
		Deadline:  time.Now().Unix() + 300,
	})
	resp, err := http.Post(srv.URL+"/submit", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "initiator", out.Field)
}

func TestAdminFeeHandlerCapability(t *testing.T) {
	srv, _ := newTestServer(t)

	body, _ := json.Marshal(&SetFeeRateRequest{FeeBps: 50})

	// missing capability header
	resp, err := http.Post(srv.URL+"/admin/fee", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// wrong capability holder
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/admin/fee", bytes.NewReader(body))
	req.Header.Set("X-Router-Key", alice.Hex())
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// owner succeeds
	req, _ = http.NewRequest(http.MethodPost, srv.URL+"/admin/fee", bytes.NewReader(body))
	req.Header.Set("X-Router-Key", owner.Hex())
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// above ceiling is a client error, never clamped
	body, _ = json.Marshal(&SetFeeRateRequest{FeeBps: 101})
	req, _ = http.NewRequest(http.MethodPost, srv.URL+"/admin/fee", bytes.NewReader(body))
	req.Header.Set("X-Router-Key", owner.Hex())
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetRoutesHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(fmt.Sprintf("%s/routes/%d", srv.URL, 10))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var routes []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&routes))
	assert.Len(t, routes, 1)
}

func TestToggleRouteHandlerOutOfRange(t *testing.T) {
	srv, _ := newTestServer(t)

	body, _ := json.Marshal(&ToggleRouteRequest{Chain: 10, Index: 5})
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/admin/route/toggle", bytes.NewReader(body))
	req.Header.Set("X-Router-Key", owner.Hex())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
