package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gobridgerouter/router"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
)

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func responseError(w http.ResponseWriter, field, message string, code int) {
	responseJSON(w, &APIResponse{
		Status:  "error",
		Field:   field,
		Message: message,
	}, code)
}

// parseAddress validates a hex address the way the bridge frontends
// submit them (checksummed or lowercase). The raw string is validated,
// not a re-encoding of it, so garbage cannot slip through as the zero
// address.
func parseAddress(s string) (common.Address, error) {
	if err := ethav.Validate(s); err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(s), nil
}

// adminCaller resolves the capability holder from the X-Router-Key
// header; the router itself decides whether that address is the owner.
func adminCaller(r *http.Request) (common.Address, error) {
	return parseAddress(r.Header.Get("X-Router-Key"))
}

// statusForError maps the router error taxonomy to HTTP codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, router.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, router.ErrAlreadyProcessed):
		return http.StatusConflict
	case errors.Is(err, router.ErrPaused):
		return http.StatusServiceUnavailable
	case errors.Is(err, router.ErrNoRoutesAvailable),
		errors.Is(err, router.ErrNoActiveRoutes):
		return http.StatusNotFound
	case errors.Is(err, router.ErrTransferExpired),
		errors.Is(err, router.ErrInvalidAmount),
		errors.Is(err, router.ErrInvalidRecipient),
		errors.Is(err, router.ErrInvalidFeeRecipient),
		errors.Is(err, router.ErrInvalidRoute),
		errors.Is(err, router.ErrRouteIndexOutOfRange),
		errors.Is(err, router.ErrFeeExceedsCeiling),
		errors.Is(err, router.ErrUnknownToken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
