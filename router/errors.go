package router

import "errors"

// Every guard failure aborts the in-flight request synchronously.
// Nothing is retried internally; retry is a caller decision.
var (
	ErrInvalidRoute         = errors.New("route endpoint is the zero address")
	ErrRouteIndexOutOfRange = errors.New("route index out of range")
	ErrNoRoutesAvailable    = errors.New("no routes registered for chain")
	ErrNoActiveRoutes       = errors.New("no active routes for chain")
	ErrTransferExpired      = errors.New("transfer deadline passed")
	ErrInvalidAmount        = errors.New("transfer amount must be positive")
	ErrAlreadyProcessed     = errors.New("transfer already processed")
	ErrUnauthorizedEndpoint = errors.New("endpoint not authorized")
	ErrFeeExceedsCeiling    = errors.New("fee rate exceeds ceiling")
	ErrInvalidRecipient     = errors.New("recipient is the zero address")
	ErrInvalidFeeRecipient  = errors.New("fee recipient is the zero address")
	ErrPaused               = errors.New("router is paused")
	ErrNotOwner             = errors.New("caller does not hold the owner capability")
	ErrUnknownToken         = errors.New("no custody backend for token")
)
