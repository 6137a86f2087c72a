package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the same action is still in flight
	ErrConflict = errors.New("Your request is already in progress")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrUnsupportedSchema   = errors.New("Unsupported schema")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// wallet
	ErrWalletNotConnected = errors.New("connect wallet")

	// contract
	ErrInvalidListing = errors.New("invalid listing record")
	ErrTxFailed       = errors.New("transaction failed")
	ErrTxReverted     = errors.New("transaction reverted")
	ErrTxTimeout      = errors.New("transaction not resolved in time")

	// bidding
	ErrInvalidBid         = errors.New("invalid bid")
	ErrInvalidTransition  = errors.New("invalid bid state transition")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoListings         = errors.New("no active listings")
	ErrUnsupportedImage   = errors.New("unsupported image type")
	ErrImageTooLarge      = errors.New("image too large")
	ErrMetadataIncomplete = errors.New("metadata has no image")
)
