package main

import (
	"errors"

	"github.com/x-xyz/swipebid/domain"
)

// message turns the errors a user can act on into one line
func message(err error) string {
	switch {
	case errors.Is(err, domain.ErrWalletNotConnected):
		return "connect wallet: set wallet.privateKey or SWIPEBID_WALLET_PRIVATEKEY"
	case errors.Is(err, domain.ErrSessionNotFound):
		return "session expired, run explore again"
	case errors.Is(err, domain.ErrNotFound):
		return "listing not found or no longer active"
	case errors.Is(err, domain.ErrConflict):
		return "a transaction for this listing is already in flight"
	}
	return err.Error()
}
