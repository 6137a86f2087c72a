package bid

import (
	"github.com/x-xyz/swipebid/base/ctx"
	"github.com/x-xyz/swipebid/domain"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// Modal tracks one bid attempt on one listing.
//
//	idle -> submitting -> confirmed
//	     |             -> failed -> idle (acknowledge or retry)
//	     +-> failed (input error, Field set)
type Modal struct {
	TokenId domain.TokenId `json:"tokenId"`
	Bidder  domain.Address `json:"bidder"`
	Amount  string         `json:"amount,omitempty"`
	State   State          `json:"state"`
	Field   string         `json:"field,omitempty"`
	Error   string         `json:"error,omitempty"`
	TxHash  domain.TxHash  `json:"txHash,omitempty"`
}

func NewModal(tokenId domain.TokenId, bidder domain.Address) *Modal {
	return &Modal{
		TokenId: tokenId,
		Bidder:  bidder,
		State:   StateIdle,
	}
}

// Reject fails the modal on an input error; nothing was sent
func (m *Modal) Reject(amount string, err *FieldError) error {
	if m.State != StateIdle {
		return domain.ErrInvalidTransition
	}
	m.State = StateFailed
	m.Amount = amount
	m.Field = err.Field
	m.Error = err.Message
	m.TxHash = ""
	return nil
}

func (m *Modal) Submit(amount string) error {
	if m.State != StateIdle {
		return domain.ErrInvalidTransition
	}
	m.State = StateSubmitting
	m.Amount = amount
	m.Field = ""
	m.Error = ""
	m.TxHash = ""
	return nil
}

// Sent records the hash of the in-flight transaction
func (m *Modal) Sent(txHash domain.TxHash) error {
	if m.State != StateSubmitting {
		return domain.ErrInvalidTransition
	}
	m.TxHash = txHash
	return nil
}

func (m *Modal) Confirm() error {
	if m.State != StateSubmitting {
		return domain.ErrInvalidTransition
	}
	m.State = StateConfirmed
	return nil
}

func (m *Modal) Fail(err error) error {
	if m.State != StateSubmitting {
		return domain.ErrInvalidTransition
	}
	m.State = StateFailed
	m.Error = err.Error()
	return nil
}

// Acknowledge dismisses a failure so the user can retry
func (m *Modal) Acknowledge() error {
	if m.State != StateFailed {
		return domain.ErrInvalidTransition
	}
	m.State = StateIdle
	m.Field = ""
	m.Error = ""
	m.TxHash = ""
	return nil
}

// Done is true once the modal can be closed
func (m *Modal) Done() bool {
	return m.State == StateConfirmed
}

type PlaceParams struct {
	TokenId   domain.TokenId `json:"tokenId" validate:"required,numeric"`
	Amount    string         `json:"amount"`
	SessionId string         `json:"sessionId"`
}

type Usecase interface {
	// Place validates the amount against the latest listing state and, when
	// it passes, sends placeBid and waits for the receipt.
	Place(c ctx.Ctx, p PlaceParams) (*Modal, error)
	Get(c ctx.Ctx, tokenId domain.TokenId) (*Modal, error)
	Acknowledge(c ctx.Ctx, tokenId domain.TokenId) (*Modal, error)
}
