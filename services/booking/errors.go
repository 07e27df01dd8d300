package booking

import "errors"

var (
	// ErrSlotTaken means the proposed slot was booked by someone else between
	// the proposal and the confirmation.
	ErrSlotTaken = errors.New("requested slot is no longer available")

	// ErrSlotInPast means the proposed slot's start has already passed.
	ErrSlotInPast = errors.New("requested slot is in the past")

	// ErrInvalidPayload means the confirmation payload is malformed.
	ErrInvalidPayload = errors.New("invalid confirmation payload")
)
