package reservation

import "parking-reservation/internal/pkg/errs"

var (
	ErrMissingField     = errs.Mark(errs.New("required field is empty"), errs.ErrInvalidArgument)
	ErrInvalidBookingID = errs.Mark(errs.New("booking id is not a valid identifier"), errs.ErrInvalidArgument)
	ErrSlotHeld         = errs.Mark(errs.New("slot is currently held"), errs.ErrConflict)
	ErrBookingNotFound  = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrMirrorFailed     = errs.New("could not mirror hold into booking entry")
)
