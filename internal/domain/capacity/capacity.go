package capacity

import (
	"math"

	"parking-reservation/internal/pkg/errs"
)

const DefaultTotalSlots = 4

var ErrInvalidTotalSlots = errs.Mark(errs.New("totalSlots must be a positive 32-bit integer"), errs.ErrInvalidArgument)

// SlotCapacity is the number of allocatable slots. Slots are numbered 1..Total
// by clients; the engine itself never validates slot identifiers against it.
type SlotCapacity struct {
	Total int
}

func New(total int) (SlotCapacity, error) {
	// stored as int4
	if total < 1 || total > math.MaxInt32 {
		return SlotCapacity{}, ErrInvalidTotalSlots
	}
	return SlotCapacity{Total: total}, nil
}

func Default() SlotCapacity {
	return SlotCapacity{Total: DefaultTotalSlots}
}
