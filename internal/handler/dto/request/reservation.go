package request

import "parking-reservation/internal/domain/reservation"

// ReserveSlotRequest keeps the field names existing clients send.
// Presence is checked by the domain so every missing field is reported.
type ReserveSlotRequest struct {
	Slot     string `json:"slot" example:"A1"`
	Username string `json:"username" example:"alice"`
	CarPlate string `json:"carPlate" example:"KA01AB1234"`
	Duration string `json:"duration" example:"2 hrs"`
}

func (r ReserveSlotRequest) ToHoldRequest() reservation.HoldRequest {
	return reservation.HoldRequest{
		SlotID:        r.Slot,
		HolderID:      r.Username,
		ResourceTag:   r.CarPlate,
		DurationLabel: r.Duration,
	}
}

type SetTotalSlotsRequest struct {
	TotalSlots int `json:"totalSlots" example:"6"`
}
