package response

import (
	"time"

	"parking-reservation/internal/usecase/reconcile"
)

type OrphanHoldResponse struct {
	HoldID    string    `json:"holdId"`
	Slot      string    `json:"slot"`
	Username  string    `json:"username"`
	CarPlate  string    `json:"carPlate"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Released  bool      `json:"released"`
}

type OrphanBookingResponse struct {
	BookingID string    `json:"bookingId"`
	Username  string    `json:"username"`
	Slot      string    `json:"slot"`
	CarPlate  string    `json:"carPlate"`
	BookedAt  time.Time `json:"bookedAt"`
}

type ReconcileResponse struct {
	RanAt          time.Time               `json:"ranAt"`
	ActiveHolds    int                     `json:"activeHolds"`
	Bookings       int                     `json:"bookings"`
	Matched        int                     `json:"matched"`
	Released       int                     `json:"released"`
	OrphanHolds    []OrphanHoldResponse    `json:"orphanHolds"`
	OrphanBookings []OrphanBookingResponse `json:"orphanBookings"`
}

func FromReport(r *reconcile.Report) ReconcileResponse {
	resp := ReconcileResponse{
		RanAt:          r.RanAt,
		ActiveHolds:    r.ActiveHolds,
		Bookings:       r.Bookings,
		Matched:        r.Matched,
		Released:       r.Released,
		OrphanHolds:    make([]OrphanHoldResponse, len(r.OrphanHolds)),
		OrphanBookings: make([]OrphanBookingResponse, len(r.OrphanBookings)),
	}
	for i, h := range r.OrphanHolds {
		resp.OrphanHolds[i] = OrphanHoldResponse{
			HoldID:    h.HoldID.String(),
			Slot:      h.SlotID,
			Username:  h.HolderID,
			CarPlate:  h.ResourceTag,
			CreatedAt: h.CreatedAt,
			ExpiresAt: h.ExpiresAt,
			Released:  h.Released,
		}
	}
	for i, b := range r.OrphanBookings {
		resp.OrphanBookings[i] = OrphanBookingResponse{
			BookingID: b.BookingID.String(),
			Username:  b.HolderID,
			Slot:      b.SlotID,
			CarPlate:  b.ResourceTag,
			BookedAt:  b.BookedAt,
		}
	}
	return resp
}
