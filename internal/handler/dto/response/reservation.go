package response

import (
	"time"

	"parking-reservation/internal/domain/duration"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ReserveSlotResponse struct {
	Message    string    `json:"message"`
	BookingID  *string   `json:"bookingId,omitempty"`
	Slot       string    `json:"slot"`
	Username   string    `json:"username"`
	CarPlate   string    `json:"carPlate"`
	Duration   string    `json:"duration"`
	ReservedAt time.Time `json:"reservedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func FromReserveResult(r *commands.ReserveResult) ReserveSlotResponse {
	resp := ReserveSlotResponse{
		Message:    "Slot reserved successfully!",
		Slot:       r.Hold.SlotID,
		Username:   r.Hold.HolderID,
		CarPlate:   r.Hold.ResourceTag,
		Duration:   r.Hold.DurationLabel,
		ReservedAt: r.Hold.CreatedAt,
		ExpiresAt:  r.Hold.ExpiresAt,
	}
	if r.Mirrored() {
		id := r.BookingID.String()
		resp.BookingID = &id
	}
	return resp
}

type CancelBookingResponse struct {
	Message       string `json:"message"`
	BookingID     string `json:"bookingId"`
	Slot          string `json:"slot"`
	ReleasedHolds int64  `json:"releasedHolds"`
}

func FromCancelResult(r *commands.CancelResult) CancelBookingResponse {
	return CancelBookingResponse{
		Message:       "Booking cancelled successfully",
		BookingID:     r.Entry.BookingID.String(),
		Slot:          r.Entry.SlotID,
		ReleasedHolds: r.ReleasedHolds,
	}
}

type ReservedSlotsResponse struct {
	ReservedSlots []string `json:"reservedSlots"`
}

type BookingResponse struct {
	BookingID string    `json:"bookingId"`
	Username  string    `json:"username"`
	Slot      string    `json:"slot"`
	CarPlate  string    `json:"carPlate"`
	Duration  string    `json:"duration"`
	BookedAt  time.Time `json:"bookedAt"`
	EndsAt    time.Time `json:"endsAt"`
	Status    string    `json:"status" example:"Active"`
}

type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func FromBookingViews(views []queries.BookingView) BookingsResponse {
	out := make([]BookingResponse, len(views))
	for i, v := range views {
		out[i] = BookingResponse{
			BookingID: v.BookingID.String(),
			Username:  v.HolderID,
			Slot:      v.SlotID,
			CarPlate:  v.ResourceTag,
			Duration:  v.DurationLabel,
			BookedAt:  v.BookedAt,
			EndsAt:    v.EndsAt,
			Status:    string(v.Status),
		}
	}
	return BookingsResponse{Bookings: out}
}

type TotalSlotsResponse struct {
	TotalSlots int  `json:"totalSlots"`
	Configured bool `json:"configured"`
}

type DurationsResponse struct {
	Durations []duration.Option `json:"durations"`
}
