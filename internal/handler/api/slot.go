package api

import (
	"net/http"

	reqdto "parking-reservation/internal/handler/dto/request"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	reservations     commands.ReservationCommands
	capacity         commands.CapacityCommands
	reservationQuery queries.ReservationQueries
	capacityQuery    queries.CapacityQueries
}

func NewSlotHandler(
	reservations commands.ReservationCommands,
	capacity commands.CapacityCommands,
	reservationQuery queries.ReservationQueries,
	capacityQuery queries.CapacityQueries,
) *SlotHandler {
	return &SlotHandler{
		reservations:     reservations,
		capacity:         capacity,
		reservationQuery: reservationQuery,
		capacityQuery:    capacityQuery,
	}
}

// @Summary Get total slots
// @Description Configured slot capacity, or the default when never set
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.TotalSlotsResponse
// @Failure 503 {object} httperr.Response
// @Router /api/slots/total-slots [get]
func (h *SlotHandler) GetTotalSlots(c *gin.Context) {
	view, err := h.capacityQuery.GetCapacity(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TotalSlotsResponse{TotalSlots: view.TotalSlots, Configured: view.Configured})
}

// @Summary Set total slots
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetTotalSlotsRequest true "New capacity"
// @Success 200 {object} resdto.TotalSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/slots/set-total-slots [post]
func (h *SlotHandler) SetTotalSlots(c *gin.Context) {
	var req reqdto.SetTotalSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	updated, err := h.capacity.SetCapacity(c.Request.Context(), req.TotalSlots)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TotalSlotsResponse{TotalSlots: updated.Total, Configured: true})
}

// @Summary List duration options
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.DurationsResponse
// @Router /api/slots/durations [get]
func (h *SlotHandler) ListDurations(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.DurationsResponse{Durations: h.reservationQuery.ListDurations()})
}

// @Summary Reserve a slot
// @Description Places an exclusive hold on the slot for the chosen duration.
// @Description After a 503 the outcome is unknown; check reserved-slots before retrying.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveSlotRequest true "Reservation"
// @Success 200 {object} resdto.ReserveSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/slots/reserve-slot [post]
func (h *SlotHandler) ReserveSlot(c *gin.Context) {
	var req reqdto.ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.reservations.Reserve(c.Request.Context(), req.ToHoldRequest())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReserveResult(result))
}

// @Summary List reserved slots
// @Description Slot ids with an unexpired hold
// @Tags slots
// @Produce json
// @Success 200 {object} resdto.ReservedSlotsResponse
// @Failure 503 {object} httperr.Response
// @Router /api/slots/reserved-slots [get]
func (h *SlotHandler) ListReservedSlots(c *gin.Context) {
	slots, err := h.reservationQuery.ListActiveSlots(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReservedSlotsResponse{ReservedSlots: slots})
}

// @Summary Cancel a booking
// @Tags slots
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/slots/cancel-booking/{bookingId} [delete]
func (h *SlotHandler) CancelBooking(c *gin.Context) {
	result, err := h.reservations.Cancel(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary List all bookings
// @Description Every holder's bookings with status resolved now
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/slots/all-bookings [get]
func (h *SlotHandler) ListAllBookings(c *gin.Context) {
	views, err := h.reservationQuery.ListAllBookings(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List a holder's bookings
// @Tags slots
// @Produce json
// @Param username path string true "Holder"
// @Success 200 {object} resdto.BookingsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/slots/bookings/{username} [get]
func (h *SlotHandler) ListBookingsFor(c *gin.Context) {
	views, err := h.reservationQuery.ListBookingsFor(c.Request.Context(), c.Param("username"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
