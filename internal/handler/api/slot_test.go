//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parking-reservation/internal/domain/capacity"
	"parking-reservation/internal/domain/duration"
	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/handler/api"
	reqdto "parking-reservation/internal/handler/dto/request"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/handler/middleware"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/commands"
	"parking-reservation/internal/usecase/queries"
	"parking-reservation/tests/common/httptest"
	"parking-reservation/tests/common/testutil"
	commandsmock "parking-reservation/tests/mock/commands"
	queriesmock "parking-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type SlotHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReservations *commandsmock.MockReservationCommands
	mockCapacity     *commandsmock.MockCapacityCommands
	mockQueries      *queriesmock.MockReservationQueries
	mockCapQueries   *queriesmock.MockCapacityQueries
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockCapacity = commandsmock.NewMockCapacityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockCapQueries = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	h := api.NewSlotHandler(s.mockReservations, s.mockCapacity, s.mockQueries, s.mockCapQueries)

	g := s.router.Group("/api/slots")
	g.GET("/total-slots", h.GetTotalSlots)
	g.POST("/set-total-slots", h.SetTotalSlots)
	g.GET("/durations", h.ListDurations)
	g.POST("/reserve-slot", h.ReserveSlot)
	g.GET("/reserved-slots", h.ListReservedSlots)
	g.DELETE("/cancel-booking/:bookingId", h.CancelBooking)
	g.GET("/all-bookings", h.ListAllBookings)
	g.GET("/bookings/:username", h.ListBookingsFor)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func validReserveBody() reqdto.ReserveSlotRequest {
	return reqdto.ReserveSlotRequest{Slot: "A1", Username: "alice", CarPlate: "XYZ-123", Duration: "1 hr"}
}

func (s *SlotHandlerTestSuite) TestReserveSlot() {
	url := "/api/slots/reserve-slot"
	body := validReserveBody()
	hold := reservation.Hold{
		ID: uuid.New(), SlotID: "A1", HolderID: "alice", ResourceTag: "XYZ-123", DurationLabel: "1 hr",
		CreatedAt: t0, ExpiresAt: t0.Add(time.Hour),
	}

	s.Run("success: returns hold and booking id", func() {
		bookingID := uuid.New()
		s.mockReservations.EXPECT().Reserve(gomock.Any(), body.ToHoldRequest()).
			Return(&commands.ReserveResult{Hold: hold, BookingID: &bookingID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var resp resdto.ReserveSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("A1", resp.Slot)
		s.Require().NotNil(resp.BookingID)
		s.Equal(bookingID.String(), *resp.BookingID)
		s.True(resp.ExpiresAt.Equal(t0.Add(time.Hour)))
	})

	s.Run("success: unmirrored hold omits booking id", func() {
		s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(&commands.ReserveResult{Hold: hold}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var resp resdto.ReserveSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Nil(resp.BookingID)
	})

	s.Run("missing fields reach the use case and map to 400", func() {
		for _, field := range []string{"slot", "username", "carPlate", "duration"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), body, testutil.Without(field))
				s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).
					Return(nil, errs.Wrapf(reservation.ErrMissingField, "missing %s", field)).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required field is empty")
			})
		}
	})

	s.Run("error: malformed JSON is 400", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"slot":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: wrong field type is 400", func() {
		requestMap := testutil.DtoMap(s.T(), body, testutil.Field("duration", 90))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidArgument)
	})

	s.Run("error: maps use case errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   httperr.Code
			msg    string
		}{
			{"conflict", errs.Wrap(reservation.ErrSlotHeld, "slot A1"), http.StatusConflict, httperr.CodeConflict, "slot is currently held"},
			{"unavailable", errs.Mark(errors.New("dial tcp"), errs.ErrUnavailable), http.StatusServiceUnavailable, httperr.CodeUnavailable, "Service temporarily unavailable"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockReservations.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				resp := httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
				s.Equal(tc.code, resp.Error.Code)
			})
		}
	})
}

func (s *SlotHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/api/slots/cancel-booking/" + id.String()

	s.Run("success", func() {
		s.mockReservations.EXPECT().Cancel(gomock.Any(), id.String()).
			Return(&commands.CancelResult{
				Entry:         reservation.BookingEntry{BookingID: id, SlotID: "A1"},
				ReleasedHolds: 1,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var resp resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(id.String(), resp.BookingID)
		s.EqualValues(1, resp.ReleasedHolds)
	})

	s.Run("error: maps use case errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   httperr.Code
		}{
			{"invalid id", errs.Wrap(reservation.ErrInvalidBookingID, "x"), http.StatusBadRequest, httperr.CodeInvalidArgument},
			{"not found", errs.Wrap(reservation.ErrBookingNotFound, "x"), http.StatusNotFound, httperr.CodeNotFound},
			{"unavailable", errs.Mark(errors.New("reset"), errs.ErrUnavailable), http.StatusServiceUnavailable, httperr.CodeUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockReservations.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *SlotHandlerTestSuite) TestCapacity() {
	s.Run("get returns default when unset", func() {
		s.mockCapQueries.EXPECT().GetCapacity(gomock.Any()).
			Return(&queries.CapacityView{TotalSlots: capacity.DefaultTotalSlots}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/total-slots", nil, "")

		var resp resdto.TotalSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(4, resp.TotalSlots)
		s.False(resp.Configured)
	})

	s.Run("set stores the new total", func() {
		s.mockCapacity.EXPECT().SetCapacity(gomock.Any(), 25).
			Return(capacity.SlotCapacity{Total: 25}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/slots/set-total-slots",
			reqdto.SetTotalSlotsRequest{TotalSlots: 25}, "")

		var resp resdto.TotalSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(25, resp.TotalSlots)
	})

	s.Run("set rejects invalid total", func() {
		s.mockCapacity.EXPECT().SetCapacity(gomock.Any(), 0).
			Return(capacity.SlotCapacity{}, capacity.ErrInvalidTotalSlots).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/slots/set-total-slots",
			reqdto.SetTotalSlotsRequest{TotalSlots: 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SlotHandlerTestSuite) TestQueries() {
	s.Run("reserved slots", func() {
		s.mockQueries.EXPECT().ListActiveSlots(gomock.Any()).Return([]string{"A1", "B2"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/reserved-slots", nil, "")

		var resp resdto.ReservedSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal([]string{"A1", "B2"}, resp.ReservedSlots)
	})

	s.Run("durations", func() {
		s.mockQueries.EXPECT().ListDurations().Return(duration.Options()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/durations", nil, "")

		var resp resdto.DurationsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp.Durations, 6)
		s.Equal("30 min", resp.Durations[0].Label)
	})

	s.Run("bookings for holder", func() {
		view := queries.BookingView{
			BookingID: uuid.New(), HolderID: "alice", SlotID: "A1", ResourceTag: "XYZ-123",
			DurationLabel: "1 hr", BookedAt: t0, EndsAt: t0.Add(time.Hour), Status: reservation.StatusActive,
		}
		s.mockQueries.EXPECT().ListBookingsFor(gomock.Any(), "alice").Return([]queries.BookingView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/bookings/alice", nil, "")

		var resp resdto.BookingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp.Bookings, 1)
		s.Equal("Active", resp.Bookings[0].Status)
		s.Equal("XYZ-123", resp.Bookings[0].CarPlate)
	})

	s.Run("all bookings unavailable", func() {
		s.mockQueries.EXPECT().ListAllBookings(gomock.Any()).
			Return(nil, errs.Mark(errors.New("down"), errs.ErrUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/all-bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
