//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parking-reservation/internal/handler/api"
	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/handler/middleware"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/reconcile"
	"parking-reservation/tests/common/httptest"
	reconcilemock "parking-reservation/tests/mock/reconcile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockReconciler *reconcilemock.MockReconciler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReconciler = reconcilemock.NewMockReconciler(s.mockCtrl)
	h := api.NewAdminHandler(s.mockReconciler)
	s.router.POST("/api/admin/reconcile", h.Reconcile)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestReconcile() {
	url := "/api/admin/reconcile"

	s.Run("success: reports orphans", func() {
		holdID := uuid.New()
		s.mockReconciler.EXPECT().Run(gomock.Any()).Return(&reconcile.Report{
			RanAt:       t0,
			ActiveHolds: 2,
			Bookings:    1,
			Matched:     1,
			Released:    1,
			OrphanHolds: []reconcile.OrphanHold{{
				HoldID: holdID, SlotID: "B2", HolderID: "bob", ResourceTag: "BOB-1",
				CreatedAt: t0.Add(-10 * time.Minute), ExpiresAt: t0.Add(50 * time.Minute), Released: true,
			}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var resp resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(1, resp.Matched)
		s.Equal(1, resp.Released)
		s.Require().Len(resp.OrphanHolds, 1)
		s.Equal(holdID.String(), resp.OrphanHolds[0].HoldID)
		s.True(resp.OrphanHolds[0].Released)
		s.NotNil(resp.OrphanBookings)
		s.Empty(resp.OrphanBookings)
	})

	s.Run("error: storage unavailable", func() {
		s.mockReconciler.EXPECT().Run(gomock.Any()).
			Return(nil, errs.Mark(errors.New("conn refused"), errs.ErrUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}
