package api

import (
	"net/http"

	resdto "parking-reservation/internal/handler/dto/response"
	"parking-reservation/internal/usecase/reconcile"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reconciler reconcile.Reconciler
}

func NewAdminHandler(reconciler reconcile.Reconciler) *AdminHandler {
	return &AdminHandler{reconciler: reconciler}
}

// @Summary Reconcile ledger and booking history
// @Description Runs one reconciliation pass and returns what it found
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /api/admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.reconciler.Run(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReport(report))
}
