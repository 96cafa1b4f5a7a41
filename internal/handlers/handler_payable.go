package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
	"github.com/IgrejaViva/igreja_backend/internal/middleware"
)

// payableHandler handles HTTP requests related to payables.
type payableHandler struct {
	payableService portssvc.PayableSvcFacade
}

func newPayableHandler(ps portssvc.PayableSvcFacade) *payableHandler {
	return &payableHandler{payableService: ps}
}

// registerPayableRoutes registers routes for the payable approval chain.
func registerPayableRoutes(rg *gin.RouterGroup, payableService portssvc.PayableSvcFacade) {
	h := newPayableHandler(payableService)

	payables := rg.Group("/payables")
	{
		payables.POST("", h.createPayable)
		payables.GET("", h.listPayables)
		payables.GET("/:payable_id", h.getPayable)
		payables.POST("/:payable_id/approve", h.approvePayable)
		payables.POST("/:payable_id/reject", h.rejectPayable)
		payables.POST("/:payable_id/pay", h.markPayablePaid)
	}
}

// createPayable godoc
// @Summary Create a payable
// @Description Creates a new payable in the first pending stage of the approval chain.
// @Tags payables
// @Accept json
// @Produce json
// @Param payable body dto.CreatePayableRequest true "Payable details"
// @Success 201 {object} dto.PayableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables [post]
func (h *payableHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, err := h.payableService.CreatePayable(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create payable")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayableResponse(payable))
}

// listPayables godoc
// @Summary List payables
// @Description Lists payables visible to the caller, optionally filtered by status and congregation.
// @Tags payables
// @Produce json
// @Param status query string false "Exact status or a bucket (NEW, PENDING, AUTHORIZE)"
// @Param congregationID query string false "Congregation filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListPayablesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables [get]
func (h *payableHandler) listPayables(c *gin.Context) {
	var params dto.ListPayablesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payables, err := h.payableService.ListPayables(c.Request.Context(), actorUserID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list payables")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPayablesResponse(payables))
}

// getPayable godoc
// @Summary Get a payable
// @Description Retrieves a payable with its full approval history.
// @Tags payables
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Success 200 {object} dto.PayableDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{payable_id} [get]
func (h *payableHandler) getPayable(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, history, err := h.payableService.GetPayableByID(c.Request.Context(), c.Param("payable_id"), actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to get payable")
		return
	}

	historyRes := make([]dto.ApprovalRecordResponse, len(history))
	for i := range history {
		historyRes[i] = dto.ToApprovalRecordResponse(history[i])
	}
	c.JSON(http.StatusOK, dto.PayableDetailResponse{
		Payable: dto.ToPayableResponse(payable),
		History: historyRes,
	})
}

// approvePayable godoc
// @Summary Approve a payable
// @Description Advances a pending payable one step along the approval chain. The required approval level is inferred from the current status.
// @Tags payables
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payable changed state concurrently"
// @Security BearerAuth
// @Router /payables/{payable_id}/approve [post]
func (h *payableHandler) approvePayable(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, err := h.payableService.ApprovePayable(c.Request.Context(), c.Param("payable_id"), actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to approve payable")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// rejectPayable godoc
// @Summary Reject a payable
// @Description Terminates a pending payable with a mandatory reason. Rejection is final.
// @Tags payables
// @Accept json
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Param rejection body dto.RejectPayableRequest true "Rejection reason"
// @Success 200 {object} dto.PayableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{payable_id}/reject [post]
func (h *payableHandler) rejectPayable(c *gin.Context) {
	var req dto.RejectPayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rejection reason is required"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, err := h.payableService.RejectPayable(c.Request.Context(), c.Param("payable_id"), actorUserID, req.Reason)
	if err != nil {
		respondWithError(c, err, "Failed to reject payable")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// markPayablePaid godoc
// @Summary Pay a payable
// @Description Settles a fully approved payable.
// @Tags payables
// @Produce json
// @Param payable_id path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{payable_id}/pay [post]
func (h *payableHandler) markPayablePaid(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, err := h.payableService.MarkPayablePaid(c.Request.Context(), c.Param("payable_id"), actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to mark payable paid")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}
