package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
	"github.com/IgrejaViva/igreja_backend/internal/middleware"
)

// reconciliationHandler handles HTTP requests related to monthly reconciliations.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// registerReconciliationRoutes registers routes for monthly reconciliations.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	reconciliations := rg.Group("/reconciliations")
	{
		reconciliations.POST("", h.createReconciliation)
		reconciliations.GET("", h.listReconciliations)
		reconciliations.GET("/:reconciliation_id", h.getReconciliation)
		reconciliations.PUT("/:reconciliation_id", h.updateReconciliation)
		reconciliations.POST("/:reconciliation_id/review", h.reviewReconciliation)
	}
}

// createReconciliation godoc
// @Summary Submit a monthly reconciliation
// @Description Submits a congregation's monthly income report. Totals are derived server-side and the status always starts PENDING.
// @Tags reconciliations
// @Accept json
// @Produce json
// @Param reconciliation body dto.CreateReconciliationRequest true "Reconciliation details"
// @Success 201 {object} dto.ReconciliationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Month already submitted for this congregation"
// @Security BearerAuth
// @Router /reconciliations [post]
func (h *reconciliationHandler) createReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reconciliation, err := h.reconciliationService.CreateReconciliation(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create reconciliation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReconciliationResponse(reconciliation))
}

// listReconciliations godoc
// @Summary List reconciliations
// @Description Lists reconciliations visible to the caller, optionally filtered by congregation, status and month.
// @Tags reconciliations
// @Produce json
// @Param congregationID query string false "Congregation filter"
// @Param status query string false "Status filter"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListReconciliationsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reconciliations [get]
func (h *reconciliationHandler) listReconciliations(c *gin.Context) {
	var params dto.ListReconciliationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reconciliations, err := h.reconciliationService.ListReconciliations(c.Request.Context(), actorUserID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list reconciliations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReconciliationsResponse(reconciliations))
}

// getReconciliation godoc
// @Summary Get a reconciliation
// @Description Retrieves a single reconciliation.
// @Tags reconciliations
// @Produce json
// @Param reconciliation_id path string true "Reconciliation ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reconciliations/{reconciliation_id} [get]
func (h *reconciliationHandler) getReconciliation(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reconciliation, err := h.reconciliationService.GetReconciliationByID(c.Request.Context(), c.Param("reconciliation_id"), actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to get reconciliation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(reconciliation))
}

// updateReconciliation godoc
// @Summary Update a pending reconciliation
// @Description Rewrites the subtotals of a still-pending reconciliation; totals are recomputed server-side.
// @Tags reconciliations
// @Accept json
// @Produce json
// @Param reconciliation_id path string true "Reconciliation ID"
// @Param reconciliation body dto.UpdateReconciliationRequest true "New subtotals"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 409 {object} ErrorResponse "Reconciliation is no longer pending"
// @Security BearerAuth
// @Router /reconciliations/{reconciliation_id} [put]
func (h *reconciliationHandler) updateReconciliation(c *gin.Context) {
	var req dto.UpdateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reconciliation, err := h.reconciliationService.UpdateReconciliation(c.Request.Context(), c.Param("reconciliation_id"), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update reconciliation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(reconciliation))
}

// reviewReconciliation godoc
// @Summary Review a reconciliation
// @Description Applies the admin decision, moving a pending reconciliation to APPROVED or REJECTED.
// @Tags reconciliations
// @Accept json
// @Produce json
// @Param reconciliation_id path string true "Reconciliation ID"
// @Param review body dto.ReviewReconciliationRequest true "Decision"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already reviewed"
// @Security BearerAuth
// @Router /reconciliations/{reconciliation_id}/review [post]
func (h *reconciliationHandler) reviewReconciliation(c *gin.Context) {
	var req dto.ReviewReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Decision must be APPROVED or REJECTED"})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reconciliation, err := h.reconciliationService.ReviewReconciliation(c.Request.Context(), c.Param("reconciliation_id"), req.Status, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to review reconciliation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(reconciliation))
}
