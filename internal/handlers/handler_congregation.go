package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
	"github.com/IgrejaViva/igreja_backend/internal/middleware"
)

// congregationHandler handles HTTP requests related to congregations.
type congregationHandler struct {
	congregationService portssvc.CongregationSvcFacade
}

func newCongregationHandler(cs portssvc.CongregationSvcFacade) *congregationHandler {
	return &congregationHandler{congregationService: cs}
}

// registerCongregationRoutes registers congregation administration routes.
func registerCongregationRoutes(rg *gin.RouterGroup, congregationService portssvc.CongregationSvcFacade) {
	h := newCongregationHandler(congregationService)

	congregations := rg.Group("/congregations")
	{
		congregations.POST("", h.createCongregation)
		congregations.GET("", h.listCongregations)
		congregations.GET("/:congregation_id", h.getCongregation)
		congregations.PUT("/:congregation_id", h.updateCongregation)
		congregations.POST("/:congregation_id/pastors", h.assignPastor)
		congregations.DELETE("/:congregation_id/pastors/:user_id", h.removePastor)
	}
}

// createCongregation godoc
// @Summary Create a congregation
// @Tags congregations
// @Accept json
// @Produce json
// @Param congregation body dto.CreateCongregationRequest true "Congregation details"
// @Success 201 {object} dto.CongregationResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /congregations [post]
func (h *congregationHandler) createCongregation(c *gin.Context) {
	var req dto.CreateCongregationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	congregation, err := h.congregationService.CreateCongregation(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create congregation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCongregationResponse(congregation))
}

// listCongregations godoc
// @Summary List congregations
// @Tags congregations
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListCongregationsResponse
// @Security BearerAuth
// @Router /congregations [get]
func (h *congregationHandler) listCongregations(c *gin.Context) {
	var params dto.ListCongregationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	congregations, err := h.congregationService.ListCongregations(c.Request.Context(), actorUserID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list congregations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCongregationsResponse(congregations))
}

// getCongregation godoc
// @Summary Get a congregation
// @Tags congregations
// @Produce json
// @Param congregation_id path string true "Congregation ID"
// @Success 200 {object} dto.CongregationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /congregations/{congregation_id} [get]
func (h *congregationHandler) getCongregation(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	congregation, err := h.congregationService.GetCongregationByID(c.Request.Context(), c.Param("congregation_id"), actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to get congregation")
		return
	}
	c.JSON(http.StatusOK, dto.ToCongregationResponse(congregation))
}

// updateCongregation godoc
// @Summary Update a congregation
// @Tags congregations
// @Accept json
// @Produce json
// @Param congregation_id path string true "Congregation ID"
// @Param congregation body dto.UpdateCongregationRequest true "Fields to update"
// @Success 200 {object} dto.CongregationResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /congregations/{congregation_id} [put]
func (h *congregationHandler) updateCongregation(c *gin.Context) {
	var req dto.UpdateCongregationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	congregation, err := h.congregationService.UpdateCongregation(c.Request.Context(), c.Param("congregation_id"), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update congregation")
		return
	}
	c.JSON(http.StatusOK, dto.ToCongregationResponse(congregation))
}

// assignPastor godoc
// @Summary Assign a pastor
// @Description Links a pastor to a congregation. Admin only.
// @Tags congregations
// @Accept json
// @Produce json
// @Param congregation_id path string true "Congregation ID"
// @Param assignment body dto.AssignPastorRequest true "Pastor user ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "User is not a pastor"
// @Failure 409 {object} ErrorResponse "Already assigned"
// @Security BearerAuth
// @Router /congregations/{congregation_id}/pastors [post]
func (h *congregationHandler) assignPastor(c *gin.Context) {
	var req dto.AssignPastorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.congregationService.AssignPastor(c.Request.Context(), c.Param("congregation_id"), req.UserID, actorUserID); err != nil {
		respondWithError(c, err, "Failed to assign pastor")
		return
	}
	c.Status(http.StatusNoContent)
}

// removePastor godoc
// @Summary Remove a pastor
// @Description Unlinks a pastor from a congregation. Admin only.
// @Tags congregations
// @Produce json
// @Param congregation_id path string true "Congregation ID"
// @Param user_id path string true "Pastor user ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /congregations/{congregation_id}/pastors/{user_id} [delete]
func (h *congregationHandler) removePastor(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.congregationService.RemovePastor(c.Request.Context(), c.Param("congregation_id"), c.Param("user_id"), actorUserID); err != nil {
		respondWithError(c, err, "Failed to remove pastor")
		return
	}
	c.Status(http.StatusNoContent)
}
