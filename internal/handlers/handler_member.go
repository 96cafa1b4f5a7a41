package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
	"github.com/IgrejaViva/igreja_backend/internal/middleware"
)

// memberHandler handles HTTP requests related to congregation members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:member_id", h.getMember)
		members.PUT("/:member_id", h.updateMember)
		members.DELETE("/:member_id", h.deactivateMember)
	}
}

// createMember godoc
// @Summary Register a member
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members of a congregation
// @Tags members
// @Produce json
// @Param congregationID query string true "Congregation ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), actorUserID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param member_id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{member_id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.memberService.GetMemberByID(c.Request.Context(), c.Param("member_id"), actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to get member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param member_id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{member_id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("member_id"), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deactivateMember godoc
// @Summary Deactivate a member
// @Description Soft-deletes a membership record.
// @Tags members
// @Produce json
// @Param member_id path string true "Member ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{member_id} [delete]
func (h *memberHandler) deactivateMember(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.memberService.DeactivateMember(c.Request.Context(), c.Param("member_id"), actorUserID); err != nil {
		respondWithError(c, err, "Failed to deactivate member")
		return
	}
	c.Status(http.StatusNoContent)
}
