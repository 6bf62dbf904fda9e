package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/dto"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/response"
	"github.com/odroffice/odr-go/services"
)

type AssignmentHandler struct {
	Scheduler *services.SchedulerService
}

func NewAssignmentHandler(scheduler *services.SchedulerService) *AssignmentHandler {
	return &AssignmentHandler{Scheduler: scheduler}
}

// POST /admin/assignments/auto
func (h *AssignmentHandler) AutoAssign(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.AutoAssignDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	placed, err := h.Scheduler.AutoAssign(actor, input.Count)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AssignCountResponse{Message: "auto-assignment complete", Assigned: placed})
}

// POST /admin/assignments/manual
func (h *AssignmentHandler) ManualAssign(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.ManualAssignDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	placed, err := h.Scheduler.ManualAssign(actor, input.RequestIDs, input.AdminID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AssignCountResponse{Message: "requests assigned", Assigned: placed})
}

// POST /admin/assignments/unassign
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.UnassignDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	removed, err := h.Scheduler.Unassign(actor, input.RequestID, input.AdminID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request is not assigned to that admin"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "request unassigned"})
}

// GET /admin/progress
func (h *AssignmentHandler) MyProgress(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	progress, err := h.Scheduler.Progress(actor.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GET /admin/progress/all
func (h *AssignmentHandler) AdminsProgress(c *gin.Context) {
	progress, err := h.Scheduler.AdminsProgress()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
