package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/dto"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/models"
	"github.com/odroffice/odr-go/response"
	"github.com/odroffice/odr-go/services"
)

type RequestHandler struct {
	Status    *services.StatusService
	Scheduler *services.SchedulerService
}

func NewRequestHandler(status *services.StatusService, scheduler *services.SchedulerService) *RequestHandler {
	return &RequestHandler{Status: status, Scheduler: scheduler}
}

// GET /admin/requests?page=&limit=&search=&admin_id=
func (h *RequestHandler) ListRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var adminID *string
	if a := c.Query("admin_id"); a != "" {
		adminID = &a
	}

	result, err := h.Status.ListRequests(page, limit, search, adminID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"requests": result.Requests,
		"total":    result.Total,
		"page":     page,
		"limit":    limit,
	})
}

// GET /admin/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	detail, err := h.Status.RequestDetail(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PUT /admin/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.UpdateStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.Status.TransitionStatus(actor, c.Param("id"), models.RequestStatus(input.Status))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// DELETE /admin/requests/:id
func (h *RequestHandler) PurgeRequest(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	found, err := h.Status.PurgeRequest(actor, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "request not found"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "request purged"})
}

// GET /admin/my-requests
func (h *RequestHandler) MyRequests(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	requests, err := h.Scheduler.RequestsForAdmin(actor.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GET /admin/requests/unassigned?limit=
func (h *RequestHandler) Unassigned(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	requests, err := h.Scheduler.ListUnassigned(limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
