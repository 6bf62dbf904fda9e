package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/dto"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/response"
	"github.com/odroffice/odr-go/services"
)

type AdminHandler struct {
	Admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{Admin: admin}
}

// GET /admin/admins
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.Admin.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// POST /admin/admins
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.AddAdminDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Admin.Add(actor, input.Email, input.Role, nil); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "admin added"})
}

// PUT /admin/admins/:email/role
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.UpdateAdminRoleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	found, err := h.Admin.UpdateRole(actor, c.Param("email"), input.Role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "admin not found"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "role updated"})
}

// DELETE /admin/admins/:email
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	found, err := h.Admin.Remove(actor, c.Param("email"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "admin not found"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "admin removed"})
}

// GET /admin/settings/max-requests
func (h *AdminHandler) GlobalMaxRequests(c *gin.Context) {
	max, err := h.Admin.GlobalMaxRequests()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"max_requests": max})
}

// PUT /admin/settings/max-requests
func (h *AdminHandler) SetGlobalMaxRequests(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.MaxRequestsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Admin.SetGlobalMaxRequests(actor, input.MaxRequests); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "global max requests updated"})
}

// GET /admin/admins/:email/max-requests
func (h *AdminHandler) MaxRequests(c *gin.Context) {
	max, err := h.Admin.MaxRequests(c.Param("email"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"max_requests": max})
}

// PUT /admin/admins/:email/max-requests
func (h *AdminHandler) SetMaxRequests(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.MaxRequestsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Admin.SetMaxRequests(actor, c.Param("email"), input.MaxRequests); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "max requests updated"})
}
