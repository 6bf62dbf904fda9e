package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/dto"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/response"
	"github.com/odroffice/odr-go/services"
)

type PolicyHandler struct {
	Policy *services.PolicyService
}

func NewPolicyHandler(policy *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{Policy: policy}
}

// GET /admin/settings/restriction
func (h *PolicyHandler) GetRestriction(c *gin.Context) {
	restriction, err := h.Policy.GetRestriction()
	if err != nil {
		abortWithError(c, err)
		return
	}
	if restriction == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no restriction configured; defaults apply"})
		return
	}
	c.JSON(http.StatusOK, restriction)
}

// PUT /admin/settings/restriction
func (h *PolicyHandler) UpdateRestriction(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.UpdateRestrictionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.Policy.UpdateRestriction(actor, input.StartTime, input.EndTime, input.AvailableDays, input.Announcement); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "intake restriction updated"})
}

// POST /admin/settings/dates
func (h *PolicyHandler) SetDateOverrides(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	var input dto.DateOverrideBatchDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	for _, o := range input.Overrides {
		date, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid date: " + o.Date})
			return
		}
		if err := h.Policy.SetDateOverride(actor, date, o.IsAvailable, o.Reason); err != nil {
			abortWithError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "date overrides saved"})
}

// DELETE /admin/settings/dates/:date
func (h *PolicyHandler) DeleteDateOverride(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "missing credentials"})
		return
	}

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid date"})
		return
	}

	found, err := h.Policy.DeleteDateOverride(actor, date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "no override for that date"})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "date override removed"})
}

// GET /admin/settings/dates
func (h *PolicyHandler) ListDateOverrides(c *gin.Context) {
	overrides, err := h.Policy.ListDateOverrides()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}

// GET /intake/upcoming?days=
func (h *PolicyHandler) UpcomingRestrictions(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	overrides, err := h.Policy.UpcomingRestrictions(days)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overrides)
}
