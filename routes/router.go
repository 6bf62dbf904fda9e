package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/handlers"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/services"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, policy *services.PolicyService) {
	api := r.Group("/api")

	// Public requester surface.
	api.GET("/intake/status", h.Intake.IntakeStatus)
	api.GET("/intake/upcoming", h.Policy.UpcomingRestrictions)
	api.GET("/documents", h.Intake.ListDocuments)
	api.GET("/documents/requirements", h.Intake.DocumentRequirements)
	api.POST("/requests", middleware.IntakeAllowed(policy), h.Intake.CreateRequest)
	api.GET("/requests/active", h.Intake.ActiveRequests)
	api.POST("/tracking", h.Intake.Track)
	api.POST("/tracking/payment", h.Intake.PaymentComplete)
	api.GET("/ws/tracking/:id", h.Intake.WatchTrackingHandler)

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		// Remediation uploads come from the requester side but still carry a
		// tracking-scoped token issued with the tracking number.
		auth.POST("/tracking/:id/changes/:change_id", h.Remediation.SubmitRemediation)

		admin := auth.Group("/admin")
		admin.Use(middleware.RequireRole("admin"))
		{
			requests := admin.Group("/requests")
			{
				requests.GET("", h.Request.ListRequests)
				requests.GET("/unassigned", h.Request.Unassigned)
				requests.GET("/:id", h.Request.GetRequest)
				requests.PUT("/:id/status", h.Request.UpdateStatus)
				requests.DELETE("/:id", h.Request.PurgeRequest)
				requests.POST("/:id/reject", h.Remediation.RejectRequest)
				requests.GET("/:id/changes", h.Remediation.ListChanges)
			}

			admin.GET("/my-requests", h.Request.MyRequests)

			assignments := admin.Group("/assignments")
			{
				assignments.POST("/auto", h.Assignment.AutoAssign)
				assignments.POST("/manual", h.Assignment.ManualAssign)
				assignments.POST("/unassign", h.Assignment.Unassign)
			}

			admin.GET("/progress", h.Assignment.MyProgress)
			admin.GET("/progress/all", h.Assignment.AdminsProgress)

			settings := admin.Group("/settings")
			{
				settings.GET("/restriction", h.Policy.GetRestriction)
				settings.PUT("/restriction", h.Policy.UpdateRestriction)
				settings.GET("/dates", h.Policy.ListDateOverrides)
				settings.POST("/dates", h.Policy.SetDateOverrides)
				settings.DELETE("/dates/:date", h.Policy.DeleteDateOverride)
				settings.GET("/max-requests", h.Admin.GlobalMaxRequests)
				settings.PUT("/max-requests", h.Admin.SetGlobalMaxRequests)
			}

			admins := admin.Group("/admins")
			{
				admins.GET("", h.Admin.ListAdmins)
				admins.POST("", h.Admin.AddAdmin)
				admins.PUT("/:email/role", h.Admin.UpdateRole)
				admins.DELETE("/:email", h.Admin.RemoveAdmin)
				admins.GET("/:email/max-requests", h.Admin.MaxRequests)
				admins.PUT("/:email/max-requests", h.Admin.SetMaxRequests)
			}

			admin.GET("/audit/logs", h.Audit.GetAuditLogs)
		}
	}
}
