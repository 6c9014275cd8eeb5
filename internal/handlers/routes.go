package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/statutory-api/internal/middleware"
)

// RegisterRoutes mounts the API on v1. Every route except health requires a
// token; admins alone may change config, unlock, override or delete.
func RegisterRoutes(v1 *gin.RouterGroup, h *Handlers, jwtSecret string) {
	// Health check (public)
	v1.GET("/health", h.Health.Index)

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtSecret))
	{
		// Admin-only routes
		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PUT("/statutory/config", h.Config.Update)
			admin.POST("/billing_periods/:period_id/statutory/unlock", h.Computation.Unlock)
			admin.DELETE("/billing_periods/:period_id/statutory", h.Computation.Delete)
			admin.POST("/statutory/rows/:row_id/overrides", h.Override.Apply)
			admin.DELETE("/statutory/overrides/:override_id", h.Override.Remove)
			admin.GET("/audits", h.Audit.Index)
		}

		// Payroll staff (admin + accountant)
		staff := protected.Group("")
		staff.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleAccountant))
		{
			staff.GET("/statutory/config", h.Config.Show)

			staff.POST("/employees", h.Employee.Create)
			staff.GET("/employees/:employee_id", h.Employee.Show)

			staff.POST("/billing_periods", h.BillingPeriod.Create)
			staff.GET("/billing_periods/:period_id", h.BillingPeriod.Show)
			staff.PUT("/billing_periods/:period_id/employees", h.BillingPeriod.AssignWorker)

			staff.GET("/billing_periods/:period_id/statutory", h.Computation.Show)
			staff.POST("/billing_periods/:period_id/statutory/compute", h.Computation.Compute)
			staff.POST("/billing_periods/:period_id/statutory/finalize", h.Computation.Finalize)
			staff.POST("/billing_periods/:period_id/statutory/lock", h.Computation.Lock)
			staff.GET("/billing_periods/:period_id/statutory/summary", h.Computation.Summary)
			staff.GET("/billing_periods/:period_id/statutory/export", h.Computation.Export)
			staff.GET("/billing_periods/:period_id/statutory/overrides", h.Override.IndexByPeriod)

			staff.GET("/statutory/rows/:row_id/overrides", h.Override.IndexByRow)
		}
	}
}
