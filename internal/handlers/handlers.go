package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/statutory-api/internal/config"
	"github.com/sjperalta/statutory-api/internal/middleware"
	"github.com/sjperalta/statutory-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health        *HealthHandler
	Config        *StatutoryConfigHandler
	Employee      *EmployeeHandler
	BillingPeriod *BillingPeriodHandler
	Computation   *ComputationHandler
	Override      *OverrideHandler
	Audit         *AuditHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(),
		Config:        NewStatutoryConfigHandler(svcs.Config, cfg.DefaultCompanyID),
		Employee:      NewEmployeeHandler(svcs.Employee),
		BillingPeriod: NewBillingPeriodHandler(svcs.BillingPeriod),
		Computation:   NewComputationHandler(svcs.Computation, svcs.Export),
		Override:      NewOverrideHandler(svcs.Override),
		Audit:         NewAuditHandler(svcs.Audit),
	}
}

// actorFromContext identifies the caller for audit entries. Anonymous
// callers are recorded as services.DefaultActorName.
func actorFromContext(c *gin.Context) services.Actor {
	return services.Actor{
		Name:      middleware.GetUserEmail(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
