package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/statutory-api/internal/services"
)

type BillingPeriodHandler struct {
	periodService *services.BillingPeriodService
}

func NewBillingPeriodHandler(periodService *services.BillingPeriodService) *BillingPeriodHandler {
	return &BillingPeriodHandler{periodService: periodService}
}

// @Summary Create Billing Period
// @Description Open a draft billing period for a project
// @Tags Billing Periods
// @Accept json
// @Produce json
// @Param billing_period body services.CreateBillingPeriodInput true "Billing period"
// @Success 201 {object} models.BillingPeriod
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods [post]
func (h *BillingPeriodHandler) Create(c *gin.Context) {
	var in services.CreateBillingPeriodInput
	if err := BindNestedOrFlat(c, "billing_period", &in); err != nil {
		badRequest(c, err)
		return
	}

	period, err := h.periodService.Create(c.Request.Context(), in, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"billing_period": period})
}

// @Summary Get Billing Period
// @Description Get a billing period with its assigned workers
// @Tags Billing Periods
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {object} models.BillingPeriod
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id} [get]
func (h *BillingPeriodHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	period, err := h.periodService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"billing_period": period})
}

// @Summary Assign Worker
// @Description Add a worker to a draft billing period or replace their attendance figures
// @Tags Billing Periods
// @Accept json
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Param assignment body services.AssignWorkerInput true "Attendance"
// @Success 200 {object} models.BillingEmployee
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/employees [put]
func (h *BillingPeriodHandler) AssignWorker(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	var in services.AssignWorkerInput
	if err := BindNestedOrFlat(c, "assignment", &in); err != nil {
		badRequest(c, err)
		return
	}

	assignment, err := h.periodService.AssignWorker(c.Request.Context(), id, in, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": assignment})
}
