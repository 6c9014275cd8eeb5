package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/statutory-api/internal/services"
)

type OverrideHandler struct {
	overrideService *services.OverrideService
}

func NewOverrideHandler(overrideService *services.OverrideService) *OverrideHandler {
	return &OverrideHandler{overrideService: overrideService}
}

// @Summary Apply Override
// @Description Manually set one contribution amount of a worker row. The computation must be unlocked.
// @Tags Statutory Overrides
// @Accept json
// @Produce json
// @Param row_id path int true "Worker result row ID"
// @Param override body services.ApplyOverrideInput true "Override"
// @Success 200 {object} services.ApplyOverrideResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /statutory/rows/{row_id}/overrides [post]
func (h *OverrideHandler) Apply(c *gin.Context) {
	rowID, ok := parseID(c, "row_id")
	if !ok {
		return
	}

	var in services.ApplyOverrideInput
	if err := BindNestedOrFlat(c, "override", &in); err != nil {
		badRequest(c, err)
		return
	}
	in.RowID = rowID

	result, err := h.overrideService.Apply(c.Request.Context(), in, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Remove Override
// @Description Restore the value an override replaced. Both ledger entries are kept.
// @Tags Statutory Overrides
// @Produce json
// @Param override_id path int true "Override ID"
// @Success 200 {object} services.RemoveOverrideResult
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /statutory/overrides/{override_id} [delete]
func (h *OverrideHandler) Remove(c *gin.Context) {
	id, ok := parseID(c, "override_id")
	if !ok {
		return
	}

	result, err := h.overrideService.Remove(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List Row Overrides
// @Tags Statutory Overrides
// @Produce json
// @Param row_id path int true "Worker result row ID"
// @Success 200 {array} models.StatutoryOverride
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /statutory/rows/{row_id}/overrides [get]
func (h *OverrideHandler) IndexByRow(c *gin.Context) {
	rowID, ok := parseID(c, "row_id")
	if !ok {
		return
	}

	overrides, err := h.overrideService.ListByRow(c.Request.Context(), rowID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}

// @Summary List Period Overrides
// @Tags Statutory Overrides
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {array} models.StatutoryOverride
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory/overrides [get]
func (h *OverrideHandler) IndexByPeriod(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	overrides, err := h.overrideService.ListByPeriod(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}
