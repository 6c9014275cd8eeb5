package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/services"
)

type ComputationHandler struct {
	computationService *services.ComputationService
	exportService      *services.ExportService
}

func NewComputationHandler(computationService *services.ComputationService, exportService *services.ExportService) *ComputationHandler {
	return &ComputationHandler{computationService: computationService, exportService: exportService}
}

// @Summary Preview Statutory Computation
// @Description Compute PF and ESI for a billing period without saving anything
// @Tags Statutory Computation
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory/compute [post]
func (h *ComputationHandler) Compute(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	result, err := h.computationService.Preview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Same shape as a stored computation, without ids
	preview := models.NewStatutoryComputation(result, actorFromContext(c).Name, time.Now())
	c.JSON(http.StatusOK, gin.H{"computation": preview, "summary": result.Summary()})
}

// @Summary Finalize Billing Period
// @Description Compute, persist and lock the statutory result of a billing period. Repeated calls return the stored result.
// @Tags Statutory Computation
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {object} services.FinalizeResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory/finalize [post]
func (h *ComputationHandler) Finalize(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	result, err := h.computationService.Finalize(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get Statutory Computation
// @Description Get the stored computation of a billing period with every worker row
// @Tags Statutory Computation
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {object} models.StatutoryComputation
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory [get]
func (h *ComputationHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	computation, err := h.computationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"computation": computation})
}

// @Summary Lock Statutory Computation
// @Tags Statutory Computation
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {object} models.StatutoryComputation
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory/lock [post]
func (h *ComputationHandler) Lock(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	computation, err := h.computationService.Lock(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"computation": computation, "message": "Computation locked"})
}

// @Summary Unlock Statutory Computation
// @Description Re-enable overrides. Attendance stays frozen.
// @Tags Statutory Computation
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {object} models.StatutoryComputation
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory/unlock [post]
func (h *ComputationHandler) Unlock(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	computation, err := h.computationService.Unlock(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"computation": computation, "message": "Computation unlocked"})
}

// @Summary Delete Statutory Computation
// @Description Delete an unlocked computation that has no override history
// @Tags Statutory Computation
// @Produce json
// @Param period_id path int true "Billing period ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory [delete]
func (h *ComputationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	if err := h.computationService.Delete(c.Request.Context(), id, actorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Computation deleted"})
}

// @Summary Statutory Summary
// @Description Plain-text summary of the stored computation
// @Tags Statutory Computation
// @Produce plain
// @Param period_id path int true "Billing period ID"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory/summary [get]
func (h *ComputationHandler) Summary(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	summary, err := h.computationService.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, summary)
}

// @Summary Export Statutory Register
// @Description Download the stored computation as xlsx or csv
// @Tags Statutory Computation
// @Produce octet-stream
// @Param period_id path int true "Billing period ID"
// @Param format query string false "xlsx or csv" default(xlsx)
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /billing_periods/{period_id}/statutory/export [get]
func (h *ComputationHandler) Export(c *gin.Context) {
	id, ok := parseID(c, "period_id")
	if !ok {
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	if format != "xlsx" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of xlsx, csv", "field": "format"})
		return
	}

	computation, err := h.computationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	var (
		data     []byte
		filename string
	)
	contentType := "text/csv"
	if format == "csv" {
		data, filename, err = h.exportService.ExportCSV(c.Request.Context(), computation)
	} else {
		data, filename, err = h.exportService.ExportXLSX(c.Request.Context(), computation)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
