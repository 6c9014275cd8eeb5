package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/statutory-api/internal/services"
)

type StatutoryConfigHandler struct {
	configService    *services.StatutoryConfigService
	defaultCompanyID uint
}

func NewStatutoryConfigHandler(configService *services.StatutoryConfigService, defaultCompanyID uint) *StatutoryConfigHandler {
	return &StatutoryConfigHandler{configService: configService, defaultCompanyID: defaultCompanyID}
}

func (h *StatutoryConfigHandler) companyID(c *gin.Context) (uint, bool) {
	raw := c.Query("company_id")
	if raw == "" {
		return h.defaultCompanyID, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company_id", "field": "company_id"})
		return 0, false
	}
	return uint(id), true
}

// @Summary Get Statutory Config
// @Description Get the PF/ESI configuration of a company
// @Tags Statutory Config
// @Produce json
// @Param company_id query int false "Company ID (defaults to the configured company)"
// @Success 200 {object} models.StatutoryConfig
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /statutory/config [get]
func (h *StatutoryConfigHandler) Show(c *gin.Context) {
	companyID, ok := h.companyID(c)
	if !ok {
		return
	}

	cfg, err := h.configService.Get(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// @Summary Update Statutory Config
// @Description Create or update a company's PF/ESI configuration. Omitted fields keep their current value.
// @Tags Statutory Config
// @Accept json
// @Produce json
// @Param config body services.StatutoryConfigInput true "Configuration"
// @Success 200 {object} models.StatutoryConfig
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /statutory/config [put]
func (h *StatutoryConfigHandler) Update(c *gin.Context) {
	var in services.StatutoryConfigInput
	if err := BindNestedOrFlat(c, "config", &in); err != nil {
		badRequest(c, err)
		return
	}
	if in.CompanyID == 0 {
		in.CompanyID = h.defaultCompanyID
	}

	cfg, err := h.configService.Set(c.Request.Context(), in, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg, "message": "Statutory configuration saved"})
}
