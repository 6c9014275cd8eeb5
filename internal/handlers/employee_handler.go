package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/statutory-api/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// @Summary Create Employee
// @Description Register a worker with a daily wage and scheme enrollment
// @Tags Employees
// @Accept json
// @Produce json
// @Param employee body services.CreateEmployeeInput true "Employee"
// @Success 201 {object} models.Employee
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var in services.CreateEmployeeInput
	if err := BindNestedOrFlat(c, "employee", &in); err != nil {
		badRequest(c, err)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), in, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"employee": employee})
}

// @Summary Get Employee
// @Tags Employees
// @Produce json
// @Param employee_id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /employees/{employee_id} [get]
func (h *EmployeeHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "employee_id")
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employee": employee})
}
