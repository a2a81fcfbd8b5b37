package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/app/services"
	"github.com/yigit/hrmslite/internal/middleware"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService *services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService *services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// parseEmployeeID reads the :id path parameter, writing a 400 response
// when it is not a valid number.
func parseEmployeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee ID")
		errorDetail = errorDetail.WithDetails("Employee ID must be a valid number")
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListEmployees lists all employees with attendance figures
// @Summary List employees
// @Description Retrieves all employees, newest first, each annotated with attendance rate and total present days
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse "Employees retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

// CreateEmployee handles employee creation
// @Summary Create a new employee
// @Description Creates a new employee; emp_code and email must be unused
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} models.Employee "Employee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or employee code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	employee := models.Employee{
		EmpCode:    req.EmpCode,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := c.employeeService.CreateEmployee(ctx, &employee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

// UpdateEmployee handles a full-field employee replace
// @Summary Update an employee
// @Description Replaces all fields of an existing employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Updated employee information"
// @Success 200 {object} models.Employee "Employee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 409 {object} dto.ErrorResponse "Email or employee code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	employee := models.Employee{
		ID:         id,
		EmpCode:    req.EmpCode,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := c.employeeService.UpdateEmployee(ctx, &employee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// DeleteEmployee deletes an employee and its attendance history
// @Summary Delete an employee
// @Description Removes an employee and all of its attendance records; unknown IDs are a no-op
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.MessageResponse "Employee deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Deleted"})
}
