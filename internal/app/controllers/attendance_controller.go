package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/app/services"
	"github.com/yigit/hrmslite/internal/middleware"
)

// AttendanceController handles attendance marking and history
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// MarkAttendance records or overwrites a day's status for an employee
// @Summary Mark attendance
// @Description Upserts the employee's status for the given date; the time-of-day stamp is set server-side
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.MarkAttendanceRequest true "Attendance information"
// @Success 200 {object} dto.MessageResponse "Attendance marked"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	// Binding already enforced the layout
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		middleware.AbortWithBindingError(ctx, err)
		return
	}

	err = c.attendanceService.Mark(ctx, req.EmployeeID, date, models.AttendanceStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Marked"})
}

// GetHistory returns an employee's attendance records
// @Summary Get attendance history
// @Description Retrieves all attendance records for an employee, most recent date first
// @Tags attendance
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {array} dto.AttendanceRecordResponse "History retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetHistory(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx)
	if !ok {
		return
	}

	records, err := c.attendanceService.History(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	history := make([]dto.AttendanceRecordResponse, 0, len(records))
	for _, record := range records {
		history = append(history, dto.AttendanceRecordResponse{
			ID:         record.ID,
			EmployeeID: record.EmployeeID,
			Date:       record.Date.Format(models.DateLayout),
			Status:     string(record.Status),
			Timestamp:  record.MarkedAt,
		})
	}

	ctx.JSON(http.StatusOK, history)
}
