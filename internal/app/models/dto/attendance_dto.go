package dto

// MarkAttendanceRequest records or overwrites one employee's status for
// one date. The time-of-day stamp is never client-supplied.
type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required,gt=0" example:"1"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02" example:"2024-01-15"`
	Status     string `json:"status" binding:"required,oneof=Present Absent" example:"Present"`
}

// AttendanceRecordResponse is one row of an employee's history
type AttendanceRecordResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
}
