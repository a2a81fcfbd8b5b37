package dto

// CreateEmployeeRequest represents employee creation data
type CreateEmployeeRequest struct {
	EmpCode    string `json:"emp_code" binding:"required" example:"EMP001"`
	Name       string `json:"name" binding:"required" example:"Ayşe Demir"`
	Email      string `json:"email" binding:"required,email" example:"ayse@company.com"`
	Department string `json:"department" binding:"required" example:"Engineering"`
}

// UpdateEmployeeRequest represents a full-field employee replace
type UpdateEmployeeRequest struct {
	EmpCode    string `json:"emp_code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
}

// EmployeeResponse is an employee annotated with computed attendance
// figures for the list view.
type EmployeeResponse struct {
	ID             int64  `json:"id"`
	EmpCode        string `json:"emp_code"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	AttendanceRate int    `json:"attendance_rate"`
	TotalPresent   int    `json:"total_present"`
}
