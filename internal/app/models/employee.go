package models

// Employee represents a single employee record
type Employee struct {
	ID         int64  `json:"id"`
	EmpCode    string `json:"emp_code"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
