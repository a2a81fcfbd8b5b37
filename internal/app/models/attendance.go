package models

import "time"

// AttendanceStatus defines the recorded status for a day
type AttendanceStatus string

// Status constants
const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// DateLayout is the wire format for attendance dates
const DateLayout = "2006-01-02"

// ClockLayout is the wire format for the time-of-day stamp
const ClockLayout = "15:04"

// Attendance represents one employee's status for one calendar date.
// IDs are assigned in creation order, so the highest ID is the most
// recent activity.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     AttendanceStatus
	MarkedAt   string // HH:MM, stamped server-side
}
