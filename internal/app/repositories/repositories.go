package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for lookups that match no rows
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	EmployeeRepository   *EmployeeRepository
	AttendanceRepository *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		EmployeeRepository:   NewEmployeeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
	}
}
