package services

import (
	"context"

	"github.com/yigit/hrmslite/internal/app/models"
)

// EmployeeStore is the persistence contract the services need for
// employees. *repositories.EmployeeRepository satisfies it; tests use
// in-memory fakes.
type EmployeeStore interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetAll(ctx context.Context) ([]*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// AttendanceStore is the persistence contract for attendance records
type AttendanceStore interface {
	Upsert(ctx context.Context, record *models.Attendance) error
	GetAll(ctx context.Context) ([]models.Attendance, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]models.Attendance, error)
}
