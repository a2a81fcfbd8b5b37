package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/repositories"
	"github.com/yigit/hrmslite/internal/pkg/apperrors"
)

// AttendanceService handles attendance marking and history
type AttendanceService struct {
	employeeStore   EmployeeStore
	attendanceStore AttendanceStore
	now             func() time.Time
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(employeeStore EmployeeStore, attendanceStore AttendanceStore) *AttendanceService {
	return &AttendanceService{
		employeeStore:   employeeStore,
		attendanceStore: attendanceStore,
		now:             time.Now,
	}
}

// Mark records or overwrites the employee's status for the date. The
// time-of-day stamp always comes from the server clock, never the
// caller. The referenced employee must exist.
func (s *AttendanceService) Mark(ctx context.Context, employeeID int64, date time.Time, status models.AttendanceStatus) error {
	if employeeID <= 0 {
		return fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	if status != models.StatusPresent && status != models.StatusAbsent {
		return fmt.Errorf("%w: status must be %s or %s", apperrors.ErrValidationFailed, models.StatusPresent, models.StatusAbsent)
	}

	if _, err := s.employeeStore.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error checking employee: %w", err)
	}

	record := &models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		MarkedAt:   s.now().Format(models.ClockLayout),
	}

	if err := s.attendanceStore.Upsert(ctx, record); err != nil {
		return fmt.Errorf("error marking attendance: %w", err)
	}
	return nil
}

// History returns the employee's attendance records, most recent date
// first. An unknown employee yields an empty history, matching the
// idempotent read semantics of the endpoint.
func (s *AttendanceService) History(ctx context.Context, employeeID int64) ([]models.Attendance, error) {
	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	records, err := s.attendanceStore.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance history: %w", err)
	}
	return records, nil
}
