package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/hrmslite/internal/app/aggregate"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/app/repositories"
	"github.com/yigit/hrmslite/internal/pkg/apperrors"
)

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeStore   EmployeeStore
	attendanceStore AttendanceStore
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeStore EmployeeStore, attendanceStore AttendanceStore) *EmployeeService {
	return &EmployeeService{
		employeeStore:   employeeStore,
		attendanceStore: attendanceStore,
	}
}

// validateEmployee validates employee data before database operations
func validateEmployee(employee *models.Employee) error {
	if employee == nil {
		return fmt.Errorf("%w: employee is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(employee.EmpCode) == "" {
		return fmt.Errorf("%w: emp_code cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(employee.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(employee.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// translateDuplicateError maps repository duplicate sentinels to the
// application error taxonomy.
func translateDuplicateError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return apperrors.ErrEmailExists
	case errors.Is(err, repositories.ErrDuplicateEmpCode):
		return apperrors.ErrEmpCodeExists
	}
	return nil
}

// CreateEmployee creates a new employee. Email and emp_code must be
// unused; collisions surface as conflicts.
func (s *EmployeeService) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	err := s.employeeStore.Create(ctx, employee)
	if err != nil {
		if dupErr := translateDuplicateError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("error creating employee: %w", err)
	}
	return nil
}

// UpdateEmployee replaces all fields of an existing employee. The
// employee's own email and code are allowed unchanged; collisions with
// a different employee surface as conflicts.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	if employee.ID <= 0 {
		return fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	err := s.employeeStore.Update(ctx, employee)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		if dupErr := translateDuplicateError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("error updating employee: %w", err)
	}
	return nil
}

// DeleteEmployee deletes an employee and, through the schema cascade,
// every attendance record the employee owns. Unknown IDs are a no-op.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	if err := s.employeeStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

// ListEmployees returns all employees, newest first, annotated with
// their attendance rate and total present days.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.employeeStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}

	records, err := s.attendanceStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}

	summaries := aggregate.RateByEmployee(records)

	responses := make([]dto.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		summary := summaries[employee.ID]
		responses = append(responses, dto.EmployeeResponse{
			ID:             employee.ID,
			EmpCode:        employee.EmpCode,
			Name:           employee.Name,
			Email:          employee.Email,
			Department:     employee.Department,
			AttendanceRate: summary.Rate(),
			TotalPresent:   summary.Present,
		})
	}

	return responses, nil
}
