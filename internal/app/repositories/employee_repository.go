package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/pkg/dberrors"
	"github.com/yigit/hrmslite/internal/pkg/logger"
)

// Employee error types
var (
	// ErrEmployeeNotFound is returned when an employee is not found.
	ErrEmployeeNotFound = ErrNotFound // Use shared ErrNotFound
	// ErrDuplicateEmail is returned when another employee already uses the email.
	ErrDuplicateEmail = errors.New("employee with this email already exists")
	// ErrDuplicateEmpCode is returned when another employee already uses the code.
	ErrDuplicateEmpCode = errors.New("employee with this code already exists")
)

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// classifyDuplicateError maps a unique violation to the field-specific sentinel.
func classifyDuplicateError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "employees_email_key"):
		return ErrDuplicateEmail
	case dberrors.IsDuplicateConstraintError(err, "employees_emp_code_key"):
		return ErrDuplicateEmpCode
	case dberrors.IsDuplicateKeyError(err):
		return ErrDuplicateEmail
	}
	return nil
}

// Create creates a new employee and fills in the assigned ID
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	sql, args, err := r.sb.Insert("employees").
		Columns("emp_code", "name", "email", "department").
		Values(employee.EmpCode, employee.Name, employee.Email, employee.Department).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create employee SQL")
		return fmt.Errorf("failed to build create employee query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&employee.ID)
	if err != nil {
		if dupErr := classifyDuplicateError(err); dupErr != nil {
			return dupErr
		}
		logger.Error().Err(err).Msg("Error executing create employee query")
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	sql, args, err := r.sb.Select("id", "emp_code", "name", "email", "department").
		From("employees").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get employee by ID SQL")
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	employee := &models.Employee{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&employee.ID,
		&employee.EmpCode,
		&employee.Name,
		&employee.Email,
		&employee.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		logger.Error().Err(err).Int64("employeeID", id).Msg("Error scanning employee row")
		return nil, fmt.Errorf("error getting employee by ID: %w", err)
	}

	return employee, nil
}

// GetAll retrieves all employees, newest first
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	sql, args, err := r.sb.Select("id", "emp_code", "name", "email", "department").
		From("employees").
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all employees SQL")
		return nil, fmt.Errorf("failed to build get all employees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.EmpCode,
			&employee.Name,
			&employee.Email,
			&employee.Department,
		); err != nil {
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update replaces all fields of an existing employee
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	// Check if employee exists
	if _, err := r.GetByID(ctx, employee.ID); err != nil {
		return err
	}

	// Check if email or code is already used by another employee
	var emailTaken, codeTaken bool
	err := r.db.QueryRow(ctx, `
		SELECT
			EXISTS(SELECT 1 FROM employees WHERE email = $1 AND id != $3),
			EXISTS(SELECT 1 FROM employees WHERE emp_code = $2 AND id != $3)`,
		employee.Email, employee.EmpCode, employee.ID).Scan(&emailTaken, &codeTaken)

	if err != nil {
		return fmt.Errorf("error checking employee uniqueness: %w", err)
	}

	if emailTaken {
		return ErrDuplicateEmail
	}
	if codeTaken {
		return ErrDuplicateEmpCode
	}

	sql, args, err := r.sb.Update("employees").
		Set("emp_code", employee.EmpCode).
		Set("name", employee.Name).
		Set("email", employee.Email).
		Set("department", employee.Department).
		Where(squirrel.Eq{"id": employee.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update employee SQL")
		return fmt.Errorf("failed to build update employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dupErr := classifyDuplicateError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("error updating employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// Delete removes an employee by ID. Attendance records cascade at the
// schema level. Deleting a missing employee is a no-op.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete employee SQL")
		return fmt.Errorf("failed to build delete employee query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}

	return nil
}

// Count returns the total number of employees
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}
	return count, nil
}
