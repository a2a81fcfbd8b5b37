package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/pkg/logger"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert writes an attendance record for (employee, date). A second
// mark for the same pair overwrites status and the time stamp in place,
// so exactly one row exists per pair afterwards.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.Attendance) error {
	sql, args, err := r.sb.Insert("attendance").
		Columns("employee_id", "date", "status", "marked_at").
		Values(record.EmployeeID, record.Date, record.Status, record.MarkedAt).
		Suffix(`ON CONFLICT (employee_id, date) DO UPDATE
			SET status = EXCLUDED.status, marked_at = EXCLUDED.marked_at
			RETURNING id`).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert attendance SQL")
		return fmt.Errorf("failed to build upsert attendance query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&record.ID)
	if err != nil {
		logger.Error().Err(err).Int64("employeeID", record.EmployeeID).Msg("Error executing upsert attendance query")
		return fmt.Errorf("error upserting attendance: %w", err)
	}

	return nil
}

// GetAll retrieves every attendance record, newest first
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]models.Attendance, error) {
	sql, args, err := r.sb.Select("id", "employee_id", "date", "status", "marked_at").
		From("attendance").
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all attendance SQL")
		return nil, fmt.Errorf("failed to build get all attendance query: %w", err)
	}

	return r.queryRecords(ctx, sql, args)
}

// GetByEmployee retrieves an employee's history, most recent date first
func (r *AttendanceRepository) GetByEmployee(ctx context.Context, employeeID int64) ([]models.Attendance, error) {
	sql, args, err := r.sb.Select("id", "employee_id", "date", "status", "marked_at").
		From("attendance").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("date DESC", "id DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get attendance by employee SQL")
		return nil, fmt.Errorf("failed to build get attendance by employee query: %w", err)
	}

	return r.queryRecords(ctx, sql, args)
}

// queryRecords runs an attendance select and scans the rows
func (r *AttendanceRepository) queryRecords(ctx context.Context, sql string, args []interface{}) ([]models.Attendance, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	var records []models.Attendance
	for rows.Next() {
		var record models.Attendance
		if err := rows.Scan(
			&record.ID,
			&record.EmployeeID,
			&record.Date,
			&record.Status,
			&record.MarkedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
