package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/hrmslite/internal/app/aggregate"
	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/models/dto"
)

// StatsService computes the dashboard summary
type StatsService struct {
	employeeStore   EmployeeStore
	attendanceStore AttendanceStore
	recentLimit     int
	now             func() time.Time
}

// NewStatsService creates a new stats service instance. recentLimit
// caps the recent-activity feed.
func NewStatsService(employeeStore EmployeeStore, attendanceStore AttendanceStore, recentLimit int) *StatsService {
	return &StatsService{
		employeeStore:   employeeStore,
		attendanceStore: attendanceStore,
		recentLimit:     recentLimit,
		now:             time.Now,
	}
}

// Overview assembles the dashboard statistics from a single snapshot of
// the store. The reference date for present/absent counts follows the
// latest recorded activity, falling back to the server date when the
// store holds no attendance records.
func (s *StatsService) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	employees, err := s.employeeStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving employees: %w", err)
	}

	records, err := s.attendanceStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance records: %w", err)
	}

	target := aggregate.TargetDate(records, s.now())
	counts := aggregate.DailyCounts(records, target)

	feed := aggregate.RecentActivity(records, employees, s.recentLimit)
	activity := make([]dto.ActivityEntry, 0, len(feed))
	for _, entry := range feed {
		activity = append(activity, dto.ActivityEntry{
			Name:       entry.Name,
			Department: entry.Department,
			Status:     string(entry.Status),
			Time:       entry.Time,
			Date:       entry.Date.Format(models.DateLayout),
		})
	}

	distribution := aggregate.DepartmentDistribution(employees)
	departmentStats := make([]dto.DepartmentCount, 0, len(distribution))
	for _, dept := range distribution {
		departmentStats = append(departmentStats, dto.DepartmentCount{
			Name:  dept.Name,
			Count: dept.Count,
		})
	}

	return &dto.StatsResponse{
		TotalEmployees:  int64(len(employees)),
		PresentToday:    counts.Present,
		AbsentToday:     counts.Absent,
		RecentActivity:  activity,
		DepartmentStats: departmentStats,
	}, nil
}
