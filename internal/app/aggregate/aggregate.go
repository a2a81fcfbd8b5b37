// Package aggregate computes attendance statistics over in-memory
// snapshots of employee and attendance data. Every function is a pure
// computation: no storage access, no mutation of its inputs,
// deterministic for identical snapshots.
package aggregate

import (
	"sort"
	"time"

	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/pkg/helpers"
)

// Counts holds the per-day present/absent tallies. Records carrying any
// other status value fall into neither bucket.
type Counts struct {
	Present int
	Absent  int
}

// Activity is one resolved entry of the recent-activity feed
type Activity struct {
	Name       string
	Department string
	Status     models.AttendanceStatus
	Time       string
	Date       time.Time
}

// DepartmentCount is the number of employees grouped under one department
type DepartmentCount struct {
	Name  string
	Count int
}

// RateSummary is one employee's attendance tally. Total counts every
// record regardless of status, so the rate denominator includes
// non-standard status values.
type RateSummary struct {
	Present int
	Total   int
}

// Rate returns the attendance percentage, rounded down. Zero records
// yield a rate of zero.
func (r RateSummary) Rate() int {
	if r.Total == 0 {
		return 0
	}
	return r.Present * 100 / r.Total
}

// TargetDate picks the reference date for daily statistics: the date of
// the most recently created attendance record (highest ID), so the
// dashboard tracks actual recorded activity rather than the server's
// locale. With no records it falls back to now's calendar date.
func TargetDate(records []models.Attendance, now time.Time) time.Time {
	var latest *models.Attendance
	for i := range records {
		if latest == nil || records[i].ID > latest.ID {
			latest = &records[i]
		}
	}

	if latest == nil {
		return helpers.TruncateToDate(now)
	}
	return helpers.TruncateToDate(latest.Date)
}

// DailyCounts tallies present/absent statuses among records dated on
// the target date.
func DailyCounts(records []models.Attendance, target time.Time) Counts {
	var counts Counts
	for _, rec := range records {
		if !helpers.SameDate(rec.Date, target) {
			continue
		}
		switch rec.Status {
		case models.StatusPresent:
			counts.Present++
		case models.StatusAbsent:
			counts.Absent++
		}
	}
	return counts
}

// RecentActivity resolves the newest records (by descending ID) against
// the employee set, at most limit entries. Records whose employee is
// missing are skipped without consuming a slot.
func RecentActivity(records []models.Attendance, employees []*models.Employee, limit int) []Activity {
	if limit <= 0 {
		return nil
	}

	byID := make(map[int64]*models.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	sorted := make([]models.Attendance, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})

	var feed []Activity
	for _, rec := range sorted {
		emp, ok := byID[rec.EmployeeID]
		if !ok {
			continue
		}

		feed = append(feed, Activity{
			Name:       emp.Name,
			Department: emp.Department,
			Status:     rec.Status,
			Time:       rec.MarkedAt,
			Date:       rec.Date,
		})
		if len(feed) == limit {
			break
		}
	}
	return feed
}

// DepartmentDistribution counts employees per department, preserving
// the order in which each department is first seen.
func DepartmentDistribution(employees []*models.Employee) []DepartmentCount {
	index := make(map[string]int, len(employees))
	var distribution []DepartmentCount

	for _, emp := range employees {
		if i, seen := index[emp.Department]; seen {
			distribution[i].Count++
			continue
		}
		index[emp.Department] = len(distribution)
		distribution = append(distribution, DepartmentCount{Name: emp.Department, Count: 1})
	}
	return distribution
}

// RateByEmployee tallies present and total record counts per employee
func RateByEmployee(records []models.Attendance) map[int64]RateSummary {
	summaries := make(map[int64]RateSummary)
	for _, rec := range records {
		summary := summaries[rec.EmployeeID]
		summary.Total++
		if rec.Status == models.StatusPresent {
			summary.Present++
		}
		summaries[rec.EmployeeID] = summary
	}
	return summaries
}
