package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/hrmslite/internal/app/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRateSummary(t *testing.T) {
	t.Run("zero records yield zero rate", func(t *testing.T) {
		assert.Equal(t, 0, RateSummary{}.Rate())
	})

	t.Run("rate rounds down", func(t *testing.T) {
		assert.Equal(t, 66, RateSummary{Present: 2, Total: 3}.Rate())
	})

	t.Run("full attendance", func(t *testing.T) {
		assert.Equal(t, 100, RateSummary{Present: 4, Total: 4}.Rate())
	})
}

func TestTargetDate(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	t.Run("no records falls back to the wall clock date", func(t *testing.T) {
		target := TargetDate(nil, now)
		assert.Equal(t, day(2026, 8, 28), target)
	})

	t.Run("uses the date of the highest record ID", func(t *testing.T) {
		records := []models.Attendance{
			{ID: 3, Date: day(2026, 8, 20)},
			{ID: 7, Date: day(2026, 8, 25)},
			{ID: 5, Date: day(2026, 8, 27)},
		}
		target := TargetDate(records, now)
		assert.Equal(t, day(2026, 8, 25), target)
	})

	t.Run("latest record may point at an older date", func(t *testing.T) {
		records := []models.Attendance{
			{ID: 1, Date: day(2026, 8, 28)},
			{ID: 2, Date: day(2026, 8, 1)},
		}
		target := TargetDate(records, now)
		assert.Equal(t, day(2026, 8, 1), target)
	})
}

func TestDailyCounts(t *testing.T) {
	target := day(2026, 8, 28)
	records := []models.Attendance{
		{ID: 1, Date: target, Status: models.StatusPresent},
		{ID: 2, Date: target, Status: models.StatusPresent},
		{ID: 3, Date: target, Status: models.StatusAbsent},
		{ID: 4, Date: day(2026, 8, 27), Status: models.StatusPresent},
	}

	counts := DailyCounts(records, target)
	assert.Equal(t, 2, counts.Present)
	assert.Equal(t, 1, counts.Absent)

	t.Run("unknown status falls into neither bucket", func(t *testing.T) {
		withUnknown := append(records, models.Attendance{ID: 5, Date: target, Status: "Leave"})
		counts := DailyCounts(withUnknown, target)
		assert.Equal(t, 2, counts.Present)
		assert.Equal(t, 1, counts.Absent)
	})

	t.Run("time of day is ignored when matching dates", func(t *testing.T) {
		noon := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		counts := DailyCounts([]models.Attendance{{ID: 1, Date: noon, Status: models.StatusPresent}}, target)
		assert.Equal(t, 1, counts.Present)
	})
}

func TestRecentActivity(t *testing.T) {
	employees := []*models.Employee{
		{ID: 1, Name: "Aylin Kaya", Department: "Engineering"},
		{ID: 2, Name: "Mert Aydın", Department: "Sales"},
	}
	records := []models.Attendance{
		{ID: 10, EmployeeID: 1, Date: day(2026, 8, 26), Status: models.StatusPresent, MarkedAt: "09:01"},
		{ID: 11, EmployeeID: 2, Date: day(2026, 8, 26), Status: models.StatusAbsent, MarkedAt: "09:05"},
		{ID: 12, EmployeeID: 1, Date: day(2026, 8, 27), Status: models.StatusPresent, MarkedAt: "08:55"},
	}

	t.Run("newest records come first", func(t *testing.T) {
		feed := RecentActivity(records, employees, 5)
		assert.Len(t, feed, 3)
		assert.Equal(t, "Aylin Kaya", feed[0].Name)
		assert.Equal(t, day(2026, 8, 27), feed[0].Date)
		assert.Equal(t, "Mert Aydın", feed[1].Name)
		assert.Equal(t, "09:05", feed[1].Time)
	})

	t.Run("limit caps the feed", func(t *testing.T) {
		feed := RecentActivity(records, employees, 2)
		assert.Len(t, feed, 2)
		assert.Equal(t, "Aylin Kaya", feed[0].Name)
		assert.Equal(t, "Mert Aydın", feed[1].Name)
	})

	t.Run("records of missing employees are skipped", func(t *testing.T) {
		orphan := append(records, models.Attendance{ID: 13, EmployeeID: 99, Date: day(2026, 8, 27), Status: models.StatusPresent})
		feed := RecentActivity(orphan, employees, 5)
		assert.Len(t, feed, 3)
		for _, entry := range feed {
			assert.NotEmpty(t, entry.Name)
		}
	})

	t.Run("skipped records do not consume a slot", func(t *testing.T) {
		orphan := append(records, models.Attendance{ID: 13, EmployeeID: 99, Date: day(2026, 8, 27), Status: models.StatusPresent})
		feed := RecentActivity(orphan, employees, 3)
		assert.Len(t, feed, 3)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		shuffled := []models.Attendance{records[2], records[0], records[1]}
		assert.Equal(t, RecentActivity(records, employees, 5), RecentActivity(shuffled, employees, 5))
	})

	t.Run("non-positive limit yields nothing", func(t *testing.T) {
		assert.Empty(t, RecentActivity(records, employees, 0))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		original := make([]models.Attendance, len(records))
		copy(original, records)
		RecentActivity(records, employees, 5)
		assert.Equal(t, original, records)
	})
}

func TestDepartmentDistribution(t *testing.T) {
	employees := []*models.Employee{
		{ID: 1, Department: "Engineering"},
		{ID: 2, Department: "Sales"},
		{ID: 3, Department: "Engineering"},
		{ID: 4, Department: "HR"},
	}

	distribution := DepartmentDistribution(employees)

	t.Run("counts sum to the employee total", func(t *testing.T) {
		total := 0
		for _, dept := range distribution {
			total += dept.Count
		}
		assert.Equal(t, len(employees), total)
	})

	t.Run("first occurrence order is preserved", func(t *testing.T) {
		assert.Equal(t, []DepartmentCount{
			{Name: "Engineering", Count: 2},
			{Name: "Sales", Count: 1},
			{Name: "HR", Count: 1},
		}, distribution)
	})

	t.Run("no employees yields empty distribution", func(t *testing.T) {
		assert.Empty(t, DepartmentDistribution(nil))
	})
}

func TestRateByEmployee(t *testing.T) {
	records := []models.Attendance{
		{ID: 1, EmployeeID: 1, Status: models.StatusPresent},
		{ID: 2, EmployeeID: 1, Status: models.StatusAbsent},
		{ID: 3, EmployeeID: 1, Status: models.StatusPresent},
		{ID: 4, EmployeeID: 2, Status: models.StatusAbsent},
	}

	summaries := RateByEmployee(records)

	assert.Equal(t, RateSummary{Present: 2, Total: 3}, summaries[1])
	assert.Equal(t, RateSummary{Present: 0, Total: 1}, summaries[2])
	assert.Equal(t, 66, summaries[1].Rate())
	assert.Equal(t, 0, summaries[2].Rate())

	t.Run("employee with no records has zero value summary", func(t *testing.T) {
		summary, ok := summaries[42]
		assert.False(t, ok)
		assert.Equal(t, 0, summary.Rate())
	})

	t.Run("unknown statuses count toward the denominator", func(t *testing.T) {
		summaries := RateByEmployee([]models.Attendance{
			{ID: 1, EmployeeID: 1, Status: models.StatusPresent},
			{ID: 2, EmployeeID: 1, Status: "Leave"},
		})
		assert.Equal(t, RateSummary{Present: 1, Total: 2}, summaries[1])
		assert.Equal(t, 50, summaries[1].Rate())
	})
}
