package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hrmslite/internal/app/models"
)

func TestStatsService_Overview(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, recentLimit int) (*StatsService, *fakeEmployeeStore, *fakeAttendanceStore) {
		employeeStore := newFakeEmployeeStore()
		attendanceStore := newFakeAttendanceStore()
		service := NewStatsService(employeeStore, attendanceStore, recentLimit)
		service.now = func() time.Time {
			return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		}
		return service, employeeStore, attendanceStore
	}

	t.Run("empty store yields zeroed response", func(t *testing.T) {
		service, _, _ := setup(t, 5)

		stats, err := service.Overview(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalEmployees)
		assert.Equal(t, 0, stats.PresentToday)
		assert.Equal(t, 0, stats.AbsentToday)
		assert.Empty(t, stats.RecentActivity)
		assert.Empty(t, stats.DepartmentStats)
	})

	t.Run("counts follow the latest recorded date", func(t *testing.T) {
		service, employeeStore, attendanceStore := setup(t, 5)

		first := newEmployee("EMP001", "Aylin Kaya", "aylin@example.com", "Engineering")
		second := newEmployee("EMP002", "Mert Aydın", "mert@example.com", "Sales")
		require.NoError(t, employeeStore.Create(ctx, first))
		require.NoError(t, employeeStore.Create(ctx, second))

		// Marks landed two days before the server date
		past := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
		require.NoError(t, attendanceStore.Upsert(ctx, &models.Attendance{
			EmployeeID: first.ID, Date: past, Status: models.StatusPresent, MarkedAt: "09:00",
		}))
		require.NoError(t, attendanceStore.Upsert(ctx, &models.Attendance{
			EmployeeID: second.ID, Date: past, Status: models.StatusAbsent, MarkedAt: "09:05",
		}))

		stats, err := service.Overview(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalEmployees)
		assert.Equal(t, 1, stats.PresentToday)
		assert.Equal(t, 1, stats.AbsentToday)
	})

	t.Run("recent activity is resolved and capped", func(t *testing.T) {
		service, employeeStore, attendanceStore := setup(t, 2)

		employee := newEmployee("EMP001", "Aylin Kaya", "aylin@example.com", "Engineering")
		require.NoError(t, employeeStore.Create(ctx, employee))

		for offset := 0; offset < 4; offset++ {
			date := time.Date(2026, 8, 24+offset, 0, 0, 0, 0, time.UTC)
			require.NoError(t, attendanceStore.Upsert(ctx, &models.Attendance{
				EmployeeID: employee.ID, Date: date, Status: models.StatusPresent, MarkedAt: "09:00",
			}))
		}

		stats, err := service.Overview(ctx)
		require.NoError(t, err)
		require.Len(t, stats.RecentActivity, 2)
		assert.Equal(t, "Aylin Kaya", stats.RecentActivity[0].Name)
		assert.Equal(t, "Engineering", stats.RecentActivity[0].Department)
		assert.Equal(t, "2026-08-27", stats.RecentActivity[0].Date)
		assert.Equal(t, "2026-08-26", stats.RecentActivity[1].Date)
	})

	t.Run("department stats cover all employees", func(t *testing.T) {
		service, employeeStore, _ := setup(t, 5)

		require.NoError(t, employeeStore.Create(ctx, newEmployee("EMP001", "Aylin Kaya", "aylin@example.com", "Engineering")))
		require.NoError(t, employeeStore.Create(ctx, newEmployee("EMP002", "Mert Aydın", "mert@example.com", "Engineering")))
		require.NoError(t, employeeStore.Create(ctx, newEmployee("EMP003", "Zeynep Arslan", "zeynep@example.com", "Design")))

		stats, err := service.Overview(ctx)
		require.NoError(t, err)

		total := 0
		for _, dept := range stats.DepartmentStats {
			total += dept.Count
		}
		assert.Equal(t, 3, total)
		assert.Len(t, stats.DepartmentStats, 2)
	})
}
