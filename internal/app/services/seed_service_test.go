package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hrmslite/internal/pkg/helpers"
)

func TestSeedService_SeedDemoData(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*SeedService, *fakeEmployeeStore, *fakeAttendanceStore) {
		employeeStore := newFakeEmployeeStore()
		attendanceStore := newFakeAttendanceStore()
		service := NewSeedService(employeeStore, attendanceStore)
		service.now = func() time.Time {
			return time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
		}
		return service, employeeStore, attendanceStore
	}

	t.Run("seeds an empty store", func(t *testing.T) {
		service, employeeStore, attendanceStore := setup(t)

		seeded, err := service.SeedDemoData(ctx)
		require.NoError(t, err)
		assert.True(t, seeded)

		count, err := employeeStore.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(len(demoData)), count)

		records, err := attendanceStore.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, records, len(demoData)*3)
	})

	t.Run("history ends on the seed date", func(t *testing.T) {
		service, _, attendanceStore := setup(t)

		_, err := service.SeedDemoData(ctx)
		require.NoError(t, err)

		records, err := attendanceStore.GetAll(ctx)
		require.NoError(t, err)

		seedDate := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		var sawToday, sawEarlier bool
		for _, record := range records {
			assert.False(t, record.Date.After(seedDate.AddDate(0, 0, 1)))
			if helpers.SameDate(record.Date, seedDate) {
				sawToday = true
			} else {
				sawEarlier = true
			}
		}
		assert.True(t, sawToday)
		assert.True(t, sawEarlier)
	})

	t.Run("populated store is left untouched", func(t *testing.T) {
		service, employeeStore, attendanceStore := setup(t)

		require.NoError(t, employeeStore.Create(ctx, newEmployee("EMP100", "Var Olan", "var@example.com", "Ops")))

		seeded, err := service.SeedDemoData(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)

		count, err := employeeStore.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.Empty(t, attendanceStore.records)
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		service, employeeStore, _ := setup(t)

		seeded, err := service.SeedDemoData(ctx)
		require.NoError(t, err)
		assert.True(t, seeded)

		seeded, err = service.SeedDemoData(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)

		count, err := employeeStore.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(len(demoData)), count)
	})
}
