package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/hrmslite/internal/app/models"
)

// demoEmployee pairs a fixture employee with its three-day attendance
// pattern, oldest day first.
type demoEmployee struct {
	employee models.Employee
	pattern  [3]models.AttendanceStatus
}

// demoData is the fixed demo dataset the /seed endpoint installs
var demoData = []demoEmployee{
	{
		employee: models.Employee{EmpCode: "EMP001", Name: "Aylin Kaya", Email: "aylin.kaya@hrmslite.dev", Department: "Engineering"},
		pattern:  [3]models.AttendanceStatus{models.StatusPresent, models.StatusPresent, models.StatusPresent},
	},
	{
		employee: models.Employee{EmpCode: "EMP002", Name: "Mert Aydın", Email: "mert.aydin@hrmslite.dev", Department: "Engineering"},
		pattern:  [3]models.AttendanceStatus{models.StatusPresent, models.StatusAbsent, models.StatusPresent},
	},
	{
		employee: models.Employee{EmpCode: "EMP003", Name: "Zeynep Arslan", Email: "zeynep.arslan@hrmslite.dev", Department: "Design"},
		pattern:  [3]models.AttendanceStatus{models.StatusAbsent, models.StatusPresent, models.StatusPresent},
	},
	{
		employee: models.Employee{EmpCode: "EMP004", Name: "Emre Koç", Email: "emre.koc@hrmslite.dev", Department: "Sales"},
		pattern:  [3]models.AttendanceStatus{models.StatusPresent, models.StatusPresent, models.StatusAbsent},
	},
	{
		employee: models.Employee{EmpCode: "EMP005", Name: "Elif Şahin", Email: "elif.sahin@hrmslite.dev", Department: "HR"},
		pattern:  [3]models.AttendanceStatus{models.StatusAbsent, models.StatusAbsent, models.StatusPresent},
	},
}

// SeedService installs demo data into an empty store
type SeedService struct {
	employeeStore   EmployeeStore
	attendanceStore AttendanceStore
	now             func() time.Time
}

// NewSeedService creates a new seed service instance
func NewSeedService(employeeStore EmployeeStore, attendanceStore AttendanceStore) *SeedService {
	return &SeedService{
		employeeStore:   employeeStore,
		attendanceStore: attendanceStore,
		now:             time.Now,
	}
}

// SeedDemoData creates the demo employees and three days of attendance
// history ending today. It only acts when the store holds no employees,
// so repeated calls are safe. The return value reports whether seeding
// actually happened.
func (s *SeedService) SeedDemoData(ctx context.Context) (bool, error) {
	count, err := s.employeeStore.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("error checking employee count: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := s.now()
	for _, demo := range demoData {
		employee := demo.employee
		if err := s.employeeStore.Create(ctx, &employee); err != nil {
			return false, fmt.Errorf("error seeding employee %s: %w", employee.EmpCode, err)
		}

		for day := 0; day < len(demo.pattern); day++ {
			record := &models.Attendance{
				EmployeeID: employee.ID,
				Date:       now.AddDate(0, 0, day-len(demo.pattern)+1),
				Status:     demo.pattern[day],
				MarkedAt:   now.Format(models.ClockLayout),
			}
			if err := s.attendanceStore.Upsert(ctx, record); err != nil {
				return false, fmt.Errorf("error seeding attendance for %s: %w", employee.EmpCode, err)
			}
		}
	}

	return true, nil
}
