package services

import (
	"context"
	"sort"

	"github.com/yigit/hrmslite/internal/app/models"
	"github.com/yigit/hrmslite/internal/app/repositories"
	"github.com/yigit/hrmslite/internal/pkg/helpers"
)

// fakeEmployeeStore is an in-memory EmployeeStore mirroring the
// repository's sentinel errors and ordering guarantees.
type fakeEmployeeStore struct {
	employees map[int64]*models.Employee
	nextID    int64
	failWith  error
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{
		employees: make(map[int64]*models.Employee),
		nextID:    1,
	}
}

func (f *fakeEmployeeStore) checkDuplicates(employee *models.Employee, excludeID int64) error {
	for _, existing := range f.employees {
		if existing.ID == excludeID {
			continue
		}
		if existing.Email == employee.Email {
			return repositories.ErrDuplicateEmail
		}
		if existing.EmpCode == employee.EmpCode {
			return repositories.ErrDuplicateEmpCode
		}
	}
	return nil
}

func (f *fakeEmployeeStore) Create(_ context.Context, employee *models.Employee) error {
	if f.failWith != nil {
		return f.failWith
	}
	if err := f.checkDuplicates(employee, 0); err != nil {
		return err
	}
	employee.ID = f.nextID
	f.nextID++
	stored := *employee
	f.employees[employee.ID] = &stored
	return nil
}

func (f *fakeEmployeeStore) GetByID(_ context.Context, id int64) (*models.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	employee, ok := f.employees[id]
	if !ok {
		return nil, repositories.ErrEmployeeNotFound
	}
	found := *employee
	return &found, nil
}

func (f *fakeEmployeeStore) GetAll(_ context.Context) ([]*models.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	all := make([]*models.Employee, 0, len(f.employees))
	for _, employee := range f.employees {
		found := *employee
		all = append(all, &found)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all, nil
}

func (f *fakeEmployeeStore) Update(_ context.Context, employee *models.Employee) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.employees[employee.ID]; !ok {
		return repositories.ErrEmployeeNotFound
	}
	if err := f.checkDuplicates(employee, employee.ID); err != nil {
		return err
	}
	stored := *employee
	f.employees[employee.ID] = &stored
	return nil
}

func (f *fakeEmployeeStore) Delete(_ context.Context, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeStore) Count(_ context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.employees)), nil
}

// fakeAttendanceStore is an in-memory AttendanceStore with the same
// one-record-per-employee-per-day upsert as the Postgres repository.
type fakeAttendanceStore struct {
	records  []models.Attendance
	nextID   int64
	failWith error
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{nextID: 1}
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, record *models.Attendance) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.records {
		if f.records[i].EmployeeID == record.EmployeeID && helpers.SameDate(f.records[i].Date, record.Date) {
			f.records[i].Status = record.Status
			f.records[i].MarkedAt = record.MarkedAt
			record.ID = f.records[i].ID
			return nil
		}
	}
	record.ID = f.nextID
	f.nextID++
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeAttendanceStore) GetAll(_ context.Context) ([]models.Attendance, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	all := make([]models.Attendance, len(f.records))
	copy(all, f.records)
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all, nil
}

func (f *fakeAttendanceStore) GetByEmployee(_ context.Context, employeeID int64) ([]models.Attendance, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var history []models.Attendance
	for _, record := range f.records {
		if record.EmployeeID == employeeID {
			history = append(history, record)
		}
	}
	sort.Slice(history, func(i, j int) bool {
		if !history[i].Date.Equal(history[j].Date) {
			return history[i].Date.After(history[j].Date)
		}
		return history[i].ID > history[j].ID
	})
	return history, nil
}
