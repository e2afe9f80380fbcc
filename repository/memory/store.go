// Package memory is a process-local implementation of the repository
// interfaces. It backs the handler and service tests and `serve --memory`.
package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Management-System/models"
	"Employee-Management-System/repository"
)

// Store keeps every collection in insertion order and enforces the same
// uniqueness rules as the MongoDB indexes.
type Store struct {
	mu sync.RWMutex

	departments     map[primitive.ObjectID]models.Department
	departmentOrder []primitive.ObjectID

	positions     map[primitive.ObjectID]models.Position
	positionOrder []primitive.ObjectID

	employees     map[primitive.ObjectID]models.Employee
	employeeOrder []primitive.ObjectID

	attendance map[primitive.ObjectID][]models.AttendanceRecord

	lastTimestamp time.Time
	now           func() time.Time
}

var (
	_ repository.DepartmentRepository = (*Store)(nil)
	_ repository.PositionRepository   = (*Store)(nil)
	_ repository.EmployeeRepository   = (*Store)(nil)
	_ repository.AttendanceRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		departments: make(map[primitive.ObjectID]models.Department),
		positions:   make(map[primitive.ObjectID]models.Position),
		employees:   make(map[primitive.ObjectID]models.Employee),
		attendance:  make(map[primitive.ObjectID][]models.AttendanceRecord),
		now:         repository.Now,
	}
}

// serverNow plays the part of the store clock: it never goes backwards
// between writes. Callers hold s.mu.
func (s *Store) serverNow() time.Time {
	t := s.now()
	if t.Before(s.lastTimestamp) {
		t = s.lastTimestamp
	}
	s.lastTimestamp = t
	return t
}

// Departments

func (s *Store) CreateDepartment(_ context.Context, department *models.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	department.ID = primitive.NewObjectID()
	department.CreatedAt = s.serverNow()
	s.departments[department.ID] = *department
	s.departmentOrder = append(s.departmentOrder, department.ID)
	return nil
}

func (s *Store) GetAllDepartments(_ context.Context) ([]models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Department, 0, len(s.departmentOrder))
	for _, id := range s.departmentOrder {
		out = append(out, s.departments[id])
	}
	return out, nil
}

func (s *Store) GetDepartmentByID(_ context.Context, id primitive.ObjectID) (*models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.departments[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *Store) FindDepartmentByName(_ context.Context, name string) (*models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.departmentOrder {
		if d := s.departments[id]; d.Name == name {
			return &d, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateDepartmentName(_ context.Context, id primitive.ObjectID, name string) (*models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.departments[id]
	if !ok {
		return nil, nil
	}
	d.Name = name
	s.departments[id] = d
	return &d, nil
}

func (s *Store) DeleteDepartment(_ context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.departments[id]; !ok {
		return false, nil
	}
	delete(s.departments, id)
	s.departmentOrder = without(s.departmentOrder, id)
	return true, nil
}

// Positions

func (s *Store) CreatePosition(_ context.Context, position *models.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	position.ID = primitive.NewObjectID()
	position.CreatedAt = s.serverNow()
	s.positions[position.ID] = *position
	s.positionOrder = append(s.positionOrder, position.ID)
	return nil
}

func (s *Store) GetAllPositions(_ context.Context) ([]models.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Position, 0, len(s.positionOrder))
	for _, id := range s.positionOrder {
		out = append(out, s.positions[id])
	}
	return out, nil
}

func (s *Store) GetPositionByID(_ context.Context, id primitive.ObjectID) (*models.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.positions[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) FindPositionByTitle(_ context.Context, title string) (*models.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.positionOrder {
		if p := s.positions[id]; p.Title == title {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdatePosition(_ context.Context, id primitive.ObjectID, patch models.PositionPatch) (*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.positions[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&p)
	s.positions[id] = p
	return &p, nil
}

func (s *Store) DeletePosition(_ context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.positions[id]; !ok {
		return false, nil
	}
	delete(s.positions, id)
	s.positionOrder = without(s.positionOrder, id)
	return true, nil
}

// Employees

func (s *Store) CreateEmployee(_ context.Context, employee *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEmployeeUnique(*employee, primitive.NilObjectID); err != nil {
		return err
	}
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = s.serverNow()
	if employee.HireDate.IsZero() {
		employee.HireDate = employee.CreatedAt
	}
	s.employees[employee.ID] = *employee
	s.employeeOrder = append(s.employeeOrder, employee.ID)
	return nil
}

// checkEmployeeUnique mirrors uniq_employee_id and uniq_active_email. self is
// skipped so an employee never conflicts with its own stored version.
func (s *Store) checkEmployeeUnique(e models.Employee, self primitive.ObjectID) error {
	for id, other := range s.employees {
		if id == self {
			continue
		}
		if other.EmployeeID == e.EmployeeID {
			return repository.ErrDuplicateEmployeeID
		}
		if e.IsActive && other.IsActive && other.Email == e.Email {
			return repository.ErrDuplicateActiveEmail
		}
	}
	return nil
}

func (s *Store) GetAllEmployees(_ context.Context) ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, 0, len(s.employeeOrder))
	for _, id := range s.employeeOrder {
		out = append(out, s.employees[id])
	}
	return out, nil
}

func (s *Store) GetEmployeeByID(_ context.Context, id primitive.ObjectID) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *Store) FindActiveEmployeeByEmail(_ context.Context, email string) (*models.Employee, error) {
	return s.findEmployee(func(e models.Employee) bool { return e.IsActive && e.Email == email })
}

func (s *Store) FindEmployeeByEmployeeID(_ context.Context, employeeID string) (*models.Employee, error) {
	return s.findEmployee(func(e models.Employee) bool { return e.EmployeeID == employeeID })
}

func (s *Store) findEmployee(match func(models.Employee) bool) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.employeeOrder {
		if e := s.employees[id]; match(e) {
			return &e, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateEmployee(_ context.Context, id primitive.ObjectID, patch models.EmployeePatch) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&e)
	if err := s.checkEmployeeUnique(e, id); err != nil {
		return nil, err
	}
	s.employees[id] = e
	return &e, nil
}

// Attendance

func (s *Store) CreateAttendance(_ context.Context, record *models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = primitive.NewObjectID()
	record.Timestamp = s.serverNow()
	s.attendance[record.EmployeeRef] = append(s.attendance[record.EmployeeRef], *record)
	return nil
}

// FindAttendanceByEmployee returns records in append order, which is also
// timestamp order since serverNow never goes backwards.
func (s *Store) FindAttendanceByEmployee(_ context.Context, employeeRef primitive.ObjectID) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.attendance[employeeRef]
	out := make([]models.AttendanceRecord, len(records))
	copy(out, records)
	return out, nil
}

func (s *Store) FindLatestAttendance(_ context.Context, employeeRef primitive.ObjectID) (*models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.attendance[employeeRef]
	if len(records) == 0 {
		return nil, nil
	}
	last := records[len(records)-1]
	return &last, nil
}

// AttendanceCount is the number of attendance records across all employees.
func (s *Store) AttendanceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, records := range s.attendance {
		n += len(records)
	}
	return n
}

func without(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
