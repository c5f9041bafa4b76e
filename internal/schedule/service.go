package schedule

import (
	"time"

	"github.com/syazwaniiiii/hr-management-system/internal/domain"
)

// AssignmentStore is the keyed storage the service writes through. UpsertSlot
// must be atomic with respect to the slot uniqueness constraint.
type AssignmentStore interface {
	UpsertSlot(key domain.SlotKey, employeeID int64) (*domain.Assignment, error)
	FindByWeek(weekStart string) ([]*domain.Assignment, error)
	DeleteByWeek(weekStart string) (int64, error)
}

// EmployeeDirectory is the external employee catalog; the service only needs
// the existence check.
type EmployeeDirectory interface {
	EmployeeExists(id int64) (bool, error)
}

// Service holds no state of its own; everything lives in the store.
type Service struct {
	store     AssignmentStore
	directory EmployeeDirectory
}

func NewService(store AssignmentStore, directory EmployeeDirectory) *Service {
	return &Service{
		store:     store,
		directory: directory,
	}
}

// Assign places an employee into the (shift_type, week_start, day) slot,
// replacing any previous occupant. The previous occupant is not kept; there
// is no assignment history. day is accepted even when it falls outside the
// seven days starting at week_start; whether that should be rejected is left
// to callers.
func (s *Service) Assign(employeeID int64, shiftType, weekStart, day string) (*domain.Assignment, error) {
	if employeeID <= 0 {
		return nil, domain.NewValidationError("employee_id", "employee_id is required")
	}

	st := domain.ShiftType(shiftType)
	if !st.Valid() {
		return nil, domain.NewValidationError("shift_type", "shift_type must be one of morning, evening")
	}

	ws, err := parseDate("week_start", weekStart)
	if err != nil {
		return nil, err
	}

	d, err := parseDate("day", day)
	if err != nil {
		return nil, err
	}

	exists, err := s.directory.EmployeeExists(employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewValidationError("employee_id", "employee does not exist")
	}

	key := domain.SlotKey{ShiftType: st, WeekStart: ws, Day: d}
	return s.store.UpsertSlot(key, employeeID)
}

// GetWeek reads every assignment of the week and shapes it into the grid. It
// is a pure projection of store state; repeating it without intervening
// writes returns an identical grid.
func (s *Service) GetWeek(weekStart string) (domain.WeekGrid, error) {
	ws, err := parseDate("week_start", weekStart)
	if err != nil {
		return nil, err
	}

	assignments, err := s.store.FindByWeek(ws)
	if err != nil {
		return nil, err
	}

	return BuildWeekGrid(assignments), nil
}

// ResetWeek removes every assignment whose week_start matches. Resetting an
// already empty week succeeds with zero deletions.
func (s *Service) ResetWeek(weekStart string) error {
	ws, err := parseDate("week_start", weekStart)
	if err != nil {
		return err
	}

	if _, err := s.store.DeleteByWeek(ws); err != nil {
		return err
	}

	return nil
}

func parseDate(field, value string) (string, error) {
	if value == "" {
		return "", domain.NewValidationError(field, field+" is required")
	}

	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return "", domain.NewValidationError(field, field+" must be a valid YYYY-MM-DD date")
	}

	return t.Format(domain.DateLayout), nil
}
