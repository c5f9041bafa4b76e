package schedule

import (
	"github.com/syazwaniiiii/hr-management-system/internal/domain"
)

// BuildWeekGrid folds a flat assignment list into the per-day grid the
// calendar UI renders: day -> [morning occupant, evening occupant]. A day is
// only present once an assignment for it has been seen, so an empty input
// yields an empty grid and callers wanting all seven days synthesize the rest
// themselves. The fold never touches storage.
func BuildWeekGrid(assignments []*domain.Assignment) domain.WeekGrid {
	grid := make(domain.WeekGrid, len(assignments))

	for _, assignment := range assignments {
		slots := grid[assignment.Day]
		id := assignment.EmployeeID
		slots[assignment.ShiftType.SlotIndex()] = &id
		grid[assignment.Day] = slots
	}

	return grid
}
