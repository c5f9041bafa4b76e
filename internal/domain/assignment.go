package domain

import (
	"time"
)

// DateLayout is the wire format for week_start and day values.
const DateLayout = "2006-01-02"

type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftEvening ShiftType = "evening"
)

func (s ShiftType) Valid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

// SlotIndex is the position of this shift type inside a day's grid entry:
// 0 for morning, 1 for evening.
func (s ShiftType) SlotIndex() int {
	if s == ShiftEvening {
		return 1
	}
	return 0
}

// SlotKey addresses the slot an assignment occupies. At most one assignment
// exists per key; the occupant is the mutable part, the key is not.
type SlotKey struct {
	ShiftType ShiftType
	WeekStart string
	Day       string
}

type Assignment struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	ShiftType  ShiftType `json:"shift_type"`
	WeekStart  string    `json:"week_start"`
	Day        string    `json:"day"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WeekGrid maps a day to its [morning, evening] occupants; a nil entry means
// the slot is unassigned. Days without any assignment carry no key at all.
type WeekGrid map[string][2]*int64
