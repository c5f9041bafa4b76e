package seed

import (
	"log/slog"
	"time"

	"github.com/syazwaniiiii/hr-management-system/internal/config"
	"github.com/syazwaniiiii/hr-management-system/internal/domain"
	"github.com/syazwaniiiii/hr-management-system/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var starterStaff = []struct {
	Name  string
	Email string
	Role  domain.Role
}{
	{Name: "Ahmad Razif", Email: "ahmad@myhrsolutions.my", Role: domain.RoleAdmin},
	{Name: "Nur Aisyah", Email: "aisyah@myhrsolutions.my", Role: domain.RoleEmployee},
	{Name: "Farid Hassan", Email: "farid@myhrsolutions.my", Role: domain.RoleEmployee},
	{Name: "Siti Zainab", Email: "siti@myhrsolutions.my", Role: domain.RoleEmployee},
}

// SeedStarterStaff inserts the fixed starter roster.
func SeedStarterStaff(cfg *config.Config, repo *repository.Repository) []*domain.Employee {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Employee.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("could not hash the seed password", "error", err)
		return nil
	}

	employees := make([]*domain.Employee, 0, len(starterStaff))
	for _, member := range starterStaff {
		employee := &domain.Employee{
			Name:         member.Name,
			Email:        member.Email,
			PasswordHash: string(passwordHash),
			Role:         member.Role,
		}

		if err := repo.CreateEmployee(employee); err != nil {
			slog.Error("could not insert starter employee", "email", member.Email, "error", err)
			continue
		}

		employees = append(employees, employee)
	}

	slog.Info("starter staff seeded", "count", len(employees))
	return employees
}

// SeedDemoWeek fills the current week's grid, rotating the given staff
// through the morning and evening slots of all seven days.
func SeedDemoWeek(repo *repository.Repository, staff []*domain.Employee) {
	if len(staff) == 0 {
		slog.Error("no staff to build a demo week from")
		return
	}

	monday := startOfWeek(time.Now())
	weekStart := monday.Format(domain.DateLayout)

	cnt := 0
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i).Format(domain.DateLayout)

		for slot, shiftType := range []domain.ShiftType{domain.ShiftMorning, domain.ShiftEvening} {
			employee := staff[(i*2+slot)%len(staff)]
			key := domain.SlotKey{ShiftType: shiftType, WeekStart: weekStart, Day: day}

			if _, err := repo.UpsertSlot(key, employee.ID); err != nil {
				slog.Error("could not seed assignment", "day", day, "shift_type", shiftType, "error", err)
				continue
			}
			cnt++
		}
	}

	slog.Info("demo week seeded", "week_start", weekStart, "count", cnt)
}

func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // week starts on Monday
	}
	year, month, day := t.AddDate(0, 0, 1-weekday).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
