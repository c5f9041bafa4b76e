package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/syazwaniiiii/hr-management-system/internal/config"
	"github.com/syazwaniiiii/hr-management-system/internal/domain"
	"github.com/syazwaniiiii/hr-management-system/internal/schedule"
)

type memStore struct {
	assignments map[domain.SlotKey]*domain.Assignment
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{assignments: make(map[domain.SlotKey]*domain.Assignment)}
}

func (m *memStore) UpsertSlot(key domain.SlotKey, employeeID int64) (*domain.Assignment, error) {
	if existing, ok := m.assignments[key]; ok {
		existing.EmployeeID = employeeID
		existing.UpdatedAt = time.Now()
		cp := *existing
		return &cp, nil
	}

	m.nextID++
	created := &domain.Assignment{
		ID:         m.nextID,
		EmployeeID: employeeID,
		ShiftType:  key.ShiftType,
		WeekStart:  key.WeekStart,
		Day:        key.Day,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.assignments[key] = created
	cp := *created
	return &cp, nil
}

func (m *memStore) FindByWeek(weekStart string) ([]*domain.Assignment, error) {
	found := make([]*domain.Assignment, 0)
	for _, a := range m.assignments {
		if a.WeekStart == weekStart {
			cp := *a
			found = append(found, &cp)
		}
	}
	return found, nil
}

func (m *memStore) DeleteByWeek(weekStart string) (int64, error) {
	var deleted int64
	for key, a := range m.assignments {
		if a.WeekStart == weekStart {
			delete(m.assignments, key)
			deleted++
		}
	}
	return deleted, nil
}

type memDirectory struct {
	ids map[int64]bool
}

func (d *memDirectory) EmployeeExists(id int64) (bool, error) {
	return d.ids[id], nil
}

func newTestHandler(t *testing.T, knownEmployees ...int64) (*Handler, *memStore) {
	t.Helper()

	store := newMemStore()
	ids := make(map[int64]bool, len(knownEmployees))
	for _, id := range knownEmployees {
		ids[id] = true
	}
	svc := schedule.NewService(store, &memDirectory{ids: ids})

	h, err := NewHandler(&config.Config{}, nil, svc, nil, nil)
	require.NoError(t, err)

	return h, store
}

func postJSON(h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestAssignShift(t *testing.T) {
	t.Run("valid request returns the serialized assignment", func(t *testing.T) {
		h, _ := newTestHandler(t, 7)

		w := postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 7, "shift_type": "morning", "week_start": "2024-06-03", "day": "2024-06-03"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success  bool              `json:"success"`
			Schedule domain.Assignment `json:"schedule"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, resp.Success)
		require.Equal(t, int64(7), resp.Schedule.EmployeeID)
		require.Equal(t, domain.ShiftMorning, resp.Schedule.ShiftType)
		require.Equal(t, "2024-06-03", resp.Schedule.WeekStart)
		require.Equal(t, "2024-06-03", resp.Schedule.Day)
	})

	t.Run("reassigning a slot replaces the occupant", func(t *testing.T) {
		h, store := newTestHandler(t, 7, 8)

		w := postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 7, "shift_type": "morning", "week_start": "2024-06-03", "day": "2024-06-03"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 8, "shift_type": "morning", "week_start": "2024-06-03", "day": "2024-06-03"}`)
		require.Equal(t, http.StatusOK, w.Code)

		require.Len(t, store.assignments, 1)
		key := domain.SlotKey{ShiftType: domain.ShiftMorning, WeekStart: "2024-06-03", Day: "2024-06-03"}
		require.Equal(t, int64(8), store.assignments[key].EmployeeID)
	})

	t.Run("unknown shift type is a 422 naming the field and writes nothing", func(t *testing.T) {
		h, store := newTestHandler(t, 7)

		w := postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 7, "shift_type": "night", "week_start": "2024-06-03", "day": "2024-06-03"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), `"shift_type"`)
		require.Empty(t, store.assignments)
	})

	t.Run("missing body fields are a 422 with wire field names", func(t *testing.T) {
		h, store := newTestHandler(t, 7)

		w := postJSON(h.AssignShift, "/schedule/assign", `{"employee_id": 7, "shift_type": "morning"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), `"week_start"`)
		require.Contains(t, w.Body.String(), `"day"`)
		require.Empty(t, store.assignments)
	})

	t.Run("nonexistent employee is a 422", func(t *testing.T) {
		h, store := newTestHandler(t) // empty directory

		w := postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 7, "shift_type": "morning", "week_start": "2024-06-03", "day": "2024-06-03"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), `"employee_id"`)
		require.Empty(t, store.assignments)
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		h, _ := newTestHandler(t, 7)

		w := postJSON(h.AssignShift, "/schedule/assign", `{"employee_id": `)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetWeekSchedule(t *testing.T) {
	t.Run("missing week_start is a 400 with an explicit body", func(t *testing.T) {
		h, _ := newTestHandler(t)

		w := get(h.GetWeekSchedule, "/schedule/week")

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"error": "week_start is required"}`, w.Body.String())
	})

	t.Run("returns the grid for recorded days only", func(t *testing.T) {
		h, _ := newTestHandler(t, 1, 2)

		w := postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 1, "shift_type": "morning", "week_start": "2024-06-03", "day": "2024-06-03"}`)
		require.Equal(t, http.StatusOK, w.Code)
		w = postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 2, "shift_type": "evening", "week_start": "2024-06-03", "day": "2024-06-03"}`)
		require.Equal(t, http.StatusOK, w.Code)
		w = postJSON(h.AssignShift, "/schedule/assign",
			`{"employee_id": 1, "shift_type": "evening", "week_start": "2024-06-03", "day": "2024-06-05"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = get(h.GetWeekSchedule, "/schedule/week?week_start=2024-06-03")

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{
			"assignments": {
				"2024-06-03": [1, 2],
				"2024-06-05": [null, 1]
			}
		}`, w.Body.String())
	})

	t.Run("an empty week is an empty object", func(t *testing.T) {
		h, _ := newTestHandler(t)

		w := get(h.GetWeekSchedule, "/schedule/week?week_start=2024-06-03")

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"assignments": {}}`, w.Body.String())
	})
}

func TestResetWeekSchedule(t *testing.T) {
	t.Run("clears the week and reports success", func(t *testing.T) {
		h, store := newTestHandler(t, 1, 2)

		for _, body := range []string{
			`{"employee_id": 1, "shift_type": "morning", "week_start": "2024-06-03", "day": "2024-06-03"}`,
			`{"employee_id": 2, "shift_type": "evening", "week_start": "2024-06-03", "day": "2024-06-04"}`,
			`{"employee_id": 1, "shift_type": "morning", "week_start": "2024-06-10", "day": "2024-06-10"}`,
		} {
			w := postJSON(h.AssignShift, "/schedule/assign", body)
			require.Equal(t, http.StatusOK, w.Code)
		}

		w := postJSON(h.ResetWeekSchedule, "/schedule/reset", `{"week_start": "2024-06-03"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success": true}`, w.Body.String())

		// only the other week survives
		require.Len(t, store.assignments, 1)

		w = get(h.GetWeekSchedule, "/schedule/week?week_start=2024-06-03")
		require.JSONEq(t, `{"assignments": {}}`, w.Body.String())
	})

	t.Run("resetting an empty week still succeeds", func(t *testing.T) {
		h, _ := newTestHandler(t)

		w := postJSON(h.ResetWeekSchedule, "/schedule/reset", `{"week_start": "2024-06-03"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success": true}`, w.Body.String())

		w = postJSON(h.ResetWeekSchedule, "/schedule/reset", `{"week_start": "2024-06-03"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"success": true}`, w.Body.String())
	})

	t.Run("missing week_start is a 422", func(t *testing.T) {
		h, _ := newTestHandler(t)

		w := postJSON(h.ResetWeekSchedule, "/schedule/reset", `{}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), `"week_start"`)
	})
}
