package handler

import (
	"net/http"

	"github.com/syazwaniiiii/hr-management-system/internal/domain"
)

// AdminRoster returns the staff list the assignment UI offers when filling
// slots. No scheduling logic lives here.
func (h *Handler) AdminRoster(w http.ResponseWriter, r *http.Request) {
	staff, err := h.repository.ListStaff()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"staffList": staff,
	})
}

// EmployeeContext only identifies the requester; the schedule itself comes
// from the week endpoint.
func (h *Handler) EmployeeContext(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"employee": domain.StaffMember{ID: myInfo.ID, Name: myInfo.Name},
	})
}
