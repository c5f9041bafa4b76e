package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/syazwaniiiii/hr-management-system/internal/domain"
)

// AssignShift places an employee into a shift slot; repeated calls for the
// same slot converge to a single assignment with the last employee winning.
func (h *Handler) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID int64  `json:"employee_id" validate:"required"`
		ShiftType  string `json:"shift_type" validate:"required"`
		WeekStart  string `json:"week_start" validate:"required"`
		Day        string `json:"day" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.validationFailed(w, r, err)
		return
	}

	assignment, err := h.schedule.Assign(req.EmployeeID, req.ShiftType, req.WeekStart, req.Day)
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.notifyShiftAssigned(r, assignment)

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"schedule": assignment,
	})
}

// GetWeekSchedule returns the week grid: day -> [morning, evening] employee
// ids, only for days that have at least one assignment.
func (h *Handler) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("week_start")
	if weekStart == "" {
		h.badRequest(w, r, "week_start is required")
		return
	}

	grid, err := h.schedule.GetWeek(weekStart)
	if err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"assignments": grid,
	})
}

func (h *Handler) ResetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeekStart string `json:"week_start" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.validationFailed(w, r, err)
		return
	}

	if err := h.schedule.ResetWeek(req.WeekStart); err != nil {
		h.scheduleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
	})
}

// notifyShiftAssigned queues a notification mail for the assigned employee.
// Delivery is best effort: the assignment is already committed, so a broker
// or lookup failure is logged and the request still succeeds.
func (h *Handler) notifyShiftAssigned(r *http.Request, assignment *domain.Assignment) {
	if h.mailChannel == nil {
		return
	}

	employee, err := h.repository.GetEmployeeByID(assignment.EmployeeID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("could not load employee for shift notification", "employee_id", assignment.EmployeeID, "error", err)
		}
		return
	}

	mailMessage := domain.MailMessage{
		Type: "shift_assigned",
		To:   employee.Email,
		Data: domain.ShiftAssignedMailData{
			Name:      employee.Name,
			ShiftType: string(assignment.ShiftType),
			Day:       assignment.Day,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Warn("could not serialize shift notification", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		slog.Warn("could not publish shift notification", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}
