package http

import (
	"encoding/json"
	"net/http"

	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/handler/http/response"
	attendanceService "github.com/workholic/attendance-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockAction(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	TodaySchedule(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(svc attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: svc}
}

// ClockAction implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockAction(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockAction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"record": result})
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// record stays null until the first clock action of the day.
	response.Success(w, map[string]interface{}{"record": record})
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.History(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"attendance": records})
}

// TodaySchedule implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodaySchedule(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.attendanceService.TodaySchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"schedule": cfg})
}

// ListAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"attendance": records})
}
