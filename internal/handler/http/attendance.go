package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/reboot-ai/crm-backend-go/internal/domain/attendance"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Window(w http.ResponseWriter, r *http.Request)
	DayCount(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq attendance.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checked in", record)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockOutReq attendance.ClockOutRequest

	if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// Window implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Window(w http.ResponseWriter, r *http.Request) {
	windowReq := attendance.WindowRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	window, err := h.attendanceService.GetWindow(r.Context(), windowReq)
	if err != nil {
		slog.Error("Window service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, window)
}

// DayCount implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DayCount(w http.ResponseWriter, r *http.Request) {
	dayCountReq := attendance.DayCountRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  r.URL.Query().Get("startdate"),
		EndDate:    r.URL.Query().Get("enddate"),
	}

	count, err := h.attendanceService.GetDayCount(r.Context(), dayCountReq)
	if err != nil {
		slog.Error("DayCount service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, count)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		EmployeeID: queryParam(r, "employee_id"),
		StartDate:  queryParam(r, "startdate"),
		EndDate:    queryParam(r, "enddate"),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}
	// The service validates a copy, so apply the page defaults here too or
	// the meta block reports zeros.
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((result.TotalItems + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	response.SuccessWithMeta(w, result.Items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: result.TotalItems,
		TotalPages: totalPages,
	})
}

// queryParam returns a pointer to the query value, or nil when absent.
func queryParam(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// queryInt parses an integer query value; missing or malformed values
// come back as zero so the filter defaults apply.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
