package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListTelecallers(w http.ResponseWriter, r *http.Request)
	ListDigitalMarketers(w http.ResponseWriter, r *http.Request)
	ListBDEs(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MergeTargets(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// listByRole serves the three legacy per-role endpoints. The extended shape
// (statuscount + collections) is always produced; the dashboard ignores the
// extra fields on screens that do not need them.
func (h *EmployeeHandlerImpl) listByRole(w http.ResponseWriter, r *http.Request, role employee.Role) {
	items, err := h.employeeService.ListByRole(r.Context(), role, true)
	if err != nil {
		slog.Error("ListByRole service error", "role", role, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// ListTelecallers implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListTelecallers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, employee.RoleTelecaller)
}

// ListDigitalMarketers implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListDigitalMarketers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, employee.RoleDigitalMarketer)
}

// ListBDEs implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListBDEs(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, employee.RoleBDE)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.employeeService.UpdateEmployee(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// MergeTargets implements EmployeeHandler. This is the legacy
// PUT /api/users/users/{id} contract: the body carries a single-element
// targets array and the backend merges by (month, year).
func (h *EmployeeHandlerImpl) MergeTargets(w http.ResponseWriter, r *http.Request) {
	var mergeReq employee.MergeTargetsRequest

	if err := json.NewDecoder(r.Body).Decode(&mergeReq); err != nil {
		slog.Error("MergeTargets decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.MergeTargets(r.Context(), chi.URLParam(r, "id"), mergeReq)
	if err != nil {
		slog.Error("MergeTargets service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}
