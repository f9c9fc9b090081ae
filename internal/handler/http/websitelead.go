package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/websitelead"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type WebsiteLeadHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type WebsiteLeadHandlerImpl struct {
	leadService websitelead.LeadService
}

func NewWebsiteLeadHandler(leadService websitelead.LeadService) WebsiteLeadHandler {
	return &WebsiteLeadHandlerImpl{leadService: leadService}
}

// List implements WebsiteLeadHandler. Accepts an optional ?status= filter.
func (h *WebsiteLeadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *websitelead.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := websitelead.Status(v)
		if !s.Valid() {
			response.BadRequest(w, "status must be new, contacted, converted or discarded", nil)
			return
		}
		status = &s
	}

	leads, err := h.leadService.ListLeads(r.Context(), status)
	if err != nil {
		slog.Error("ListLeads service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, leads)
}

// Get implements WebsiteLeadHandler.
func (h *WebsiteLeadHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.leadService.GetLead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements WebsiteLeadHandler. This is a public endpoint fed by
// the website contact form.
func (h *WebsiteLeadHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq websitelead.CreateLeadRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLead decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leadService.CreateLead(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateLead service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Lead received", created)
}

// UpdateStatus implements WebsiteLeadHandler.
func (h *WebsiteLeadHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var updateReq websitelead.UpdateLeadStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateLeadStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.leadService.UpdateLeadStatus(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateLeadStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}
