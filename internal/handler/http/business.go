package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/business"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type BusinessHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
}

type BusinessHandlerImpl struct {
	businessService business.BusinessService
}

func NewBusinessHandler(businessService business.BusinessService) BusinessHandler {
	return &BusinessHandlerImpl{businessService: businessService}
}

// List implements BusinessHandler. The query parameter names are part of
// the dashboard's contract and must not be renamed.
func (h *BusinessHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := business.BusinessFilter{
		Status:       queryParam(r, "status"),
		Category:     queryParam(r, "category"),
		City:         queryParam(r, "city"),
		MobileNumber: queryParam(r, "mobileNumber"),

		CreatedStartDate:     queryParam(r, "createdstartdate"),
		CreatedEndDate:       queryParam(r, "createdenddate"),
		FollowupStartDate:    queryParam(r, "followupstartdate"),
		FollowupEndDate:      queryParam(r, "followupenddate"),
		AppointmentStartDate: queryParam(r, "appointmentstartdate"),
		AppointmentEndDate:   queryParam(r, "appointmentenddate"),
		VisitDateStart:       queryParam(r, "visitdatestart"),
		VisitDateEnd:         queryParam(r, "visitdateend"),

		TelecallerID:      queryParam(r, "telecallerId"),
		DigitalMarketerID: queryParam(r, "digitalMarketerId"),
		BdeID:             queryParam(r, "bdeId"),
		AssignedTo:        queryParam(r, "assignedTo"),
		LeadBy:            queryParam(r, "leadBy"),
		CreatedBy:         queryParam(r, "createdBy"),

		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	result, err := h.businessService.ListBusinesses(r.Context(), filter)
	if err != nil {
		slog.Error("ListBusinesses service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, &response.Meta{
		Page:       result.Page,
		Limit:      filter.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// Get implements BusinessHandler.
func (h *BusinessHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.businessService.GetBusiness(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements BusinessHandler.
func (h *BusinessHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq business.CreateBusinessRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateBusiness decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.businessService.CreateBusiness(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateBusiness service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Business lead created", created)
}

// Update implements BusinessHandler.
func (h *BusinessHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq business.UpdateBusinessRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateBusiness decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.businessService.UpdateBusiness(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateBusiness service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Assign implements BusinessHandler.
func (h *BusinessHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var assignReq business.AssignBusinessRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignBusiness decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	assignReq.ID = chi.URLParam(r, "id")

	assigned, err := h.businessService.AssignBusiness(r.Context(), assignReq)
	if err != nil {
		slog.Error("AssignBusiness service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, assigned)
}
