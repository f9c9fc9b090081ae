package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/client"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	MarkInvoicePaid(w http.ResponseWriter, r *http.Request)
	DownloadInvoicePDF(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.ListClients(r.Context())
	if err != nil {
		slog.Error("ListClients service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, clients)
}

// Get implements ClientHandler.
func (h *ClientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.clientService.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.clientService.CreateClient(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Client created", created)
}

// Update implements ClientHandler.
func (h *ClientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq client.UpdateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.clientService.UpdateClient(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateClient service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements ClientHandler.
func (h *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clientService.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteClient service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Client deleted", nil)
}

// CreateInvoice implements ClientHandler.
func (h *ClientHandlerImpl) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var invoiceReq client.CreateInvoiceRequest

	if err := json.NewDecoder(r.Body).Decode(&invoiceReq); err != nil {
		slog.Error("CreateInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.clientService.CreateInvoice(r.Context(), invoiceReq)
	if err != nil {
		slog.Error("CreateInvoice service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Invoice created", created)
}

// GetInvoice implements ClientHandler.
func (h *ClientHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	found, err := h.clientService.GetInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// ListInvoices implements ClientHandler. The client id comes from the route.
func (h *ClientHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.clientService.ListInvoices(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("ListInvoices service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, invoices)
}

// MarkInvoicePaid implements ClientHandler.
func (h *ClientHandlerImpl) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	paid, err := h.clientService.MarkInvoicePaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("MarkInvoicePaid service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, paid)
}

// DownloadInvoicePDF implements ClientHandler.
func (h *ClientHandlerImpl) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	payload, filename, err := h.clientService.RenderInvoicePDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("RenderInvoicePDF service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, filename, "application/pdf", payload)
}
