package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/client"
)

type clientServiceImpl struct {
	clientRepo  client.ClientRepository
	invoiceRepo client.InvoiceRepository
}

func NewClientService(
	clientRepo client.ClientRepository,
	invoiceRepo client.InvoiceRepository,
) client.ClientService {
	return &clientServiceImpl{
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

// ListClients implements client.ClientService.
func (s *clientServiceImpl) ListClients(ctx context.Context) ([]client.ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, toClientResponse(c))
	}
	return items, nil
}

// GetClient implements client.ClientService.
func (s *clientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	found, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toClientResponse(found), nil
}

// CreateClient implements client.ClientService.
func (s *clientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	exists, err := s.clientRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return client.ClientResponse{}, err
	}
	if exists {
		return client.ClientResponse{}, client.ErrEmailExists
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:         req.Name,
		ContactName:  req.ContactName,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Address:      req.Address,
		City:         req.City,
		GSTIN:        req.GSTIN,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	slog.Info("client created", "client_id", created.ID)

	return toClientResponse(created), nil
}

// UpdateClient implements client.ClientService.
func (s *clientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	if err := s.clientRepo.Update(ctx, req.ID, req); err != nil {
		return client.ClientResponse{}, err
	}

	return s.GetClient(ctx, req.ID)
}

// DeleteClient implements client.ClientService.
func (s *clientServiceImpl) DeleteClient(ctx context.Context, id string) error {
	return s.clientRepo.SoftDelete(ctx, id)
}

// CreateInvoice implements client.ClientService. Totals are always computed
// server-side from the line items; the dashboard never sends them.
func (s *clientServiceImpl) CreateInvoice(ctx context.Context, req client.CreateInvoiceRequest) (client.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return client.InvoiceResponse{}, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return client.InvoiceResponse{}, err
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, req.InvoiceNumber)
	if err != nil {
		return client.InvoiceResponse{}, err
	}
	if exists {
		return client.InvoiceResponse{}, client.ErrInvoiceNumberExists
	}

	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		return client.InvoiceResponse{}, err
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		d, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return client.InvoiceResponse{}, err
		}
		dueDate = &d
	}

	newInvoice := client.Invoice{
		ClientID:      req.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        client.InvoiceStatusIssued,
		TaxPercent:    req.TaxPercent,
	}
	for _, item := range req.Items {
		newInvoice.Items = append(newInvoice.Items, client.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	newInvoice.ComputeTotals()

	created, err := s.invoiceRepo.Create(ctx, newInvoice)
	if err != nil {
		return client.InvoiceResponse{}, err
	}

	slog.Info("invoice created", "invoice_id", created.ID, "invoice_number", created.InvoiceNumber)

	return toInvoiceResponse(created), nil
}

// GetInvoice implements client.ClientService.
func (s *clientServiceImpl) GetInvoice(ctx context.Context, id string) (client.InvoiceResponse, error) {
	found, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return client.InvoiceResponse{}, err
	}
	return toInvoiceResponse(found), nil
}

// ListInvoices implements client.ClientService.
func (s *clientServiceImpl) ListInvoices(ctx context.Context, clientID string) ([]client.InvoiceResponse, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]client.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, toInvoiceResponse(inv))
	}
	return items, nil
}

// MarkInvoicePaid implements client.ClientService.
func (s *clientServiceImpl) MarkInvoicePaid(ctx context.Context, id string) (client.InvoiceResponse, error) {
	if err := s.invoiceRepo.UpdateStatus(ctx, id, client.InvoiceStatusPaid); err != nil {
		return client.InvoiceResponse{}, err
	}
	return s.GetInvoice(ctx, id)
}

func toClientResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		ContactName:  c.ContactName,
		Email:        c.Email,
		MobileNumber: c.MobileNumber,
		Address:      c.Address,
		City:         c.City,
		GSTIN:        c.GSTIN,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

func toInvoiceResponse(inv client.Invoice) client.InvoiceResponse {
	resp := client.InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		Status:        inv.Status,
		Subtotal:      inv.Subtotal,
		TaxPercent:    inv.TaxPercent,
		Total:         inv.Total,
	}
	if inv.ClientName != nil {
		resp.ClientName = *inv.ClientName
	}
	if inv.DueDate != nil {
		d := inv.DueDate.Format("2006-01-02")
		resp.DueDate = &d
	}
	for _, item := range inv.Items {
		resp.Items = append(resp.Items, client.InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount(),
		})
	}
	return resp
}
