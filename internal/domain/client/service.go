package client

import "context"

// ClientService defines business logic for clients and their invoices
type ClientService interface {
	ListClients(ctx context.Context) ([]ClientResponse, error)
	GetClient(ctx context.Context, id string) (ClientResponse, error)
	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	UpdateClient(ctx context.Context, req UpdateClientRequest) (ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error

	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (InvoiceResponse, error)
	ListInvoices(ctx context.Context, clientID string) ([]InvoiceResponse, error)
	MarkInvoicePaid(ctx context.Context, id string) (InvoiceResponse, error)

	// RenderInvoicePDF renders a printable invoice document
	RenderInvoicePDF(ctx context.Context, id string) ([]byte, string, error)
}
