package client

import "context"

type ClientRepository interface {
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, newClient Client) (Client, error)
	Update(ctx context.Context, id string, req UpdateClientRequest) error
	SoftDelete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (Invoice, error)
	ListByClient(ctx context.Context, clientID string) ([]Invoice, error)
	Create(ctx context.Context, newInvoice Invoice) (Invoice, error)
	UpdateStatus(ctx context.Context, id string, status InvoiceStatus) error
	ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error)
}
