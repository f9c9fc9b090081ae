package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/client"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) client.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `id, client_id, invoice_number, issue_date, due_date, status,
	   subtotal, tax_percent, total, created_at, updated_at`

func scanInvoice(row pgx.Row) (client.Invoice, error) {
	var found client.Invoice
	err := row.Scan(
		&found.ID,
		&found.ClientID,
		&found.InvoiceNumber,
		&found.IssueDate,
		&found.DueDate,
		&found.Status,
		&found.Subtotal,
		&found.TaxPercent,
		&found.Total,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// GetByID implements client.InvoiceRepository. Line items ride along.
func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id string) (client.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.client_id, i.invoice_number, i.issue_date, i.due_date, i.status,
			   i.subtotal, i.tax_percent, i.total, i.created_at, i.updated_at, c.name
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.id = $1
	`

	var found client.Invoice
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.ClientID,
		&found.InvoiceNumber,
		&found.IssueDate,
		&found.DueDate,
		&found.Status,
		&found.Subtotal,
		&found.TaxPercent,
		&found.Total,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.ClientName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return client.Invoice{}, client.ErrInvoiceNotFound
	}
	if err != nil {
		return client.Invoice{}, err
	}

	items, err := r.listItems(ctx, found.ID)
	if err != nil {
		return client.Invoice{}, err
	}
	found.Items = items
	return found, nil
}

func (r *invoiceRepositoryImpl) listItems(ctx context.Context, invoiceID string) ([]client.InvoiceItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY created_at ASC, id ASC
	`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []client.InvoiceItem
	for rows.Next() {
		var item client.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByClient implements client.InvoiceRepository.
func (r *invoiceRepositoryImpl) ListByClient(ctx context.Context, clientID string) ([]client.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE client_id = $1
		ORDER BY issue_date DESC
	`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []client.Invoice
	for rows.Next() {
		found, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Create implements client.InvoiceRepository. The invoice and its line
// items land in one transaction.
func (r *invoiceRepositoryImpl) Create(ctx context.Context, newInvoice client.Invoice) (client.Invoice, error) {
	var created client.Invoice

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO invoices (
				client_id, invoice_number, issue_date, due_date, status,
				subtotal, tax_percent, total
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING ` + invoiceColumns

		var err error
		created, err = scanInvoice(tx.QueryRow(ctx, query,
			newInvoice.ClientID,
			newInvoice.InvoiceNumber,
			newInvoice.IssueDate,
			newInvoice.DueDate,
			newInvoice.Status,
			newInvoice.Subtotal,
			newInvoice.TaxPercent,
			newInvoice.Total,
		))
		if err != nil {
			return err
		}

		for _, item := range newInvoice.Items {
			var saved client.InvoiceItem
			err := tx.QueryRow(ctx, `
				INSERT INTO invoice_items (invoice_id, description, quantity, unit_price)
				VALUES ($1, $2, $3, $4)
				RETURNING id, invoice_id, description, quantity, unit_price
			`, created.ID, item.Description, item.Quantity, item.UnitPrice).Scan(
				&saved.ID, &saved.InvoiceID, &saved.Description, &saved.Quantity, &saved.UnitPrice,
			)
			if err != nil {
				return err
			}
			created.Items = append(created.Items, saved)
		}
		return nil
	})
	if err != nil {
		return client.Invoice{}, err
	}
	return created, nil
}

// UpdateStatus implements client.InvoiceRepository.
func (r *invoiceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status client.InvoiceStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE invoices SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return client.ErrInvoiceNotFound
	}
	return nil
}

// ExistsByNumber implements client.InvoiceRepository.
func (r *invoiceRepositoryImpl) ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM invoices WHERE invoice_number = $1)`,
		invoiceNumber,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
