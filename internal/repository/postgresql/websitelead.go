package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/websitelead"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type leadRepositoryImpl struct {
	db *database.DB
}

func NewWebsiteLeadRepository(db *database.DB) websitelead.LeadRepository {
	return &leadRepositoryImpl{db: db}
}

const leadColumns = `id, name, email, mobile_number, message, source, status, created_at, updated_at`

func scanLead(row pgx.Row) (websitelead.WebsiteLead, error) {
	var found websitelead.WebsiteLead
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.Email,
		&found.MobileNumber,
		&found.Message,
		&found.Source,
		&found.Status,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// GetByID implements websitelead.LeadRepository.
func (r *leadRepositoryImpl) GetByID(ctx context.Context, id string) (websitelead.WebsiteLead, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leadColumns + ` FROM website_leads WHERE id = $1`

	found, err := scanLead(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return websitelead.WebsiteLead{}, websitelead.ErrLeadNotFound
	}
	if err != nil {
		return websitelead.WebsiteLead{}, err
	}
	return found, nil
}

// List implements websitelead.LeadRepository.
func (r *leadRepositoryImpl) List(ctx context.Context, status *websitelead.Status) ([]websitelead.WebsiteLead, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leadColumns + ` FROM website_leads`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []websitelead.WebsiteLead
	for rows.Next() {
		found, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}

// Create implements websitelead.LeadRepository.
func (r *leadRepositoryImpl) Create(ctx context.Context, newLead websitelead.WebsiteLead) (websitelead.WebsiteLead, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO website_leads (name, email, mobile_number, message, source, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leadColumns

	created, err := scanLead(q.QueryRow(ctx, query,
		newLead.Name,
		newLead.Email,
		newLead.MobileNumber,
		newLead.Message,
		newLead.Source,
		newLead.Status,
	))
	if err != nil {
		return websitelead.WebsiteLead{}, err
	}
	return created, nil
}

// UpdateStatus implements websitelead.LeadRepository.
func (r *leadRepositoryImpl) UpdateStatus(ctx context.Context, id string, status websitelead.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE website_leads SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return websitelead.ErrLeadNotFound
	}
	return nil
}
