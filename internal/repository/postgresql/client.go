package postgresql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/client"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

const clientColumns = `id, name, contact_name, email, mobile_number, address, city, gstin,
	   created_at, updated_at, deleted_at`

func scanClient(row pgx.Row) (client.Client, error) {
	var found client.Client
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.ContactName,
		&found.Email,
		&found.MobileNumber,
		&found.Address,
		&found.City,
		&found.GSTIN,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.DeletedAt,
	)
	return found, err
}

// GetByID implements client.ClientRepository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND deleted_at IS NULL`

	found, err := scanClient(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return client.Client{}, client.ErrClientNotFound
	}
	if err != nil {
		return client.Client{}, err
	}
	return found, nil
}

// List implements client.ClientRepository.
func (r *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		found, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return clients, nil
}

// Create implements client.ClientRepository.
func (r *clientRepositoryImpl) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (name, contact_name, email, mobile_number, address, city, gstin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + clientColumns

	created, err := scanClient(q.QueryRow(ctx, query,
		newClient.Name,
		newClient.ContactName,
		newClient.Email,
		newClient.MobileNumber,
		newClient.Address,
		newClient.City,
		newClient.GSTIN,
	))
	if err != nil {
		return client.Client{}, err
	}
	return created, nil
}

// Update implements client.ClientRepository.
func (r *clientRepositoryImpl) Update(ctx context.Context, id string, req client.UpdateClientRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.ContactName != nil {
		appendSet("contact_name", *req.ContactName)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}
	if req.MobileNumber != nil {
		appendSet("mobile_number", *req.MobileNumber)
	}
	if req.Address != nil {
		appendSet("address", *req.Address)
	}
	if req.City != nil {
		appendSet("city", *req.City)
	}
	if req.GSTIN != nil {
		appendSet("gstin", *req.GSTIN)
	}

	query := `UPDATE clients SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $` + strconv.Itoa(argPos) + ` AND deleted_at IS NULL`
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

// SoftDelete implements client.ClientRepository.
func (r *clientRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE clients SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

// ExistsByEmail implements client.ClientRepository.
func (r *clientRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM clients WHERE email = $1 AND deleted_at IS NULL)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
