package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/client"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/database"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

// GetByID implements client.ClientRepository.
func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var c client.Client
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Address, &c.Latitude, &c.Longitude,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client by id: %w", err)
	}

	return c, nil
}

// IsAssigned implements client.ClientRepository.
func (r *clientRepository) IsAssigned(ctx context.Context, employeeID string, clientID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM assignments
			WHERE employee_id = $1
			  AND client_id = $2
		)
	`

	var assigned bool
	if err := q.QueryRow(ctx, query, employeeID, clientID).Scan(&assigned); err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}

	return assigned, nil
}

// ListAssignedTo implements client.ClientRepository.
func (r *clientRepository) ListAssignedTo(ctx context.Context, employeeID string) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, c.address, c.latitude, c.longitude, c.created_at, c.updated_at
		FROM clients c
		INNER JOIN assignments a ON a.client_id = c.id
		WHERE a.employee_id = $1
		ORDER BY c.name ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assigned clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.Latitude, &c.Longitude,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}
