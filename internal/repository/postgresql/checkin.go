package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/checkin"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/database"
)

type checkinRepository struct {
	db *database.DB
}

func NewCheckinRepository(db *database.DB) checkin.CheckinRepository {
	return &checkinRepository{db: db}
}

// LockEmployee implements checkin.CheckinRepository. The advisory lock is
// keyed on the employee id and held until the surrounding transaction ends,
// so two concurrent check-ins for the same employee cannot both observe an
// idle state.
func (r *checkinRepository) LockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, employeeID); err != nil {
		return fmt.Errorf("failed to lock employee %s: %w", employeeID, err)
	}
	return nil
}

// Create implements checkin.CheckinRepository.
func (r *checkinRepository) Create(ctx context.Context, ev checkin.CheckinEvent) (checkin.CheckinEvent, error) {
	q := GetQuerier(ctx, r.db)

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	query := `
		INSERT INTO checkins (id, employee_id, client_id, checkin_time, notes, warning_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ev.ID,
		ev.EmployeeID,
		ev.ClientID,
		ev.CheckinTime,
		ev.Notes,
		ev.WarningMessage,
	).Scan(&ev.CreatedAt, &ev.UpdatedAt)

	if err != nil {
		return checkin.CheckinEvent{}, fmt.Errorf("failed to create check-in event: %w", err)
	}

	return ev, nil
}

// GetActiveSession implements checkin.CheckinRepository.
func (r *checkinRepository) GetActiveSession(ctx context.Context, employeeID string) (*checkin.CheckinEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ch.id, ch.employee_id, ch.client_id, ch.checkin_time, ch.checkout_time,
		       ch.notes, ch.warning_message, ch.created_at, ch.updated_at,
		       c.name AS client_name
		FROM checkins ch
		INNER JOIN clients c ON c.id = ch.client_id
		WHERE ch.employee_id = $1
		  AND ch.checkout_time IS NULL
		ORDER BY ch.checkin_time DESC
		LIMIT 1
	`

	var ev checkin.CheckinEvent
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&ev.ID, &ev.EmployeeID, &ev.ClientID, &ev.CheckinTime, &ev.CheckoutTime,
		&ev.Notes, &ev.WarningMessage, &ev.CreatedAt, &ev.UpdatedAt,
		&ev.ClientName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // employee is idle
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}

	return &ev, nil
}

// SetCheckoutTime implements checkin.CheckinRepository.
func (r *checkinRepository) SetCheckoutTime(ctx context.Context, eventID string, t time.Time) (checkin.CheckinEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE checkins
		SET checkout_time = $2, updated_at = NOW()
		WHERE id = $1 AND checkout_time IS NULL
		RETURNING id, employee_id, client_id, checkin_time, checkout_time,
		          notes, warning_message, created_at, updated_at
	`

	var ev checkin.CheckinEvent
	err := q.QueryRow(ctx, query, eventID, t).Scan(
		&ev.ID, &ev.EmployeeID, &ev.ClientID, &ev.CheckinTime, &ev.CheckoutTime,
		&ev.Notes, &ev.WarningMessage, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return checkin.CheckinEvent{}, checkin.ErrNoActiveSession
		}
		return checkin.CheckinEvent{}, fmt.Errorf("failed to set checkout time: %w", err)
	}

	return ev, nil
}
