package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unolo/fieldtrack-backend-go/internal/domain/checkin"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/client"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/geo"
	"github.com/unolo/fieldtrack-backend-go/internal/repository/postgresql"
)

type CheckinServiceImpl struct {
	tx postgresql.TxManager
	checkin.CheckinRepository
	client.ClientRepository

	radiusMeters float64
	storeTimeout time.Duration
}

func NewCheckinService(tx postgresql.TxManager, checkinRepository checkin.CheckinRepository, clientRepository client.ClientRepository, radiusMeters float64, storeTimeout time.Duration) checkin.CheckinService {
	return &CheckinServiceImpl{
		tx:                tx,
		CheckinRepository: checkinRepository,
		ClientRepository:  clientRepository,
		radiusMeters:      radiusMeters,
		storeTimeout:      storeTimeout,
	}
}

// proximityWarning compares the reported position against the client site.
// Distance never blocks a check-in; a position outside the radius only adds
// a warning to the stored event. Returns nil when either side lacks a
// coordinate or the position is inside the radius.
func (s *CheckinServiceImpl) proximityWarning(clientData client.Client, req checkin.CheckInRequest) *string {
	if !clientData.HasCoordinate() || req.Latitude == nil || req.Longitude == nil {
		return nil
	}

	distance := geo.Distance(*req.Latitude, *req.Longitude, *clientData.Latitude, *clientData.Longitude)
	if distance <= s.radiusMeters {
		return nil
	}

	msg := fmt.Sprintf("You are %.0f meters away from %s; the allowed radius is %.0f meters", distance, clientData.Name, s.radiusMeters)
	return &msg
}

// CheckIn implements checkin.CheckinService.
func (s *CheckinServiceImpl) CheckIn(ctx context.Context, employeeID string, req checkin.CheckInRequest) (checkin.CheckinResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckinResponse{}, err
	}

	clientData, err := s.ClientRepository.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return checkin.CheckinResponse{}, err
		}
		return checkin.CheckinResponse{}, fmt.Errorf("failed to get client: %w", err)
	}

	assigned, err := s.ClientRepository.IsAssigned(ctx, employeeID, req.ClientID)
	if err != nil {
		return checkin.CheckinResponse{}, fmt.Errorf("failed to check assignment: %w", err)
	}
	if !assigned {
		return checkin.CheckinResponse{}, checkin.ErrNotAssigned
	}

	warning := s.proximityWarning(clientData, req)

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	var created checkin.CheckinEvent
	err = s.tx.WithTransaction(storeCtx, func(txCtx context.Context) error {
		if err := s.LockEmployee(txCtx, employeeID); err != nil {
			return fmt.Errorf("failed to lock employee: %w", err)
		}

		active, err := s.CheckinRepository.GetActiveSession(txCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get active session: %w", err)
		}
		if active != nil {
			return checkin.ErrAlreadyCheckedIn
		}

		created, err = s.Create(txCtx, checkin.CheckinEvent{
			EmployeeID:     employeeID,
			ClientID:       req.ClientID,
			CheckinTime:    time.Now().UTC(),
			Notes:          req.Notes,
			WarningMessage: warning,
		})
		if err != nil {
			return fmt.Errorf("failed to create check-in: %w", err)
		}
		return nil
	})
	if err != nil {
		return checkin.CheckinResponse{}, err
	}

	created.ClientName = &clientData.Name
	return checkin.MapEventToResponse(created), nil
}

// CheckOut implements checkin.CheckinService.
func (s *CheckinServiceImpl) CheckOut(ctx context.Context, employeeID string) (checkin.CheckinResponse, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	var closed checkin.CheckinEvent
	err := s.tx.WithTransaction(storeCtx, func(txCtx context.Context) error {
		if err := s.LockEmployee(txCtx, employeeID); err != nil {
			return fmt.Errorf("failed to lock employee: %w", err)
		}

		active, err := s.CheckinRepository.GetActiveSession(txCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to get active session: %w", err)
		}
		if active == nil {
			return checkin.ErrNoActiveSession
		}

		closed, err = s.SetCheckoutTime(txCtx, active.ID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to set checkout time: %w", err)
		}
		closed.ClientName = active.ClientName
		return nil
	})
	if err != nil {
		return checkin.CheckinResponse{}, err
	}

	return checkin.MapEventToResponse(closed), nil
}

// GetActiveSession implements checkin.CheckinService.
func (s *CheckinServiceImpl) GetActiveSession(ctx context.Context, employeeID string) (*checkin.CheckinResponse, error) {
	active, err := s.CheckinRepository.GetActiveSession(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	if active == nil {
		return nil, nil
	}

	resp := checkin.MapEventToResponse(*active)
	return &resp, nil
}

// ListAssignedClients implements checkin.CheckinService.
func (s *CheckinServiceImpl) ListAssignedClients(ctx context.Context, employeeID string) ([]checkin.ClientResponse, error) {
	clients, err := s.ListAssignedTo(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned clients: %w", err)
	}

	responses := make([]checkin.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, checkin.ClientResponse{
			ID:        c.ID,
			Name:      c.Name,
			Address:   c.Address,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}
	return responses, nil
}
