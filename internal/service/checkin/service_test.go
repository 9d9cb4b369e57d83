package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/checkin"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/client"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/validator"
)

const (
	testRadius  = 500.0
	testTimeout = 5 * time.Second
)

// fakeTxManager runs the callback directly; the transaction boundary is
// exercised against a live database elsewhere.
type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeCheckinRepo struct {
	createFn           func(ctx context.Context, ev checkin.CheckinEvent) (checkin.CheckinEvent, error)
	getActiveSessionFn func(ctx context.Context, employeeID string) (*checkin.CheckinEvent, error)
	setCheckoutTimeFn  func(ctx context.Context, eventID string, t time.Time) (checkin.CheckinEvent, error)

	locked []string
}

func (f *fakeCheckinRepo) Create(ctx context.Context, ev checkin.CheckinEvent) (checkin.CheckinEvent, error) {
	return f.createFn(ctx, ev)
}

func (f *fakeCheckinRepo) GetActiveSession(ctx context.Context, employeeID string) (*checkin.CheckinEvent, error) {
	return f.getActiveSessionFn(ctx, employeeID)
}

func (f *fakeCheckinRepo) SetCheckoutTime(ctx context.Context, eventID string, t time.Time) (checkin.CheckinEvent, error) {
	return f.setCheckoutTimeFn(ctx, eventID, t)
}

func (f *fakeCheckinRepo) LockEmployee(ctx context.Context, employeeID string) error {
	f.locked = append(f.locked, employeeID)
	return nil
}

type fakeClientRepo struct {
	clients     map[string]client.Client
	assignments map[string]bool // employeeID + "/" + clientID
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return client.Client{}, client.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) IsAssigned(ctx context.Context, employeeID string, clientID string) (bool, error) {
	return f.assignments[employeeID+"/"+clientID], nil
}

func (f *fakeClientRepo) ListAssignedTo(ctx context.Context, employeeID string) ([]client.Client, error) {
	var out []client.Client
	for id, c := range f.clients {
		if f.assignments[employeeID+"/"+id] {
			out = append(out, c)
		}
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func newTestClientRepo() *fakeClientRepo {
	return &fakeClientRepo{
		clients: map[string]client.Client{
			"client-1": {
				ID:        "client-1",
				Name:      "Acme Corp",
				Address:   "12 Industrial Way",
				Latitude:  ptr(28.4595),
				Longitude: ptr(77.0266),
			},
			"client-2": {
				ID:      "client-2",
				Name:    "Beta Ltd",
				Address: "9 Harbor Road",
			},
		},
		assignments: map[string]bool{
			"emp-1/client-1": true,
			"emp-1/client-2": true,
		},
	}
}

func newIdleCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{
		getActiveSessionFn: func(ctx context.Context, employeeID string) (*checkin.CheckinEvent, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, ev checkin.CheckinEvent) (checkin.CheckinEvent, error) {
			ev.ID = "event-1"
			ev.CreatedAt = ev.CheckinTime
			ev.UpdatedAt = ev.CheckinTime
			return ev, nil
		},
	}
}

func TestCheckIn_Success(t *testing.T) {
	checkinRepo := newIdleCheckinRepo()
	svc := NewCheckinService(fakeTxManager{}, checkinRepo, newTestClientRepo(), testRadius, testTimeout)

	req := checkin.CheckInRequest{
		ClientID:  "client-1",
		Latitude:  ptr(28.4595),
		Longitude: ptr(77.0266),
	}
	resp, err := svc.CheckIn(context.Background(), "emp-1", req)

	require.NoError(t, err)
	assert.Equal(t, "event-1", resp.ID)
	assert.Equal(t, "client-1", resp.ClientID)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Acme Corp", *resp.ClientName)
	assert.NotEmpty(t, resp.CheckinTime)
	assert.Nil(t, resp.CheckoutTime)
	assert.Nil(t, resp.WarningMessage)
	assert.Equal(t, []string{"emp-1"}, checkinRepo.locked)
}

func TestCheckIn_MissingClientID(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	_, err := svc.CheckIn(context.Background(), "emp-1", checkin.CheckInRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Client ID is required", verrs[0].Message)
}

func TestCheckIn_HalfSuppliedLocation(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	req := checkin.CheckInRequest{ClientID: "client-1", Latitude: ptr(28.0)}
	_, err := svc.CheckIn(context.Background(), "emp-1", req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestCheckIn_UnknownClient(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	_, err := svc.CheckIn(context.Background(), "emp-1", checkin.CheckInRequest{ClientID: "client-nope"})

	assert.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestCheckIn_NotAssigned(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	_, err := svc.CheckIn(context.Background(), "emp-2", checkin.CheckInRequest{ClientID: "client-1"})

	assert.ErrorIs(t, err, checkin.ErrNotAssigned)
}

func TestCheckIn_AlreadyCheckedIn(t *testing.T) {
	checkinRepo := newIdleCheckinRepo()
	checkinRepo.getActiveSessionFn = func(ctx context.Context, employeeID string) (*checkin.CheckinEvent, error) {
		return &checkin.CheckinEvent{ID: "event-0", EmployeeID: employeeID, ClientID: "client-2"}, nil
	}
	svc := NewCheckinService(fakeTxManager{}, checkinRepo, newTestClientRepo(), testRadius, testTimeout)

	_, err := svc.CheckIn(context.Background(), "emp-1", checkin.CheckInRequest{ClientID: "client-1"})

	assert.ErrorIs(t, err, checkin.ErrAlreadyCheckedIn)
}

func TestCheckIn_FarAwayStillSucceedsWithWarning(t *testing.T) {
	checkinRepo := newIdleCheckinRepo()
	svc := NewCheckinService(fakeTxManager{}, checkinRepo, newTestClientRepo(), testRadius, testTimeout)

	// Roughly 1.1 km north of the site.
	req := checkin.CheckInRequest{
		ClientID:  "client-1",
		Latitude:  ptr(28.4695),
		Longitude: ptr(77.0266),
	}
	resp, err := svc.CheckIn(context.Background(), "emp-1", req)

	require.NoError(t, err)
	require.NotNil(t, resp.WarningMessage)
	assert.Contains(t, *resp.WarningMessage, "meters away from Acme Corp")
	assert.Contains(t, *resp.WarningMessage, "500 meters")
}

func TestCheckIn_NoClientCoordinateSkipsProximity(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	req := checkin.CheckInRequest{
		ClientID:  "client-2",
		Latitude:  ptr(0.0),
		Longitude: ptr(0.0),
	}
	resp, err := svc.CheckIn(context.Background(), "emp-1", req)

	require.NoError(t, err)
	assert.Nil(t, resp.WarningMessage)
}

func TestCheckIn_NoReportedLocationSkipsProximity(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	resp, err := svc.CheckIn(context.Background(), "emp-1", checkin.CheckInRequest{ClientID: "client-1"})

	require.NoError(t, err)
	assert.Nil(t, resp.WarningMessage)
}

func TestCheckOut_Success(t *testing.T) {
	checkinTime := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	checkinRepo := newIdleCheckinRepo()
	checkinRepo.getActiveSessionFn = func(ctx context.Context, employeeID string) (*checkin.CheckinEvent, error) {
		return &checkin.CheckinEvent{
			ID:          "event-0",
			EmployeeID:  employeeID,
			ClientID:    "client-1",
			CheckinTime: checkinTime,
			ClientName:  ptr("Acme Corp"),
		}, nil
	}
	checkinRepo.setCheckoutTimeFn = func(ctx context.Context, eventID string, ts time.Time) (checkin.CheckinEvent, error) {
		assert.Equal(t, "event-0", eventID)
		return checkin.CheckinEvent{
			ID:           eventID,
			EmployeeID:   "emp-1",
			ClientID:     "client-1",
			CheckinTime:  checkinTime,
			CheckoutTime: &ts,
		}, nil
	}
	svc := NewCheckinService(fakeTxManager{}, checkinRepo, newTestClientRepo(), testRadius, testTimeout)

	resp, err := svc.CheckOut(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "event-0", resp.ID)
	require.NotNil(t, resp.CheckoutTime)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Acme Corp", *resp.ClientName)
	assert.Equal(t, []string{"emp-1"}, checkinRepo.locked)
}

func TestCheckOut_NoActiveSession(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	_, err := svc.CheckOut(context.Background(), "emp-1")

	assert.ErrorIs(t, err, checkin.ErrNoActiveSession)
}

func TestGetActiveSession_Idle(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	resp, err := svc.GetActiveSession(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetActiveSession_Active(t *testing.T) {
	checkinRepo := newIdleCheckinRepo()
	checkinRepo.getActiveSessionFn = func(ctx context.Context, employeeID string) (*checkin.CheckinEvent, error) {
		return &checkin.CheckinEvent{
			ID:          "event-0",
			EmployeeID:  employeeID,
			ClientID:    "client-1",
			CheckinTime: time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
			ClientName:  ptr("Acme Corp"),
		}, nil
	}
	svc := NewCheckinService(fakeTxManager{}, checkinRepo, newTestClientRepo(), testRadius, testTimeout)

	resp, err := svc.GetActiveSession(context.Background(), "emp-1")

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "event-0", resp.ID)
	assert.Nil(t, resp.CheckoutTime)
}

func TestListAssignedClients(t *testing.T) {
	svc := NewCheckinService(fakeTxManager{}, newIdleCheckinRepo(), newTestClientRepo(), testRadius, testTimeout)

	clients, err := svc.ListAssignedClients(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Len(t, clients, 2)

	none, err := svc.ListAssignedClients(context.Background(), "emp-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
