package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/report"
	"github.com/unolo/fieldtrack-backend-go/internal/pkg/validator"
)

type fakeReportRepo struct {
	roster []report.TeamMember
	events []report.TeamEvent

	gotManagerID string
	gotDate      string
}

func (f *fakeReportRepo) GetDirectReports(ctx context.Context, managerID string) ([]report.TeamMember, error) {
	f.gotManagerID = managerID
	return f.roster, nil
}

func (f *fakeReportRepo) ListTeamEventsOnDate(ctx context.Context, managerID string, date string) ([]report.TeamEvent, error) {
	f.gotDate = date
	return f.events, nil
}

func ptr[T any](v T) *T { return &v }

// at builds a local-time instant so formatted clock times are stable across
// test environments.
func at(hour, min int) time.Time {
	return time.Date(2026, 8, 27, hour, min, 0, 0, time.Local)
}

func TestDailySummary_AggregatesPerEmployee(t *testing.T) {
	repo := &fakeReportRepo{
		roster: []report.TeamMember{
			{ID: "emp-1", Name: "Asha Verma", Email: "asha@example.com"},
			{ID: "emp-2", Name: "Rohan Iyer", Email: "rohan@example.com"},
		},
		events: []report.TeamEvent{
			{EmployeeID: "emp-1", ClientName: "Acme Corp", CheckinTime: at(9, 0), CheckoutTime: ptr(at(10, 30))},
			{EmployeeID: "emp-1", ClientName: "Beta Ltd", CheckinTime: at(11, 0)},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.DailySummary(context.Background(), "mgr-1", "2026-08-27")

	require.NoError(t, err)
	assert.Equal(t, "2026-08-27", result.Date)
	assert.Equal(t, "mgr-1", repo.gotManagerID)
	require.Len(t, result.Records, 2)

	asha := result.Records[0]
	assert.Equal(t, "Asha Verma", asha.EmployeeName)
	assert.Equal(t, report.StatusPresent, asha.Status)
	require.NotNil(t, asha.FirstCheckin)
	assert.Equal(t, "09:00:00", *asha.FirstCheckin)
	require.NotNil(t, asha.LastCheckout)
	assert.Equal(t, report.ActiveMarker, *asha.LastCheckout)
	assert.Equal(t, 2, asha.TotalCheckins)
	assert.Equal(t, 1.5, asha.TotalHours)
	assert.Equal(t, []string{"Acme Corp", "Beta Ltd"}, asha.ClientsVisited)

	rohan := result.Records[1]
	assert.Equal(t, "Rohan Iyer", rohan.EmployeeName)
	assert.Equal(t, report.StatusAbsent, rohan.Status)
	assert.Nil(t, rohan.FirstCheckin)
	assert.Nil(t, rohan.LastCheckout)
	assert.Equal(t, 0, rohan.TotalCheckins)
	assert.Equal(t, 0.0, rohan.TotalHours)
	assert.NotNil(t, rohan.ClientsVisited)
	assert.Empty(t, rohan.ClientsVisited)
}

func TestDailySummary_LastCheckoutFromLastEvent(t *testing.T) {
	repo := &fakeReportRepo{
		roster: []report.TeamMember{{ID: "emp-1", Name: "Asha Verma"}},
		events: []report.TeamEvent{
			{EmployeeID: "emp-1", ClientName: "Acme Corp", CheckinTime: at(9, 0), CheckoutTime: ptr(at(12, 0))},
			{EmployeeID: "emp-1", ClientName: "Beta Ltd", CheckinTime: at(13, 0), CheckoutTime: ptr(at(14, 15))},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.DailySummary(context.Background(), "mgr-1", "2026-08-27")

	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	require.NotNil(t, result.Records[0].LastCheckout)
	assert.Equal(t, "14:15:00", *result.Records[0].LastCheckout)
	assert.Equal(t, 4.3, result.Records[0].TotalHours)
}

func TestDailySummary_DedupesRepeatVisits(t *testing.T) {
	repo := &fakeReportRepo{
		roster: []report.TeamMember{{ID: "emp-1", Name: "Asha Verma"}},
		events: []report.TeamEvent{
			{EmployeeID: "emp-1", ClientName: "Acme Corp", CheckinTime: at(9, 0), CheckoutTime: ptr(at(10, 0))},
			{EmployeeID: "emp-1", ClientName: "Beta Ltd", CheckinTime: at(10, 30), CheckoutTime: ptr(at(11, 0))},
			{EmployeeID: "emp-1", ClientName: "Acme Corp", CheckinTime: at(11, 30), CheckoutTime: ptr(at(12, 0))},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.DailySummary(context.Background(), "mgr-1", "2026-08-27")

	require.NoError(t, err)
	record := result.Records[0]
	assert.Equal(t, 3, record.TotalCheckins)
	assert.Equal(t, []string{"Acme Corp", "Beta Ltd"}, record.ClientsVisited)
}

func TestDailySummary_IgnoresEventsOutsideRoster(t *testing.T) {
	repo := &fakeReportRepo{
		roster: []report.TeamMember{{ID: "emp-1", Name: "Asha Verma"}},
		events: []report.TeamEvent{
			{EmployeeID: "emp-9", ClientName: "Acme Corp", CheckinTime: at(9, 0)},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.DailySummary(context.Background(), "mgr-1", "2026-08-27")

	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, report.StatusAbsent, result.Records[0].Status)
}

func TestDailySummary_EmptyDateDefaultsToToday(t *testing.T) {
	repo := &fakeReportRepo{roster: []report.TeamMember{}}
	svc := NewReportService(repo)

	result, err := svc.DailySummary(context.Background(), "mgr-1", "")

	require.NoError(t, err)
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, result.Date)
	assert.Equal(t, today, repo.gotDate)
}

func TestDailySummary_MalformedDate(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	_, err := svc.DailySummary(context.Background(), "mgr-1", "27-08-2026")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "date", verrs[0].Field)
}

func TestSummarize_Idempotent(t *testing.T) {
	roster := []report.TeamMember{{ID: "emp-1", Name: "Asha Verma"}}
	events := []report.TeamEvent{
		{EmployeeID: "emp-1", ClientName: "Acme Corp", CheckinTime: at(9, 0), CheckoutTime: ptr(at(10, 0))},
	}

	first := summarize(roster, events)
	second := summarize(roster, events)

	assert.Equal(t, first, second)
}
