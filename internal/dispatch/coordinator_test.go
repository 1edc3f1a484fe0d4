package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"io.resqforce.server/internal/apperrors"
	"io.resqforce.server/internal/geo"
	agencymodels "io.resqforce.server/internal/models/agency"
	emergencymodels "io.resqforce.server/internal/models/emergency"
	"io.resqforce.server/internal/notify"
)

type fakeStore struct {
	agencies  []agencymodels.Agency
	created   []emergencymodels.Emergency
	createErr error
	listErr   error
}

func (f *fakeStore) CreateEmergency(_ context.Context, e emergencymodels.Emergency) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, e)
	return "em-1", nil
}

func (f *fakeStore) ListAgencies(context.Context) ([]agencymodels.Agency, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.agencies, nil
}

type fakeNotifier struct {
	mu         sync.Mutex
	err        error
	recipients []string
	payloads   []notify.Assignment
}

func (f *fakeNotifier) NotifyAssignment(_ context.Context, recipient string, a notify.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipients = append(f.recipients, recipient)
	f.payloads = append(f.payloads, a)
	return f.err
}

func (f *fakeNotifier) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.recipients...)
}

func newTestCoordinator(st *fakeStore, n notify.Notifier) *Coordinator {
	return NewCoordinator(st, st, n, zap.NewNop().Sugar())
}

func validReport() Report {
	return Report{
		Coord:       geo.NewCoordinate(28.71, 77.11),
		Description: "building collapse",
		Tag:         "structural",
		Severity:    emergencymodels.SeverityHigh,
	}
}

func TestReportValidationBeforeAnySideEffect(t *testing.T) {
	st := &fakeStore{}
	c := newTestCoordinator(st, &fakeNotifier{})

	cases := map[string]Report{
		"missing coord":       {Description: "d", Tag: "t"},
		"missing description": {Coord: geo.NewCoordinate(1, 2), Tag: "t"},
		"missing tag":         {Coord: geo.NewCoordinate(1, 2), Description: "d"},
	}
	for name, r := range cases {
		_, err := c.Report(context.Background(), r)
		require.Error(t, err, name)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), name)
	}
	assert.Empty(t, st.created, "validation failures must not persist anything")
}

func TestReportPersistsPendingWithDefaults(t *testing.T) {
	st := &fakeStore{}
	c := newTestCoordinator(st, &fakeNotifier{})

	r := validReport()
	r.Severity = ""
	outcome, err := c.Report(context.Background(), r)
	require.NoError(t, err)
	c.Wait()

	assert.Equal(t, "em-1", outcome.EmergencyID)
	require.Len(t, st.created, 1)
	stored := st.created[0]
	assert.Equal(t, emergencymodels.StatusPending, stored.Status)
	assert.Equal(t, emergencymodels.SeverityLow, stored.Severity)
	assert.Equal(t, "public", stored.ReportedBy)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestReportPersistenceFailureAbortsDispatch(t *testing.T) {
	st := &fakeStore{createErr: errors.New("connection refused")}
	n := &fakeNotifier{}
	c := newTestCoordinator(st, n)

	_, err := c.Report(context.Background(), validReport())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindDependency))
	c.Wait()
	assert.Empty(t, n.sent())
}

func TestReportNotifiesNearestEligibleAgency(t *testing.T) {
	st := &fakeStore{agencies: []agencymodels.Agency{
		{ID: "local", Email: "local@rescue.example", Role: agencymodels.RoleAgency, Coord: geo.NewCoordinate(28.70, 77.10)},
		{ID: "ndrf", Email: "ndrf@rescue.example", Role: agencymodels.RoleHeavyResponse, Coord: geo.NewCoordinate(28.61, 77.20)},
	}}
	n := &fakeNotifier{}
	c := newTestCoordinator(st, n)

	outcome, err := c.Report(context.Background(), validReport())
	require.NoError(t, err)
	c.Wait()

	require.NotNil(t, outcome.Selected)
	assert.Equal(t, "local", outcome.Selected.ID)
	assert.True(t, outcome.NotificationQueued)
	assert.Equal(t, []string{"local@rescue.example"}, n.sent())

	require.Len(t, n.payloads, 1)
	payload := n.payloads[0]
	assert.Equal(t, "em-1", payload.EmergencyID)
	assert.Equal(t, "28.71000, 77.11000", payload.Location)
	assert.Equal(t, st.created[0].CreatedAt, payload.ReportedAt)
}

func TestReportEmptyRosterStillSucceeds(t *testing.T) {
	st := &fakeStore{}
	n := &fakeNotifier{}
	c := newTestCoordinator(st, n)

	outcome, err := c.Report(context.Background(), validReport())
	require.NoError(t, err)
	c.Wait()

	assert.Nil(t, outcome.Selected)
	assert.False(t, outcome.NotificationQueued)
	assert.Empty(t, n.sent())
	assert.Len(t, st.created, 1, "ingestion must succeed without candidates")
}

func TestReportSelectedAgencyWithoutEmailIsSkipped(t *testing.T) {
	st := &fakeStore{agencies: []agencymodels.Agency{
		{ID: "mute", Role: agencymodels.RoleAgency, Coord: geo.NewCoordinate(28.70, 77.10)},
	}}
	n := &fakeNotifier{}
	c := newTestCoordinator(st, n)

	outcome, err := c.Report(context.Background(), validReport())
	require.NoError(t, err)
	c.Wait()

	assert.Nil(t, outcome.Selected)
	assert.Empty(t, n.sent())
}

func TestReportNotifierFailureDoesNotAffectAcceptance(t *testing.T) {
	st := &fakeStore{agencies: []agencymodels.Agency{
		{ID: "local", Email: "local@rescue.example", Role: agencymodels.RoleAgency, Coord: geo.NewCoordinate(28.70, 77.10)},
	}}
	n := &fakeNotifier{err: errors.New("smtp unreachable")}
	c := newTestCoordinator(st, n)

	outcome, err := c.Report(context.Background(), validReport())
	require.NoError(t, err)
	c.Wait()

	assert.Equal(t, "em-1", outcome.EmergencyID)
	require.NotNil(t, outcome.Selected)
	assert.Len(t, st.created, 1)
}

func TestReportRosterLoadFailureIsNonFatal(t *testing.T) {
	st := &fakeStore{listErr: errors.New("timeout")}
	n := &fakeNotifier{}
	c := newTestCoordinator(st, n)

	outcome, err := c.Report(context.Background(), validReport())
	require.NoError(t, err, "report is accepted once persisted")
	c.Wait()

	assert.Nil(t, outcome.Selected)
	assert.Empty(t, n.sent())
}
