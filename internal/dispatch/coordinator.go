package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"io.resqforce.server/internal/apperrors"
	"io.resqforce.server/internal/geo"
	agencymodels "io.resqforce.server/internal/models/agency"
	emergencymodels "io.resqforce.server/internal/models/emergency"
	"io.resqforce.server/internal/notify"
)

// notifyTimeout bounds a single background notification attempt.
const notifyTimeout = 30 * time.Second

// EmergencyWriter persists a newly accepted emergency.
type EmergencyWriter interface {
	CreateEmergency(ctx context.Context, e emergencymodels.Emergency) (string, error)
}

// AgencyLister loads the current roster snapshot.
type AgencyLister interface {
	ListAgencies(ctx context.Context) ([]agencymodels.Agency, error)
}

// Report is a citizen-submitted emergency before acceptance.
type Report struct {
	Coord       geo.Coordinate
	Description string
	Tag         string
	Severity    string
}

// Outcome records what a single report produced. It is returned to the
// caller and never persisted.
type Outcome struct {
	EmergencyID string
	// Selected is the agency chosen for notification, nil when no
	// eligible agency with a usable contact address was found.
	Selected *agencymodels.Agency
	// NotificationQueued reports that a background delivery attempt was
	// started; its success or failure is only logged.
	NotificationQueued bool
}

// Coordinator drives the reaction to a new emergency report: persist,
// select the nearest eligible agency, and notify it in the background.
type Coordinator struct {
	emergencies EmergencyWriter
	agencies    AgencyLister
	notifier    notify.Notifier
	logger      *zap.SugaredLogger

	inflight sync.WaitGroup
}

// NewCoordinator wires the coordinator to its collaborators.
func NewCoordinator(emergencies EmergencyWriter, agencies AgencyLister, notifier notify.Notifier, logger *zap.SugaredLogger) *Coordinator {
	return &Coordinator{
		emergencies: emergencies,
		agencies:    agencies,
		notifier:    notifier,
		logger:      logger,
	}
}

// Report validates and persists an incoming emergency, then picks the
// nearest eligible agency and hands the notification to a background
// goroutine. The report is accepted once persistence succeeds; everything
// after that is non-fatal and only logged.
func (c *Coordinator) Report(ctx context.Context, r Report) (Outcome, error) {
	if !r.Coord.Defined() || r.Description == "" || r.Tag == "" {
		return Outcome{}, apperrors.Validation("Missing required emergency data")
	}

	severity := r.Severity
	if _, ok := severityLabels[severity]; !ok {
		severity = emergencymodels.SeverityLow
	}

	// Capture time here so the notification payload matches the accepted
	// report even if the storage layer stamps rows differently.
	reportedAt := time.Now().UTC()

	id, err := c.emergencies.CreateEmergency(ctx, emergencymodels.Emergency{
		Coord:       r.Coord,
		Description: r.Description,
		Tag:         r.Tag,
		Severity:    severity,
		Status:      emergencymodels.StatusPending,
		ReportedBy:  "public",
		CreatedAt:   reportedAt,
	})
	if err != nil {
		return Outcome{}, apperrors.Dependency("store emergency", err)
	}
	outcome := Outcome{EmergencyID: id}

	roster, err := c.agencies.ListAgencies(ctx)
	if err != nil {
		c.logger.Errorw("roster load failed, emergency accepted without dispatch",
			"emergency_id", id, "error", err)
		return outcome, nil
	}

	candidates := EligibleAgencies(roster)
	selected, ok := Nearest(candidates, r.Coord)
	if !ok || selected.Email == "" {
		c.logger.Infow("no dispatchable agency for emergency",
			"emergency_id", id, "candidates", len(candidates))
		return outcome, nil
	}
	outcome.Selected = &selected

	assignment := notify.Assignment{
		EmergencyID: id,
		Description: r.Description,
		Location:    fmt.Sprintf("%.5f, %.5f", *r.Coord.Latitude, *r.Coord.Longitude),
		Severity:    severity,
		Tag:         r.Tag,
		ReportedAt:  reportedAt,
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := c.notifier.NotifyAssignment(nctx, selected.Email, assignment); err != nil {
			c.logger.Errorw("assignment notification failed",
				"emergency_id", id, "agency_id", selected.ID, "error", err)
			return
		}
		c.logger.Infow("agency notified",
			"emergency_id", id, "agency_id", selected.ID)
	}()
	outcome.NotificationQueued = true

	return outcome, nil
}

// Wait blocks until all background notification attempts have finished.
// Used by graceful shutdown and tests.
func (c *Coordinator) Wait() {
	c.inflight.Wait()
}
