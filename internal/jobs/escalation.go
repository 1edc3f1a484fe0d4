// Package jobs holds the background maintenance work scheduled alongside
// the API server.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	agencymodels "io.resqforce.server/internal/models/agency"
	emergencymodels "io.resqforce.server/internal/models/emergency"
	"io.resqforce.server/internal/notify"
)

// Store is the slice of persistence the sweeper needs.
type Store interface {
	ListPendingEmergencies(ctx context.Context) ([]emergencymodels.Emergency, error)
	ListAgencies(ctx context.Context) ([]agencymodels.Agency, error)
}

// EscalationSweeper periodically escalates emergencies that stayed pending
// past a cutoff to the heavy-response agencies, which first-line dispatch
// deliberately skips. Notification failures are logged and retried on the
// next sweep only implicitly, by the emergency still being pending.
type EscalationSweeper struct {
	store    Store
	notifier notify.Notifier
	logger   *zap.SugaredLogger
	maxAge   time.Duration
	cron     *cron.Cron

	mu        sync.Mutex
	escalated map[string]struct{}
}

// NewEscalationSweeper builds a sweeper escalating emergencies pending for
// longer than maxAge.
func NewEscalationSweeper(store Store, notifier notify.Notifier, maxAge time.Duration, logger *zap.SugaredLogger) *EscalationSweeper {
	return &EscalationSweeper{
		store:     store,
		notifier:  notifier,
		logger:    logger,
		maxAge:    maxAge,
		cron:      cron.New(cron.WithLocation(time.UTC)),
		escalated: make(map[string]struct{}),
	}
}

// Start schedules the sweep. The spec string follows the standard cron
// format used by robfig/cron.
func (s *EscalationSweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.Sweep); err != nil {
		return fmt.Errorf("schedule escalation sweep: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *EscalationSweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep runs one escalation pass.
func (s *EscalationSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pending, err := s.store.ListPendingEmergencies(ctx)
	if err != nil {
		s.logger.Errorw("escalation sweep: pending listing failed", "error", err)
		return
	}

	cutoff := time.Now().UTC().Add(-s.maxAge)
	var stale []emergencymodels.Emergency
	for _, e := range pending {
		if e.CreatedAt.After(cutoff) {
			continue
		}
		if s.alreadyEscalated(e.ID) {
			continue
		}
		stale = append(stale, e)
	}
	if len(stale) == 0 {
		return
	}

	roster, err := s.store.ListAgencies(ctx)
	if err != nil {
		s.logger.Errorw("escalation sweep: roster load failed", "error", err)
		return
	}
	var heavy []agencymodels.Agency
	for _, a := range roster {
		if a.Role == agencymodels.RoleHeavyResponse && a.Email != "" {
			heavy = append(heavy, a)
		}
	}
	if len(heavy) == 0 {
		s.logger.Warnw("escalation sweep: no heavy-response agency registered", "stale", len(stale))
		return
	}

	for _, e := range stale {
		assignment := assignmentFor(e)
		delivered := false
		for _, a := range heavy {
			if err := s.notifier.NotifyAssignment(ctx, a.Email, assignment); err != nil {
				s.logger.Errorw("escalation notification failed",
					"emergency_id", e.ID, "agency_id", a.ID, "error", err)
				continue
			}
			delivered = true
		}
		if delivered {
			s.markEscalated(e.ID)
			s.logger.Infow("emergency escalated", "emergency_id", e.ID, "agencies", len(heavy))
		}
	}
}

func assignmentFor(e emergencymodels.Emergency) notify.Assignment {
	location := "unknown"
	if e.Coord.Defined() {
		location = fmt.Sprintf("%.5f, %.5f", *e.Coord.Latitude, *e.Coord.Longitude)
	}
	return notify.Assignment{
		EmergencyID: e.ID,
		Description: e.Description,
		Location:    location,
		Severity:    e.Severity,
		Tag:         e.Tag,
		ReportedAt:  e.CreatedAt,
	}
}

func (s *EscalationSweeper) alreadyEscalated(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.escalated[id]
	return ok
}

func (s *EscalationSweeper) markEscalated(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.escalated[id] = struct{}{}
}
