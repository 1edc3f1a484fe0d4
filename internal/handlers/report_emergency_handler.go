package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.resqforce.server/internal/dispatch"
	"io.resqforce.server/internal/geo"
	reportmodels "io.resqforce.server/internal/models/report_emergency"
	"io.resqforce.server/internal/store"
)

type EmergencyHandler struct {
	store       *store.Store
	coordinator *dispatch.Coordinator
	logger      *zap.SugaredLogger
}

// NewEmergencyHandler creates the handler for reporting, listing and
// deleting emergencies.
func NewEmergencyHandler(st *store.Store, coordinator *dispatch.Coordinator, logger *zap.SugaredLogger) *EmergencyHandler {
	return &EmergencyHandler{
		store:       st,
		coordinator: coordinator,
		logger:      logger,
	}
}

// Report accepts a public emergency report. The response only reflects
// acceptance; the nearest-agency notification runs in the background.
func (h *EmergencyHandler) Report(c *gin.Context) {
	var req reportmodels.ReportEmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	outcome, err := h.coordinator.Report(c.Request.Context(), dispatch.Report{
		Coord:       geo.Coordinate{Latitude: req.Lat, Longitude: req.Lng},
		Description: req.Description,
		Tag:         req.Tag,
		Severity:    req.Severity,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("emergency reported",
		"request_id", c.GetString("request_id"),
		"emergency_id", outcome.EmergencyID,
		"notification_queued", outcome.NotificationQueued,
	)
	c.JSON(http.StatusCreated, gin.H{"message": "Emergency reported successfully"})
}
