package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.resqforce.server/internal/dispatch"
	"io.resqforce.server/internal/geo"
	"io.resqforce.server/internal/middleware"
	listmodels "io.resqforce.server/internal/models/emergencies"
	emergencymodels "io.resqforce.server/internal/models/emergency"
)

// ListPending returns all pending emergencies, newest first. Public, no
// distance annotation.
func (h *EmergencyHandler) ListPending(c *gin.Context) {
	emergencies, err := h.store.ListPendingEmergencies(c.Request.Context())
	if err != nil {
		h.logger.Errorw("pending emergency listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]listmodels.EmergencyItem, 0, len(emergencies))
	for _, e := range emergencies {
		items = append(items, emergencyItem(e))
	}
	c.JSON(http.StatusOK, items)
}

// Details returns pending emergencies annotated with the distance from the
// logged-in agency's cached coordinates.
func (h *EmergencyHandler) Details(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	emergencies, err := h.store.ListPendingEmergencies(c.Request.Context())
	if err != nil {
		h.logger.Errorw("pending emergency listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	observer := geo.Coordinate{Latitude: sess.Latitude, Longitude: sess.Longitude}
	annotated := dispatch.AnnotateDistances(observer, emergencies)

	items := make([]listmodels.EmergencyDetailItem, 0, len(annotated))
	for _, a := range annotated {
		items = append(items, listmodels.EmergencyDetailItem{
			EmergencyItem: emergencyItem(a.Emergency),
			Distance:      a.DistanceMeters,
		})
	}
	c.JSON(http.StatusOK, items)
}

func emergencyItem(e emergencymodels.Emergency) listmodels.EmergencyItem {
	return listmodels.EmergencyItem{
		ID:              e.ID,
		Latitude:        e.Coord.Latitude,
		Longitude:       e.Coord.Longitude,
		Description:     e.Description,
		Tag:             e.Tag,
		Severity:        e.Severity,
		SeverityDisplay: dispatch.SeverityLabel(e.Severity),
		Status:          e.Status,
		CreatedAt:       e.CreatedAt,
	}
}
