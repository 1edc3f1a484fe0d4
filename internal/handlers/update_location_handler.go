package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.resqforce.server/internal/middleware"
	updatelocationmodels "io.resqforce.server/internal/models/update_location"
	"io.resqforce.server/internal/session"
	"io.resqforce.server/internal/store"
)

type AgencyHandler struct {
	store    *store.Store
	sessions *session.Manager
	logger   *zap.SugaredLogger
}

// NewAgencyHandler creates the handler for agency self-service and roster
// listing.
func NewAgencyHandler(st *store.Store, sessions *session.Manager, logger *zap.SugaredLogger) *AgencyHandler {
	return &AgencyHandler{
		store:    st,
		sessions: sessions,
		logger:   logger,
	}
}

// UpdateLocation sets the logged-in agency's coordinates and refreshes the
// copy cached in its session.
func (h *AgencyHandler) UpdateLocation(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req updatelocationmodels.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Lat == nil || req.Lng == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	ctx := c.Request.Context()
	if err := h.store.UpdateAgencyLocation(ctx, sess.AgencyID, *req.Lat, *req.Lng); err != nil {
		h.logger.Errorw("agency location update failed", "agency_id", sess.AgencyID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	sess.Latitude = req.Lat
	sess.Longitude = req.Lng
	if err := h.sessions.Update(ctx, middleware.TokenFrom(c), sess); err != nil {
		// The row is updated; a stale session cache only delays the new
		// coordinates until the next login.
		h.logger.Warnw("session coordinate refresh failed", "agency_id", sess.AgencyID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
