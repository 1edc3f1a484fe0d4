package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	loginmodels "io.resqforce.server/internal/models/login"
	"io.resqforce.server/internal/session"
)

// Logout clears the session and its cookie. Logging out without a live
// session is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		if err := h.sessions.Clear(c.Request.Context(), token); err != nil {
			h.logger.Warnw("session clear failed", "error", err)
		}
	}
	session.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// CheckSession reports whether the caller holds a live session, with fresh
// agency coordinates from the store.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, loginmodels.CheckSessionResponse{IsAuthenticated: false})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.sessions.Get(ctx, token)
	if err != nil {
		c.JSON(http.StatusOK, loginmodels.CheckSessionResponse{IsAuthenticated: false})
		return
	}

	agency, err := h.store.GetAgencyByID(ctx, sess.AgencyID)
	if err != nil {
		h.logger.Errorw("session agency lookup failed", "agency_id", sess.AgencyID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if agency == nil {
		c.JSON(http.StatusOK, loginmodels.CheckSessionResponse{IsAuthenticated: false})
		return
	}

	c.JSON(http.StatusOK, loginmodels.CheckSessionResponse{
		IsAuthenticated: true,
		User: &loginmodels.SessionUser{
			ID:        agency.ID,
			Name:      agency.Name,
			Role:      sess.Role,
			Latitude:  agency.Coord.Latitude,
			Longitude: agency.Coord.Longitude,
		},
	})
}
