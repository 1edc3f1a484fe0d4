package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"io.resqforce.server/internal/middleware"
	agencymodels "io.resqforce.server/internal/models/agency"
	deletemodels "io.resqforce.server/internal/models/delete_emergencies"
)

// Delete removes a single emergency. Restricted to the heavy-response role.
func (h *EmergencyHandler) Delete(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok || sess.Role != agencymodels.RoleHeavyResponse {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized: NDRF access required."})
		return
	}

	deleted, err := h.store.DeleteEmergency(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Errorw("emergency delete failed", "emergency_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Emergency not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Emergency deleted successfully."})
}

// DeleteAll clears every emergency. The caller must re-present heavy-
// response credentials even with a live session.
func (h *EmergencyHandler) DeleteAll(c *gin.Context) {
	var req deletemodels.DeleteEmergenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	ctx := c.Request.Context()
	agency, passwordHash, err := h.store.GetAgencyByEmail(ctx, req.Email)
	if err != nil {
		h.logger.Errorw("bulk delete credential check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if agency == nil ||
		bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil ||
		agency.Role != agencymodels.RoleHeavyResponse {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid credentials or insufficient permissions"})
		return
	}

	count, err := h.store.DeleteAllEmergencies(ctx)
	if err != nil {
		h.logger.Errorw("bulk emergency delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Infow("all emergencies deleted", "count", count, "agency_id", agency.ID)
	c.JSON(http.StatusOK, gin.H{"status": fmt.Sprintf("Successfully deleted %d emergencies.", count)})
}
