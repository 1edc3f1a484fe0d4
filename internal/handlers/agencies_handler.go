package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	agencylistmodels "io.resqforce.server/internal/models/agencies"
)

// List returns the roster for the authenticated dashboard map.
func (h *AgencyHandler) List(c *gin.Context) {
	agencies, err := h.store.ListAgencies(c.Request.Context())
	if err != nil {
		h.logger.Errorw("agency listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]agencylistmodels.AgencyItem, 0, len(agencies))
	for _, a := range agencies {
		items = append(items, agencylistmodels.AgencyItem{
			ID:        a.ID,
			Name:      a.Name,
			Latitude:  a.Coord.Latitude,
			Longitude: a.Coord.Longitude,
			Expertise: a.Expertise,
			Role:      a.Role,
		})
	}
	c.JSON(http.StatusOK, items)
}
