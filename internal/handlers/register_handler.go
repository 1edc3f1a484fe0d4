package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	registermodels "io.resqforce.server/internal/models/register"
	"io.resqforce.server/internal/session"
	"io.resqforce.server/internal/store"
)

// rescuingIDPattern is the fixed format of a government rescuing ID:
// 4 digits, 1 letter, 1 digit, 3 letters.
var rescuingIDPattern = regexp.MustCompile(`^\d{4}[a-zA-Z]\d[a-zA-Z]{3}$`)

func validRescuingID(id string) bool {
	return rescuingIDPattern.MatchString(id)
}

// hashRescuingID digests the rescuing ID so it is stored and looked up only
// in hashed form.
func hashRescuingID(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

// Register creates an agency account and logs it in. Duplicate emails and
// rescuing IDs are rejected before any row is written.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registermodels.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.RescuingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rescuing ID is required."})
		return
	}
	if !validRescuingID(req.RescuingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Rescuing ID pattern. Must be NNNNANAAA."})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}

	ctx := c.Request.Context()

	existing, _, err := h.store.GetAgencyByEmail(ctx, req.Email)
	if err != nil {
		h.logger.Errorw("registration email check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hashedRescuingID := hashRescuingID(req.RescuingID)
	taken, err := h.store.RescuingIDExists(ctx, hashedRescuingID)
	if err != nil {
		h.logger.Errorw("registration rescuing id check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "Rescuing ID already in use."})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Errorw("password hash failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	agency, err := h.store.CreateAgency(ctx, store.NewAgency{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     string(passwordHash),
		Expertise:        req.Expertise,
		HashedRescuingID: hashedRescuingID,
	})
	if err != nil {
		h.logger.Errorw("agency insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := h.sessions.Issue(ctx, sessionFor(agency))
	if err != nil {
		h.logger.Errorw("session issue failed", "agency_id", agency.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	session.SetCookie(c, token)

	c.JSON(http.StatusCreated, registermodels.RegisterResponse{
		Status: "success",
		User: registermodels.UserSummary{
			ID:   agency.ID,
			Name: agency.Name,
			Role: agency.Role,
		},
	})
}
