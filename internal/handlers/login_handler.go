package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	agencymodels "io.resqforce.server/internal/models/agency"
	loginmodels "io.resqforce.server/internal/models/login"
	"io.resqforce.server/internal/session"
	"io.resqforce.server/internal/store"
)

type AuthHandler struct {
	store    *store.Store
	sessions *session.Manager
	logger   *zap.SugaredLogger
}

// NewAuthHandler creates the handler for registration, login and session
// introspection.
func NewAuthHandler(st *store.Store, sessions *session.Manager, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		store:    st,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies email and password and issues a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginmodels.LoginRequest
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
		h.logger.Errorw("login lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if agency == nil || bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.sessions.Issue(ctx, sessionFor(*agency))
	if err != nil {
		h.logger.Errorw("session issue failed", "agency_id", agency.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	session.SetCookie(c, token)

	c.JSON(http.StatusOK, loginmodels.LoginResponse{
		Status: "success",
		User: loginmodels.User{
			ID:   agency.ID,
			Name: agency.Name,
			Role: agency.Role,
		},
	})
}

// sessionFor caches the agency's identity and coordinates in the session so
// read paths skip a roster lookup.
func sessionFor(a agencymodels.Agency) session.Session {
	return session.Session{
		AgencyID:  a.ID,
		Name:      a.Name,
		Role:      a.Role,
		Latitude:  a.Coord.Latitude,
		Longitude: a.Coord.Longitude,
	}
}
