package handlers

import (
	"net/http"
	"time"

	barberRepo "barberly/database/repository/barber"
	sessionRepo "barberly/database/repository/session"
	"barberly/models"
	"barberly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler serves appointment session creation and listings.
type SessionHandler struct {
	Barbers  barberRepo.BarberRepository
	Sessions sessionRepo.SessionRepository
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(barbers barberRepo.BarberRepository, sessions sessionRepo.SessionRepository) *SessionHandler {
	return &SessionHandler{Barbers: barbers, Sessions: sessions}
}

// CreateSessionHandler persists a session request. The barber's name and
// photo are snapshotted into the record.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid session request", err.Error())
		return
	}
	if req.BarberID == "" || req.UserID == "" || req.Time <= 0 || req.Duration <= 0 || req.MeetingLocation == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid session request", "missing required fields")
		return
	}

	barber, err := h.Barbers.GetByID(req.BarberID)
	if err != nil {
		logger.Error("Failed to fetch barber for session", zap.String("barberID", req.BarberID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}
	if barber == nil {
		utils.JSONError(c, http.StatusNotFound, "Barber not found", req.BarberID)
		return
	}

	session := models.Session{
		BarberID:        req.BarberID,
		UserID:          req.UserID,
		BarberName:      barber.Name,
		BarberPhoto:     barber.ProfileImage,
		CreatedTime:     time.Now().Unix(),
		AppointmentTime: req.Time,
		Duration:        req.Duration,
		AmountPaid:      req.AmountPaid,
		MeetingLocation: req.MeetingLocation,
	}
	if err := h.Sessions.Create(&session); err != nil {
		logger.Error("Failed to store session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}

	logger.Info("session created",
		zap.String("sessionID", session.ID),
		zap.String("barberID", session.BarberID),
		zap.Int64("appointmentTime", session.AppointmentTime),
	)
	c.JSON(http.StatusOK, models.SessionResponse{
		SessionID:      session.ID,
		Message:        "Session created successfully",
		SessionDetails: session,
	})
}

// GetUserSessionsHandler lists the sessions booked by a user.
func (h *SessionHandler) GetUserSessionsHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "User ID is required", "")
		return
	}

	sessions, err := h.Sessions.GetByUser(userID)
	if err != nil {
		getLogger(c).Error("Failed to list user sessions", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.SessionList{
		UserID:       userID,
		SessionCount: len(sessions),
		Sessions:     sessions,
	})
}

// GetBarberSessionsHandler lists the sessions booked with a barber.
func (h *SessionHandler) GetBarberSessionsHandler(c *gin.Context) {
	barberID := c.Query("barber_id")
	if barberID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Barber ID is required", "")
		return
	}

	sessions, err := h.Sessions.GetByBarber(barberID)
	if err != nil {
		getLogger(c).Error("Failed to list barber sessions", zap.String("barberID", barberID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.SessionList{
		BarberID:     barberID,
		SessionCount: len(sessions),
		Sessions:     sessions,
	})
}
