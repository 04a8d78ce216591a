package sessionRepo

import "barberly/models"

// SessionRepository defines methods for appointment session data access.
type SessionRepository interface {
	// Create inserts a new session record and fills in its ID.
	Create(session *models.Session) error
	// GetByUser retrieves all sessions booked by the given user.
	GetByUser(userID string) ([]models.Session, error)
	// GetByBarber retrieves all sessions booked with the given barber.
	GetByBarber(barberID string) ([]models.Session, error)
}
