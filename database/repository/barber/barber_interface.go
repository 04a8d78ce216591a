package barberRepo

import "barberly/models"

// BarberRepository defines methods for barber data access.
type BarberRepository interface {
	// GetByID retrieves a barber by its unique ID. Returns (nil, nil)
	// when no record matches.
	GetByID(id string) (*models.Barber, error)
	// Search retrieves all barbers matching the given filter. Criteria at
	// their zero value are not applied.
	Search(filter models.BarberFilter) ([]models.Barber, error)
	// Create inserts a new barber record.
	Create(barber *models.Barber) error
	// Update modifies an existing barber record.
	Update(barber *models.Barber) error
	// Delete removes a barber record by its ID.
	Delete(id string) error
}
