package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	models "skyward/aerodrome/internal/models/gorm"
)

// FlightRepository handles flights table operations, including the crew
// many-to-many association.
type FlightRepository struct {
	db *gormlib.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// List returns all flights with route endpoints, airplane, crew and
// tickets preloaded, latest departures first
func (r *FlightRepository) List(ctx context.Context) ([]models.Flight, error) {
	var flights []models.Flight
	err := r.db.WithContext(ctx).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crew").
		Preload("Tickets").
		Order("departure_time DESC").
		Find(&flights).Error
	return flights, err
}

// FindByID returns one fully-preloaded flight, or nil when absent
func (r *FlightRepository) FindByID(ctx context.Context, id string) (*models.Flight, error) {
	var flight models.Flight
	err := r.db.WithContext(ctx).
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crew").
		Preload("Tickets").
		Where("id = ?", id).
		First(&flight).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

// Create inserts a new flight with its crew association rows
func (r *FlightRepository) Create(ctx context.Context, flight *models.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

// Update saves flight fields and replaces the crew association
func (r *FlightRepository) Update(ctx context.Context, flight *models.Flight) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		if err := tx.Model(flight).Association("Crew").Replace(flight.Crew); err != nil {
			return err
		}
		return tx.Omit("Crew", "Tickets").Save(flight).Error
	})
}

// Delete removes a flight; its tickets cascade away
func (r *FlightRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Flight{})
	return res.RowsAffected, res.Error
}
