package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	models "skyward/aerodrome/internal/models/gorm"
)

// AirportRepository handles airports table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// List returns all airports ordered by name
func (r *AirportRepository) List(ctx context.Context) ([]models.Airport, error) {
	var airports []models.Airport
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&airports).Error
	return airports, err
}

// FindByID returns the airport or nil when it does not exist
func (r *AirportRepository) FindByID(ctx context.Context, id string) (*models.Airport, error) {
	var airport models.Airport
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&airport).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &airport, nil
}

// Create inserts a new airport; a duplicate name surfaces as
// gorm.ErrDuplicatedKey for the service to translate
func (r *AirportRepository) Create(ctx context.Context, airport *models.Airport) error {
	return r.db.WithContext(ctx).Create(airport).Error
}

// Update saves changed fields of an existing airport
func (r *AirportRepository) Update(ctx context.Context, airport *models.Airport) error {
	return r.db.WithContext(ctx).Save(airport).Error
}

// Delete removes an airport; routes through it cascade away
func (r *AirportRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Airport{})
	return res.RowsAffected, res.Error
}
