package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	models "skyward/aerodrome/internal/models/gorm"
)

// AirplaneTypeRepository handles airplane_types table operations
type AirplaneTypeRepository struct {
	db *gormlib.DB
}

// NewAirplaneTypeRepository creates a new airplane type repository
func NewAirplaneTypeRepository(db *gormlib.DB) *AirplaneTypeRepository {
	return &AirplaneTypeRepository{db: db}
}

// List returns all airplane types ordered by name
func (r *AirplaneTypeRepository) List(ctx context.Context) ([]models.AirplaneType, error) {
	var types []models.AirplaneType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

// FindByID returns the airplane type or nil when it does not exist
func (r *AirplaneTypeRepository) FindByID(ctx context.Context, id string) (*models.AirplaneType, error) {
	var t models.AirplaneType
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a new airplane type
func (r *AirplaneTypeRepository) Create(ctx context.Context, t *models.AirplaneType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// Update saves changed fields of an existing airplane type
func (r *AirplaneTypeRepository) Update(ctx context.Context, t *models.AirplaneType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes an airplane type; its airplanes cascade away
func (r *AirplaneTypeRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.AirplaneType{})
	return res.RowsAffected, res.Error
}
