package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	models "skyward/aerodrome/internal/models/gorm"
)

// AirplaneRepository handles airplanes table operations
type AirplaneRepository struct {
	db *gormlib.DB
}

// NewAirplaneRepository creates a new airplane repository
func NewAirplaneRepository(db *gormlib.DB) *AirplaneRepository {
	return &AirplaneRepository{db: db}
}

// List returns all airplanes with their type preloaded
func (r *AirplaneRepository) List(ctx context.Context) ([]models.Airplane, error) {
	var airplanes []models.Airplane
	err := r.db.WithContext(ctx).
		Preload("AirplaneType").
		Order("name ASC").
		Find(&airplanes).Error
	return airplanes, err
}

// FindByID returns the airplane with its type preloaded, or nil when absent
func (r *AirplaneRepository) FindByID(ctx context.Context, id string) (*models.Airplane, error) {
	var airplane models.Airplane
	err := r.db.WithContext(ctx).
		Preload("AirplaneType").
		Where("id = ?", id).
		First(&airplane).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &airplane, nil
}

// Create inserts a new airplane
func (r *AirplaneRepository) Create(ctx context.Context, airplane *models.Airplane) error {
	return r.db.WithContext(ctx).Create(airplane).Error
}

// Update saves changed fields of an existing airplane
func (r *AirplaneRepository) Update(ctx context.Context, airplane *models.Airplane) error {
	return r.db.WithContext(ctx).Save(airplane).Error
}

// Delete removes an airplane; its flights cascade away
func (r *AirplaneRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Airplane{})
	return res.RowsAffected, res.Error
}
