package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	models "skyward/aerodrome/internal/models/gorm"
)

// CrewRepository handles crews table operations
type CrewRepository struct {
	db *gormlib.DB
}

// NewCrewRepository creates a new crew repository
func NewCrewRepository(db *gormlib.DB) *CrewRepository {
	return &CrewRepository{db: db}
}

// List returns all crew members ordered by last then first name
func (r *CrewRepository) List(ctx context.Context) ([]models.Crew, error) {
	var crews []models.Crew
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&crews).Error
	return crews, err
}

// FindByIDs returns the crew members whose ids are in the given set
func (r *CrewRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Crew, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var crews []models.Crew
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&crews).Error
	return crews, err
}

// FindByID returns the crew member or nil when absent
func (r *CrewRepository) FindByID(ctx context.Context, id string) (*models.Crew, error) {
	var crew models.Crew
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&crew).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &crew, nil
}

// Create inserts a new crew member
func (r *CrewRepository) Create(ctx context.Context, crew *models.Crew) error {
	return r.db.WithContext(ctx).Create(crew).Error
}
