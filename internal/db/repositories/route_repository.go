package repositories

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	models "skyward/aerodrome/internal/models/gorm"
)

// RouteRepository handles routes table operations
type RouteRepository struct {
	db *gormlib.DB
}

// NewRouteRepository creates a new route repository
func NewRouteRepository(db *gormlib.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// List returns all routes with both endpoint airports preloaded
func (r *RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	err := r.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		Find(&routes).Error
	return routes, err
}

// FindByID returns the route with airports preloaded, or nil when absent
func (r *RouteRepository) FindByID(ctx context.Context, id string) (*models.Route, error) {
	var route models.Route
	err := r.db.WithContext(ctx).
		Preload("Source").
		Preload("Destination").
		Where("id = ?", id).
		First(&route).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &route, nil
}

// Create inserts a new route
func (r *RouteRepository) Create(ctx context.Context, route *models.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

// Update saves changed fields of an existing route
func (r *RouteRepository) Update(ctx context.Context, route *models.Route) error {
	return r.db.WithContext(ctx).Save(route).Error
}

// Delete removes a route; its flights cascade away
func (r *RouteRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Route{})
	return res.RowsAffected, res.Error
}
