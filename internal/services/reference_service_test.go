package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlib "gorm.io/gorm"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/models/dtos"
	models "skyward/aerodrome/internal/models/gorm"
)

type mockAirportStore struct {
	airports  map[string]*models.Airport
	createErr error
}

func (m *mockAirportStore) List(ctx context.Context) ([]models.Airport, error) {
	var out []models.Airport
	for _, a := range m.airports {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAirportStore) FindByID(ctx context.Context, id string) (*models.Airport, error) {
	return m.airports[id], nil
}

func (m *mockAirportStore) Create(ctx context.Context, airport *models.Airport) error {
	if m.createErr != nil {
		return m.createErr
	}
	airport.ID = "ap-new"
	m.airports[airport.ID] = airport
	return nil
}

func (m *mockAirportStore) Update(ctx context.Context, airport *models.Airport) error { return nil }

func (m *mockAirportStore) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := m.airports[id]; !ok {
		return 0, nil
	}
	delete(m.airports, id)
	return 1, nil
}

type mockRouteStore struct {
	mockRouteFinder
}

func (m *mockRouteStore) List(ctx context.Context) ([]models.Route, error) { return nil, nil }
func (m *mockRouteStore) Create(ctx context.Context, route *models.Route) error {
	route.ID = "r-new"
	m.routes[route.ID] = route
	return nil
}
func (m *mockRouteStore) Update(ctx context.Context, route *models.Route) error { return nil }
func (m *mockRouteStore) Delete(ctx context.Context, id string) (int64, error)  { return 1, nil }

func newTestReference(airports *mockAirportStore, bus MutationPublisher) *ReferenceService {
	return NewReferenceService(
		airports,
		&mockRouteStore{mockRouteFinder{routes: map[string]*models.Route{}}},
		nil, nil, nil,
		nil,
		bus,
		nil,
	)
}

func TestCreateAirport_DuplicateNameIsFieldError(t *testing.T) {
	store := &mockAirportStore{airports: map[string]*models.Airport{}, createErr: gormlib.ErrDuplicatedKey}
	svc := newTestReference(store, &recordingBus{})

	_, err := svc.CreateAirport(context.Background(), dtos.AirportRequest{
		Name: "Boryspil", ClosestBigCity: "Kyiv",
	})
	ve, ok := common.AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Contains(t, ve.Fields, "name")
}

func TestCreateAirport_BlankFieldsAccumulate(t *testing.T) {
	store := &mockAirportStore{airports: map[string]*models.Airport{}}
	svc := newTestReference(store, &recordingBus{})

	_, err := svc.CreateAirport(context.Background(), dtos.AirportRequest{})
	ve, ok := common.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "closest_big_city")
}

func TestCreateAirport_PublishesMutation(t *testing.T) {
	store := &mockAirportStore{airports: map[string]*models.Airport{}}
	bus := &recordingBus{}
	svc := newTestReference(store, bus)

	resp, err := svc.CreateAirport(context.Background(), dtos.AirportRequest{
		Name: "Boryspil", ClosestBigCity: "Kyiv",
	})
	require.NoError(t, err)
	assert.Equal(t, "ap-new", resp.ID)
	assert.True(t, bus.has(constants.KindAirport))
}

func TestCreateRoute_SameEndpointsRejected(t *testing.T) {
	store := &mockAirportStore{airports: map[string]*models.Airport{
		"ap1": {ID: "ap1", Name: "Boryspil", ClosestBigCity: "Kyiv"},
	}}
	svc := newTestReference(store, &recordingBus{})

	_, err := svc.CreateRoute(context.Background(), dtos.RouteRequest{
		Source: "ap1", Destination: "ap1", Distance: 0,
	})
	ve, ok := common.AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Contains(t, ve.Fields, "destination")
}

func TestCreateRoute_UnknownAirportsAccumulate(t *testing.T) {
	store := &mockAirportStore{airports: map[string]*models.Airport{}}
	svc := newTestReference(store, &recordingBus{})

	_, err := svc.CreateRoute(context.Background(), dtos.RouteRequest{
		Source: "ghost-1", Destination: "ghost-2", Distance: 100,
	})
	ve, ok := common.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "source")
	assert.Contains(t, ve.Fields, "destination")
}

func TestDeleteAirport_MissingIsNotFound(t *testing.T) {
	store := &mockAirportStore{airports: map[string]*models.Airport{}}
	svc := newTestReference(store, &recordingBus{})

	err := svc.DeleteAirport(context.Background(), "ghost")
	_, ok := common.AsNotFoundError(err)
	assert.True(t, ok, "expected not found, got %v", err)
}
