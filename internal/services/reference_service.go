package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gormlib "gorm.io/gorm"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/metrics"
	"skyward/aerodrome/internal/models/dtos"
	models "skyward/aerodrome/internal/models/gorm"
)

// AirportStore is the airport repository surface.
type AirportStore interface {
	List(ctx context.Context) ([]models.Airport, error)
	FindByID(ctx context.Context, id string) (*models.Airport, error)
	Create(ctx context.Context, airport *models.Airport) error
	Update(ctx context.Context, airport *models.Airport) error
	Delete(ctx context.Context, id string) (int64, error)
}

// RouteStore is the route repository surface.
type RouteStore interface {
	RouteFinder
	List(ctx context.Context) ([]models.Route, error)
	Create(ctx context.Context, route *models.Route) error
	Update(ctx context.Context, route *models.Route) error
	Delete(ctx context.Context, id string) (int64, error)
}

// AirplaneStore is the airplane repository surface.
type AirplaneStore interface {
	AirplaneFinder
	List(ctx context.Context) ([]models.Airplane, error)
	Create(ctx context.Context, airplane *models.Airplane) error
	Update(ctx context.Context, airplane *models.Airplane) error
	Delete(ctx context.Context, id string) (int64, error)
}

// AirplaneTypeStore is the airplane type repository surface.
type AirplaneTypeStore interface {
	List(ctx context.Context) ([]models.AirplaneType, error)
	FindByID(ctx context.Context, id string) (*models.AirplaneType, error)
	Create(ctx context.Context, t *models.AirplaneType) error
	Update(ctx context.Context, t *models.AirplaneType) error
	Delete(ctx context.Context, id string) (int64, error)
}

// CrewStore is the crew repository surface.
type CrewStore interface {
	CrewFinder
	List(ctx context.Context) ([]models.Crew, error)
	FindByID(ctx context.Context, id string) (*models.Crew, error)
	Create(ctx context.Context, crew *models.Crew) error
}

// ReferenceService serves the reference-data catalog: airports, routes,
// airplanes, airplane types and crew. Reads are cached per kind; every
// committed mutation publishes its kind on the invalidation bus.
type ReferenceService struct {
	airports      AirportStore
	routes        RouteStore
	airplanes     AirplaneStore
	airplaneTypes AirplaneTypeStore
	crews         CrewStore
	cache         common.CacheStore
	bus           MutationPublisher
	metrics       *metrics.MetricsRegistry
}

func NewReferenceService(
	airports AirportStore,
	routes RouteStore,
	airplanes AirplaneStore,
	airplaneTypes AirplaneTypeStore,
	crews CrewStore,
	cache common.CacheStore,
	bus MutationPublisher,
	metricsReg *metrics.MetricsRegistry,
) *ReferenceService {
	return &ReferenceService{
		airports:      airports,
		routes:        routes,
		airplanes:     airplanes,
		airplaneTypes: airplaneTypes,
		crews:         crews,
		cache:         cache,
		bus:           bus,
		metrics:       metricsReg,
	}
}

func (s *ReferenceService) cached(key string, kind constants.EntityKind, loader func() (any, error)) (any, error) {
	return cachedView(s.cache, s.metrics, key, kind, loader)
}

func listKey(kind constants.EntityKind) string {
	return kind.ViewKeyPrefix() + ":list"
}

func detailKey(kind constants.EntityKind, id string) string {
	return fmt.Sprintf("%s:detail:%s", kind.ViewKeyPrefix(), id)
}

// ---- airports ----

func (s *ReferenceService) ListAirports(ctx context.Context) (any, error) {
	return s.cached(listKey(constants.KindAirport), constants.KindAirport, func() (any, error) {
		airports, err := s.airports.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dtos.AirportResponse, 0, len(airports))
		for _, a := range airports {
			resp = append(resp, airportResponse(a))
		}
		return resp, nil
	})
}

func (s *ReferenceService) GetAirport(ctx context.Context, id string) (any, error) {
	return s.cached(detailKey(constants.KindAirport, id), constants.KindAirport, func() (any, error) {
		airport, err := s.airports.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if airport == nil {
			return nil, &common.NotFoundError{Resource: "airport", ID: id}
		}
		return airportResponse(*airport), nil
	})
}

func (s *ReferenceService) CreateAirport(ctx context.Context, req dtos.AirportRequest) (*dtos.AirportResponse, error) {
	if err := validateAirport(req); err != nil {
		return nil, err
	}
	airport := &models.Airport{Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, translateDuplicate(err, "name", "airport with this name already exists")
	}
	s.bus.OnMutated(constants.KindAirport, airport.ID)
	resp := airportResponse(*airport)
	return &resp, nil
}

func (s *ReferenceService) UpdateAirport(ctx context.Context, id string, req dtos.AirportRequest) (*dtos.AirportResponse, error) {
	airport, err := s.airports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, &common.NotFoundError{Resource: "airport", ID: id}
	}
	if err := validateAirport(req); err != nil {
		return nil, err
	}
	airport.Name = req.Name
	airport.ClosestBigCity = req.ClosestBigCity
	if err := s.airports.Update(ctx, airport); err != nil {
		return nil, translateDuplicate(err, "name", "airport with this name already exists")
	}
	s.bus.OnMutated(constants.KindAirport, airport.ID)
	resp := airportResponse(*airport)
	return &resp, nil
}

func (s *ReferenceService) DeleteAirport(ctx context.Context, id string) error {
	affected, err := s.airports.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &common.NotFoundError{Resource: "airport", ID: id}
	}
	s.bus.OnMutated(constants.KindAirport, id)
	return nil
}

// ---- routes ----

func (s *ReferenceService) ListRoutes(ctx context.Context) (any, error) {
	return s.cached(listKey(constants.KindRoute), constants.KindRoute, func() (any, error) {
		routes, err := s.routes.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dtos.RouteResponse, 0, len(routes))
		for _, r := range routes {
			resp = append(resp, routeResponse(r))
		}
		return resp, nil
	})
}

func (s *ReferenceService) GetRoute(ctx context.Context, id string) (any, error) {
	return s.cached(detailKey(constants.KindRoute, id), constants.KindRoute, func() (any, error) {
		route, err := s.routes.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if route == nil {
			return nil, &common.NotFoundError{Resource: "route", ID: id}
		}
		return routeResponse(*route), nil
	})
}

func (s *ReferenceService) CreateRoute(ctx context.Context, req dtos.RouteRequest) (*dtos.RouteResponse, error) {
	route, err := s.buildRoute(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindRoute, route.ID)
	return s.reloadRoute(ctx, route.ID)
}

func (s *ReferenceService) UpdateRoute(ctx context.Context, id string, req dtos.RouteRequest) (*dtos.RouteResponse, error) {
	existing, err := s.routes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &common.NotFoundError{Resource: "route", ID: id}
	}
	route, err := s.buildRoute(ctx, req)
	if err != nil {
		return nil, err
	}
	route.ID = existing.ID
	route.CreatedAt = existing.CreatedAt
	if err := s.routes.Update(ctx, route); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindRoute, route.ID)
	return s.reloadRoute(ctx, route.ID)
}

func (s *ReferenceService) DeleteRoute(ctx context.Context, id string) error {
	affected, err := s.routes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &common.NotFoundError{Resource: "route", ID: id}
	}
	s.bus.OnMutated(constants.KindRoute, id)
	return nil
}

func (s *ReferenceService) buildRoute(ctx context.Context, req dtos.RouteRequest) (*models.Route, error) {
	verr := common.NewValidationError()
	if req.Source != "" && req.Source == req.Destination {
		verr.Add("destination", "source and destination airports must differ")
	}
	if req.Distance < 0 {
		verr.Add("distance", "distance must not be negative")
	}

	source, err := s.airports.FindByID(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	if source == nil {
		verr.Add("source", fmt.Sprintf("airport %q does not exist", req.Source))
	}
	destination, err := s.airports.FindByID(ctx, req.Destination)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		verr.Add("destination", fmt.Sprintf("airport %q does not exist", req.Destination))
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return &models.Route{SourceID: req.Source, DestinationID: req.Destination, Distance: req.Distance}, nil
}

func (s *ReferenceService) reloadRoute(ctx context.Context, id string) (*dtos.RouteResponse, error) {
	route, err := s.routes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, &common.NotFoundError{Resource: "route", ID: id}
	}
	resp := routeResponse(*route)
	return &resp, nil
}

// ---- airplane types ----

func (s *ReferenceService) ListAirplaneTypes(ctx context.Context) (any, error) {
	return s.cached(listKey(constants.KindAirplaneType), constants.KindAirplaneType, func() (any, error) {
		types, err := s.airplaneTypes.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dtos.AirplaneTypeResponse, 0, len(types))
		for _, t := range types {
			resp = append(resp, dtos.AirplaneTypeResponse{ID: t.ID, Name: t.Name})
		}
		return resp, nil
	})
}

func (s *ReferenceService) GetAirplaneType(ctx context.Context, id string) (any, error) {
	return s.cached(detailKey(constants.KindAirplaneType, id), constants.KindAirplaneType, func() (any, error) {
		t, err := s.airplaneTypes.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, &common.NotFoundError{Resource: "airplane type", ID: id}
		}
		return dtos.AirplaneTypeResponse{ID: t.ID, Name: t.Name}, nil
	})
}

func (s *ReferenceService) CreateAirplaneType(ctx context.Context, req dtos.AirplaneTypeRequest) (*dtos.AirplaneTypeResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, common.NewValidationError().Add("name", "name must not be blank")
	}
	t := &models.AirplaneType{Name: req.Name}
	if err := s.airplaneTypes.Create(ctx, t); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindAirplaneType, t.ID)
	return &dtos.AirplaneTypeResponse{ID: t.ID, Name: t.Name}, nil
}

func (s *ReferenceService) UpdateAirplaneType(ctx context.Context, id string, req dtos.AirplaneTypeRequest) (*dtos.AirplaneTypeResponse, error) {
	t, err := s.airplaneTypes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &common.NotFoundError{Resource: "airplane type", ID: id}
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, common.NewValidationError().Add("name", "name must not be blank")
	}
	t.Name = req.Name
	if err := s.airplaneTypes.Update(ctx, t); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindAirplaneType, t.ID)
	return &dtos.AirplaneTypeResponse{ID: t.ID, Name: t.Name}, nil
}

func (s *ReferenceService) DeleteAirplaneType(ctx context.Context, id string) error {
	affected, err := s.airplaneTypes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &common.NotFoundError{Resource: "airplane type", ID: id}
	}
	s.bus.OnMutated(constants.KindAirplaneType, id)
	return nil
}

// ---- airplanes ----

func (s *ReferenceService) ListAirplanes(ctx context.Context) (any, error) {
	return s.cached(listKey(constants.KindAirplane), constants.KindAirplane, func() (any, error) {
		airplanes, err := s.airplanes.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dtos.AirplaneResponse, 0, len(airplanes))
		for _, a := range airplanes {
			resp = append(resp, airplaneResponse(a))
		}
		return resp, nil
	})
}

func (s *ReferenceService) GetAirplane(ctx context.Context, id string) (any, error) {
	return s.cached(detailKey(constants.KindAirplane, id), constants.KindAirplane, func() (any, error) {
		airplane, err := s.airplanes.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if airplane == nil {
			return nil, &common.NotFoundError{Resource: "airplane", ID: id}
		}
		return airplaneResponse(*airplane), nil
	})
}

func (s *ReferenceService) CreateAirplane(ctx context.Context, req dtos.AirplaneRequest) (*dtos.AirplaneResponse, error) {
	airplane, err := s.buildAirplane(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.airplanes.Create(ctx, airplane); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindAirplane, airplane.ID)
	return s.reloadAirplane(ctx, airplane.ID)
}

func (s *ReferenceService) UpdateAirplane(ctx context.Context, id string, req dtos.AirplaneRequest) (*dtos.AirplaneResponse, error) {
	existing, err := s.airplanes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &common.NotFoundError{Resource: "airplane", ID: id}
	}
	airplane, err := s.buildAirplane(ctx, req)
	if err != nil {
		return nil, err
	}
	airplane.ID = existing.ID
	airplane.CreatedAt = existing.CreatedAt
	if err := s.airplanes.Update(ctx, airplane); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindAirplane, airplane.ID)
	return s.reloadAirplane(ctx, airplane.ID)
}

func (s *ReferenceService) DeleteAirplane(ctx context.Context, id string) error {
	affected, err := s.airplanes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &common.NotFoundError{Resource: "airplane", ID: id}
	}
	s.bus.OnMutated(constants.KindAirplane, id)
	return nil
}

func (s *ReferenceService) buildAirplane(ctx context.Context, req dtos.AirplaneRequest) (*models.Airplane, error) {
	verr := common.NewValidationError()
	if strings.TrimSpace(req.Name) == "" {
		verr.Add("name", "name must not be blank")
	}
	if req.Rows < 1 {
		verr.Add("rows", "rows must be at least 1")
	}
	if req.SeatsInRow < 1 {
		verr.Add("seats_in_row", "seats in row must be at least 1")
	}

	airplaneType, err := s.airplaneTypes.FindByID(ctx, req.AirplaneType)
	if err != nil {
		return nil, err
	}
	if airplaneType == nil {
		verr.Add("airplane_type", fmt.Sprintf("airplane type %q does not exist", req.AirplaneType))
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return &models.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneType,
	}, nil
}

func (s *ReferenceService) reloadAirplane(ctx context.Context, id string) (*dtos.AirplaneResponse, error) {
	airplane, err := s.airplanes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if airplane == nil {
		return nil, &common.NotFoundError{Resource: "airplane", ID: id}
	}
	resp := airplaneResponse(*airplane)
	return &resp, nil
}

// ---- crew ----

func (s *ReferenceService) ListCrew(ctx context.Context) (any, error) {
	return s.cached(listKey(constants.KindCrew), constants.KindCrew, func() (any, error) {
		crews, err := s.crews.List(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]dtos.CrewResponse, 0, len(crews))
		for _, c := range crews {
			resp = append(resp, crewResponse(c))
		}
		return resp, nil
	})
}

func (s *ReferenceService) GetCrew(ctx context.Context, id string) (any, error) {
	return s.cached(detailKey(constants.KindCrew, id), constants.KindCrew, func() (any, error) {
		crew, err := s.crews.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if crew == nil {
			return nil, &common.NotFoundError{Resource: "crew member", ID: id}
		}
		return crewResponse(*crew), nil
	})
}

func (s *ReferenceService) CreateCrew(ctx context.Context, req dtos.CrewRequest) (*dtos.CrewResponse, error) {
	verr := common.NewValidationError()
	if strings.TrimSpace(req.FirstName) == "" {
		verr.Add("first_name", "first name must not be blank")
	}
	if strings.TrimSpace(req.LastName) == "" {
		verr.Add("last_name", "last name must not be blank")
	}
	if verr.HasErrors() {
		return nil, verr
	}
	crew := &models.Crew{FirstName: req.FirstName, LastName: req.LastName}
	if err := s.crews.Create(ctx, crew); err != nil {
		return nil, err
	}
	s.bus.OnMutated(constants.KindCrew, crew.ID)
	resp := crewResponse(*crew)
	return &resp, nil
}

// validateAirport checks required fields.
func validateAirport(req dtos.AirportRequest) error {
	verr := common.NewValidationError()
	if strings.TrimSpace(req.Name) == "" {
		verr.Add("name", "name must not be blank")
	}
	if strings.TrimSpace(req.ClosestBigCity) == "" {
		verr.Add("closest_big_city", "closest big city must not be blank")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// translateDuplicate maps a unique-index violation to a field error;
// everything else passes through untouched.
func translateDuplicate(err error, field, message string) error {
	if errors.Is(err, gormlib.ErrDuplicatedKey) {
		return common.NewValidationError().Add(field, message)
	}
	return err
}
