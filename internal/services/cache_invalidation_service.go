package services

import (
	"golang.org/x/sync/errgroup"

	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/constants"
	"skyward/aerodrome/internal/logging"
	"skyward/aerodrome/internal/metrics"
)

// CacheInvalidator maps entity mutations to cache key patterns and
// evicts them. Services call OnMutated after their transaction commits;
// eviction is best-effort and never fails the write, so the worst case
// is a stale view surviving until its TTL.
//
// Registrations are explicit rather than derived: flight views embed
// route, airplane and crew data, so mutations of those kinds also evict
// the flight pattern, and the registration table below is the single
// auditable place where that is declared.
type CacheInvalidator struct {
	cache    common.CacheStore
	metrics  *metrics.MetricsRegistry
	handlers map[constants.EntityKind][]string
}

func NewCacheInvalidator(cache common.CacheStore, metricsReg *metrics.MetricsRegistry) *CacheInvalidator {
	inv := &CacheInvalidator{
		cache:    cache,
		metrics:  metricsReg,
		handlers: make(map[constants.EntityKind][]string),
	}

	flight := constants.KindFlight.ViewKeyPattern()

	inv.register(constants.KindAirport, constants.KindAirport.ViewKeyPattern())
	inv.register(constants.KindRoute, constants.KindRoute.ViewKeyPattern(), flight)
	inv.register(constants.KindAirplane, constants.KindAirplane.ViewKeyPattern(), flight)
	inv.register(constants.KindAirplaneType,
		constants.KindAirplaneType.ViewKeyPattern(),
		constants.KindAirplane.ViewKeyPattern(),
		flight)
	inv.register(constants.KindCrew, constants.KindCrew.ViewKeyPattern(), flight)
	inv.register(constants.KindFlight, flight)
	inv.register(constants.KindOrder, constants.KindOrder.ViewKeyPattern())
	inv.register(constants.KindTicket, constants.KindTicket.ViewKeyPattern(), flight)

	return inv
}

func (inv *CacheInvalidator) register(kind constants.EntityKind, patterns ...string) {
	inv.handlers[kind] = patterns
}

// Patterns returns the registered eviction patterns for a kind.
func (inv *CacheInvalidator) Patterns(kind constants.EntityKind) []string {
	return inv.handlers[kind]
}

// OnMutated evicts every pattern registered for the kind. Failures are
// logged and swallowed; the caller's write already committed and must
// not observe them.
func (inv *CacheInvalidator) OnMutated(kind constants.EntityKind, entityID string) {
	patterns, ok := inv.handlers[kind]
	if !ok {
		logging.Warn("cache invalidation: unregistered entity kind",
			"kind", kind.String(), "entity_id", entityID)
		return
	}

	var g errgroup.Group
	for _, pattern := range patterns {
		g.Go(func() error {
			evicted, err := inv.cache.DeletePattern(pattern)
			if err != nil {
				logging.Warn("cache invalidation failed, entries expire by TTL",
					"kind", kind.String(),
					"entity_id", entityID,
					"pattern", pattern,
					"error", err.Error(),
				)
				return nil
			}
			if inv.metrics != nil {
				inv.metrics.CacheEvictionsTotal.WithLabelValues(kind.String()).Add(float64(evicted))
			}
			return nil
		})
	}
	_ = g.Wait()
}
