package constants

import "time"

type (
	APIStatus  string
	EntityKind string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// Entity kinds whose read views are cached. Every committed mutation of
// one of these publishes an invalidation event keyed by kind.
const (
	KindAirport      EntityKind = "airport"
	KindRoute        EntityKind = "route"
	KindAirplane     EntityKind = "airplane"
	KindAirplaneType EntityKind = "airplane_type"
	KindCrew         EntityKind = "crew"
	KindFlight       EntityKind = "flight"
	KindOrder        EntityKind = "order"
	KindTicket       EntityKind = "ticket"
)

func (k EntityKind) String() string { return string(k) }

// ViewKeyPrefix is the cache key prefix for this kind's read views.
// Keys look like "flight_view:list" or "flight_view:detail:<uuid>".
func (k EntityKind) ViewKeyPrefix() string { return string(k) + "_view" }

// ViewKeyPattern matches every cached view entry belonging to this kind.
func (k EntityKind) ViewKeyPattern() string { return "*" + string(k) + "_view*" }

// ViewCacheTTL bounds staleness when an eviction is missed.
const ViewCacheTTL = 5 * time.Minute
