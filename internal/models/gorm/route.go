package gorm

import "time"

// Route connects two airports. Source and destination are never the
// same airport; the service validates it and the check constraint
// enforces it.
type Route struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SourceID      string    `gorm:"column:source_id;type:uuid;not null" json:"source_id"`
	DestinationID string    `gorm:"column:destination_id;type:uuid;not null;check:chk_route_endpoints,source_id <> destination_id" json:"destination_id"`
	Distance      int       `gorm:"column:distance;not null;check:distance >= 0" json:"distance"`
	CreatedAt     time.Time `gorm:"column:created_at;default:now()" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;default:now()" json:"-"`

	Source      *Airport `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE" json:"source,omitempty"`
	Destination *Airport `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE" json:"destination,omitempty"`
}

// TableName specifies the table name for GORM
func (Route) TableName() string {
	return "routes"
}
