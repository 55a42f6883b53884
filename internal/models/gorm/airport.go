package gorm

import "time"

// Airport is a reference-data row. Name is unique across the fleet's
// network; routes reference airports on both ends.
type Airport struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"column:name;type:varchar(63);not null;uniqueIndex" json:"name"`
	ClosestBigCity string    `gorm:"column:closest_big_city;type:varchar(63);not null" json:"closest_big_city"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;default:now()" json:"-"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
