package gorm

import "time"

// Crew is a crew member assignable to flights.
type Crew struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(63);not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(63);not null" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()" json:"-"`
}

// TableName specifies the table name for GORM
func (Crew) TableName() string {
	return "crews"
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
