package gorm

import "time"

// AirplaneType groups airplanes by model family.
type AirplaneType struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(63);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()" json:"-"`
}

// TableName specifies the table name for GORM
func (AirplaneType) TableName() string {
	return "airplane_types"
}

// Airplane describes the physical seating grid every ticket on one of
// its flights must fit inside.
type Airplane struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"column:name;type:varchar(63);not null" json:"name"`
	Rows           int       `gorm:"column:rows;not null;check:rows >= 1" json:"rows"`
	SeatsInRow     int       `gorm:"column:seats_in_row;not null;check:seats_in_row >= 1" json:"seats_in_row"`
	AirplaneTypeID string    `gorm:"column:airplane_type_id;type:uuid;not null" json:"airplane_type_id"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;default:now()" json:"-"`

	AirplaneType *AirplaneType `gorm:"foreignKey:AirplaneTypeID;constraint:OnDelete:CASCADE" json:"airplane_type,omitempty"`
}

// TableName specifies the table name for GORM
func (Airplane) TableName() string {
	return "airplanes"
}

// Capacity is the number of bookable seats: rows x seats per row.
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}
