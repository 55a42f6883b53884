package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	gormlib "gorm.io/gorm"

	models "skyward/aerodrome/internal/models/gorm"
)

var PgDB *gormlib.DB

func InitPostgresORM(dsn string) (*gormlib.DB, error) {
	db, err := gormlib.Open(postgres.Open(dsn), &gormlib.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	PgDB = db
	return db, nil
}

// Migrate creates or updates the schema. Ticket migration is what puts
// the uniq_ticket_seat index in place; the booking path depends on it.
func Migrate(db *gormlib.DB) error {
	err := db.AutoMigrate(
		&models.Airport{},
		&models.AirplaneType{},
		&models.Airplane{},
		&models.Crew{},
		&models.Route{},
		&models.Flight{},
		&models.Order{},
		&models.Ticket{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
