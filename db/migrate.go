package db

import (
	"fmt"
	"log"

	"github.com/vigilbook/vigil-booking/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.AvailabilityRule{},
		&models.Unavailability{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// The exclusion constraint is the correctness backstop for concurrent
	// reservation commits: two non-cancelled bookings for the same provider
	// can never hold overlapping ranges, whatever the isolation level lets
	// through. Needs btree_gist for the provider_id equality part.
	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		log.Fatal("Failed to enable btree_gist: ", err)
	}
	if !DB.Migrator().HasConstraint(&models.Booking{}, models.BookingOverlapConstraint) {
		stmt := fmt.Sprintf(`ALTER TABLE bookings ADD CONSTRAINT %s
			EXCLUDE USING gist (
				provider_id WITH =,
				tstzrange(start_at, end_at) WITH &&
			) WHERE (status <> 'cancelled' AND deleted_at IS NULL)`,
			models.BookingOverlapConstraint)
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatal("Failed to add booking overlap constraint: ", err)
		}
	}

	fmt.Println("✅ Migrations applied successfully!")
}
