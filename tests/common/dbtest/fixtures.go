//go:build e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind the bcrypt hash every seeded user gets.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts a user with the shared test password and returns its id.
func CreateTestUser(t *testing.T, db *pgxpool.Pool, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, first_name, last_name, phone, is_active)
		 VALUES ($1, $2, $3, $4, 'Test', 'User', '07000000000', true)
		 ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

// CreateTestStudent inserts a student owned by parentID.
func CreateTestStudent(t *testing.T, db *pgxpool.Pool, parentID uuid.UUID, firstName, lastName string) uuid.UUID {
	t.Helper()

	studentID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO students (id, parent_id, first_name, last_name, date_of_birth)
		 VALUES ($1, $2, $3, $4, '2017-03-14')`,
		studentID, parentID, firstName, lastName)
	require.NoError(t, err)
	return studentID
}

// SeedSession inserts a venue, class and open session and returns the session id.
func SeedSession(t *testing.T, db *pgxpool.Pool, classType string, pricePence int64, spots int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	venueID := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO venues (id, name, address)
		 VALUES ($1, 'Riverside Kitchen', '1 River Lane, Bristol')`,
		venueID)
	require.NoError(t, err)

	classID := uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO classes (id, type, name, day_of_week, start_time, end_time, age_min, age_max, max_size, instructor, venue_id, price_pence)
		 VALUES ($1, $2, 'Junior Bakers', 'Monday', '16:00', '17:30', 7, 11, $3, 'Sam', $4, $5)`,
		classID, classType, spots, venueID, pricePence)
	require.NoError(t, err)

	sessionID := uuid.New()
	_, err = db.Exec(ctx,
		`INSERT INTO sessions (id, class_id, class_name, class_type, date, venue_id, venue_name, instructor, start_time, end_time, age_min, age_max, price_pence, spots_available, spots_total, status)
		 VALUES ($1, $2, 'Junior Bakers', $3, CURRENT_DATE + 14, $4, 'Riverside Kitchen', 'Sam', '16:00', '17:30', 7, 11, $5, $6, $6, 'open')`,
		sessionID, classID, classType, venueID, pricePence, spots)
	require.NoError(t, err)

	return sessionID
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(),
		`TRUNCATE users, students, venues, recipes, classes, gallery_images, sessions, bookings, notification_jobs CASCADE`)
	return err
}
