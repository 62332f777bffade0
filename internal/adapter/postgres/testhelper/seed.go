package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/animal-rescue-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an active user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	city := "Curitiba"
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test " + string(role) + " " + suffix,
		Email:        "test-" + suffix + "@example.com",
		PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
		Role:         role,
		IsActive:     true,
		Profile:      domain.UserProfile{City: &city},
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, role, is_active, city, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role), user.IsActive,
		city, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedEvent creates an active event organized by userID. maxParticipants may be nil.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, maxParticipants *int) domain.Event {
	t.Helper()

	ts := now()
	event := domain.Event{
		ID:              uuid.New(),
		Title:           "Vaccination drive " + uniqueSuffix(),
		Description:     "Free rabies shots",
		EventType:       domain.EventTypeVaccination,
		StartDate:       ts.Add(72 * time.Hour),
		Location:        "Central park",
		Address:         "Rua XV, 100",
		City:            "Curitiba",
		State:           "PR",
		MaxParticipants: maxParticipants,
		IsActive:        true,
		UserID:          userID,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO events (id, title, description, event_type, start_date, location, address, city, state,
		                     max_participants, is_active, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		event.ID, event.Title, event.Description, string(event.EventType), event.StartDate,
		event.Location, event.Address, event.City, event.State,
		event.MaxParticipants, event.IsActive, event.UserID, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent: %v", err)
	}

	return event
}

// SeedVolunteer creates a pending volunteer profile for userID.
func SeedVolunteer(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Volunteer {
	t.Helper()

	ts := now()
	v := domain.Volunteer{
		ID:                  uuid.New(),
		UserID:              userID,
		Skills:              []string{},
		Availability:        domain.AvailabilityWeekends,
		PreferredActivities: []string{},
		Status:              domain.VolunteerStatusPending,
		Documents:           []string{},
		IsActive:            true,
		CreatedAt:           ts,
		UpdatedAt:           ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO volunteers (id, user_id, availability, status, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.UserID, string(v.Availability), string(v.Status), v.IsActive, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVolunteer: %v", err)
	}

	return v
}

// SeedAnimal creates an available animal listed by userID.
func SeedAnimal(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Animal {
	t.Helper()

	ts := now()
	a := domain.Animal{
		ID:             uuid.New(),
		Name:           "Rex " + uniqueSuffix(),
		Type:           "dog",
		AgeUnit:        domain.AgeUnitMonths,
		Gender:         domain.GenderMale,
		Size:           domain.SizeMedium,
		Description:    "Friendly mutt",
		AdoptionStatus: domain.AdoptionAvailable,
		Images:         []string{},
		UserID:         userID,
		Location:       "Shelter",
		City:           "Curitiba",
		State:          "PR",
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO animals (id, name, type, age_unit, gender, size, description, adoption_status,
		                      user_id, location, city, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.ID, a.Name, a.Type, string(a.AgeUnit), string(a.Gender), string(a.Size), a.Description,
		string(a.AdoptionStatus), a.UserID, a.Location, a.City, a.State, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnimal: %v", err)
	}

	return a
}
