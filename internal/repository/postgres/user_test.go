package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository/postgres"
)

var userTestColumns = []string{"id", "email", "name", "phone_number", "address", "rental_rate", "rental_badge", "rating", "review_count", "created_on", "updated_on"}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(userTestColumns).
			AddRow(1, "host@example.com", "Host", "+1-555-0100", "12 Main St", 96, "recommended", 4.5, 10, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		u, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "host@example.com", u.Email)
		assert.Equal(t, domain.RentalBadgeRecommended, u.RentalBadge)
		assert.True(t, u.ProfileComplete())
	})

	t.Run("NullProfileFields", func(t *testing.T) {
		rows := sqlmock.NewRows(userTestColumns).
			AddRow(2, "new@example.com", "New", nil, nil, 85, "none", 0.0, 0, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		u, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.False(t, u.ProfileComplete())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(userTestColumns))

		_, err := repo.GetByID(ctx, 99)
		assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	})
}

func TestUserRepository_GetRateForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT rental_rate FROM users WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"rental_rate"}).AddRow(92))

		rate, err := repo.GetRateForUpdate(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(92), rate)
	})

	t.Run("NullRateDefaultsTo85", func(t *testing.T) {
		mock.ExpectQuery("SELECT rental_rate FROM users WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"rental_rate"}).AddRow(nil))

		rate, err := repo.GetRateForUpdate(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, int32(domain.DefaultRentalRate), rate)
	})
}

func TestUserRepository_UpdateRate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)

	mock.ExpectExec("UPDATE users SET rental_rate").
		WithArgs(int32(100), domain.RentalBadgeElite, sqlmock.AnyArg(), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateRate(context.Background(), 1, 100, domain.RentalBadgeElite)
	assert.NoError(t, err)
}
