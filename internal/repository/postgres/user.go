package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, phone_number, address, rental_rate, rental_badge, rating, review_count, created_on, updated_on`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var phone, address sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.Name, &phone, &address,
		&u.RentalRate, &u.RentalBadge, &u.Rating, &u.ReviewCount, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	u.PhoneNumber = phone.String
	u.Address = address.String
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.RentalRate == 0 {
		u.RentalRate = domain.DefaultRentalRate
	}
	if u.RentalBadge == "" {
		u.RentalBadge = domain.BadgeForRate(u.RentalRate)
	}
	query := `INSERT INTO users (email, name, phone_number, address, rental_rate, rental_badge, rating, review_count, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PhoneNumber, u.Address,
		u.RentalRate, u.RentalBadge, u.Rating, u.ReviewCount, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.CodeNotFound, "user %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.CodeNotFound, "user %s not found", email)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetRateForUpdate(ctx context.Context, id int32) (int32, error) {
	var rate sql.NullInt32
	query := `SELECT rental_rate FROM users WHERE id = $1 FOR UPDATE`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rate)
	if err == sql.ErrNoRows {
		return 0, domain.Errorf(domain.CodeNotFound, "user %d not found", id)
	}
	if err != nil {
		return 0, err
	}
	if !rate.Valid {
		return domain.DefaultRentalRate, nil
	}
	return rate.Int32, nil
}

func (r *userRepository) UpdateRate(ctx context.Context, id int32, rate int32, badge domain.RentalBadge) error {
	query := `UPDATE users SET rental_rate = $1, rental_badge = $2, updated_on = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, rate, badge, time.Now().UTC(), id)
	return err
}

func (r *userRepository) UpdateRating(ctx context.Context, id int32, rating float64, reviewCount int32) error {
	query := `UPDATE users SET rating = $1, review_count = $2, updated_on = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, rating, reviewCount, time.Now().UTC(), id)
	return err
}
