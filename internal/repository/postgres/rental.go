package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, item_id, renter_id, owner_id, start_date, end_date, total_days, total_amount_cents, status, rejection_reason, created_on, updated_on`

func scanRental(row interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var reason sql.NullString
	err := row.Scan(&rt.ID, &rt.ItemID, &rt.RenterID, &rt.OwnerID, &rt.StartDate, &rt.EndDate,
		&rt.TotalDays, &rt.TotalAmountCents, &rt.Status, &reason, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	rt.RejectionReason = reason.String
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (item_id, renter_id, owner_id, start_date, end_date, total_days, total_amount_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, rt.ItemID, rt.RenterID, rt.OwnerID, rt.StartDate, rt.EndDate,
		rt.TotalDays, rt.TotalAmountCents, rt.Status, now, now).Scan(&rt.ID, &rt.CreatedOn)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.Errorf(domain.CodeNotFound, "rental %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, from []domain.RentalStatus, to domain.RentalStatus, rejectionReason string) (bool, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	query := `UPDATE rentals
	          SET status = $1,
	              rejection_reason = CASE WHEN $2 <> '' THEN $2 ELSE rejection_reason END,
	              updated_on = $3
	          WHERE id = $4 AND status = ANY($5)`
	res, err := r.db.ExecContext(ctx, query, to, rejectionReason, time.Now().UTC(), id, pq.Array(statuses))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *rentalRepository) ListOccupyingByItem(ctx context.Context, itemID int32) ([]domain.Rental, error) {
	occupying := []string{
		string(domain.RentalStatusPending),
		string(domain.RentalStatusApproved),
		string(domain.RentalStatusOngoing),
		string(domain.RentalStatusBlocked),
		string(domain.RentalStatusCompleted),
	}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE item_id = $1 AND status = ANY($2) ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, itemID, pq.Array(occupying))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

// LockItemCalendar takes a transaction-scoped advisory lock keyed by the
// item id. Concurrent booking admissions for the same item serialize on
// it; the lock releases when the surrounding transaction ends.
func (r *rentalRepository) LockItemCalendar(ctx context.Context, itemID int32) error {
	_, err := r.db.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(itemID))
	if err != nil {
		return fmt.Errorf("lock item calendar %d: %w", itemID, err)
	}
	return nil
}

func (r *rentalRepository) CancelOverdue(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `UPDATE rentals
	          SET status = $1, updated_on = $2
	          WHERE status = $3 AND created_on < $4
	          RETURNING ` + rentalColumns
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusCancelled, time.Now().UTC(), domain.RentalStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cancelled []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		cancelled = append(cancelled, *rt)
	}
	return cancelled, rows.Err()
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, "renter_id", renterID, status, page, pageSize)
}

func (r *rentalRepository) ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return r.list(ctx, "owner_id", ownerID, status, page, pageSize)
}

func (r *rentalRepository) list(ctx context.Context, column string, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	base := `FROM rentals WHERE ` + column + ` = $1`
	args := []any{userID}
	argIdx := 2
	if status != "" {
		base += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) "+base, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + rentalColumns + " " + base +
		fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}
