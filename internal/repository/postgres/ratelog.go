package postgres

import (
	"context"
	"time"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

type rateLogRepository struct {
	db DBTX
}

func NewRateLogRepository(db DBTX) repository.RateLogRepository {
	return &rateLogRepository{db: db}
}

// Create appends one audit row. There is no update or delete path; the
// log is immutable history.
func (r *rateLogRepository) Create(ctx context.Context, l *domain.HostRentalRateLog) error {
	query := `INSERT INTO host_rental_rate_logs (host_id, rental_id, event, delta, rate_before, rate_after, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.HostID, l.RentalID, l.Event, l.Delta,
		l.RateBefore, l.RateAfter, time.Now().UTC()).Scan(&l.ID)
}

func (r *rateLogRepository) ListByHost(ctx context.Context, hostID int32, limit, offset int32) ([]domain.HostRentalRateLog, error) {
	query := `SELECT id, host_id, rental_id, event, delta, rate_before, rate_after, created_on
	          FROM host_rental_rate_logs WHERE host_id = $1
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, hostID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.HostRentalRateLog
	for rows.Next() {
		var l domain.HostRentalRateLog
		if err := rows.Scan(&l.ID, &l.HostID, &l.RentalID, &l.Event, &l.Delta,
			&l.RateBefore, &l.RateAfter, &l.CreatedOn); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
