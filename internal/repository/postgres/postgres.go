package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can
// run either standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements repository.Store over PostgreSQL.
type Store struct {
	db *sql.DB

	users         repository.UserRepository
	items         repository.ItemRepository
	rentals       repository.RentalRepository
	rateLogs      repository.RateLogRepository
	reviews       repository.ReviewRepository
	notifications repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	s := &Store{db: db}
	s.bind(db)
	return s
}

func (s *Store) bind(dbtx DBTX) {
	s.users = NewUserRepository(dbtx)
	s.items = NewItemRepository(dbtx)
	s.rentals = NewRentalRepository(dbtx)
	s.rateLogs = NewRateLogRepository(dbtx)
	s.reviews = NewReviewRepository(dbtx)
	s.notifications = NewNotificationRepository(dbtx)
}

func (s *Store) Users() repository.UserRepository                 { return s.users }
func (s *Store) Items() repository.ItemRepository                 { return s.items }
func (s *Store) Rentals() repository.RentalRepository             { return s.rentals }
func (s *Store) RateLogs() repository.RateLogRepository           { return s.rateLogs }
func (s *Store) Reviews() repository.ReviewRepository             { return s.reviews }
func (s *Store) Notifications() repository.NotificationRepository { return s.notifications }

// ExecTx runs fn against a Store bound to one transaction. A Store that
// is already transaction-bound runs fn directly on itself, so nested
// calls join the outer transaction.
func (s *Store) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txStore := &Store{}
	txStore.bind(tx)

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
