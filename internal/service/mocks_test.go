package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetRateForUpdate(ctx context.Context, id int32) (int32, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockUserRepo) UpdateRate(ctx context.Context, id int32, rate int32, badge domain.RentalBadge) error {
	args := m.Called(ctx, id, rate, badge)
	return args.Error(0)
}
func (m *MockUserRepo) UpdateRating(ctx context.Context, id int32, rating float64, reviewCount int32) error {
	args := m.Called(ctx, id, rating, reviewCount)
	return args.Error(0)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, id int32, from []domain.RentalStatus, to domain.RentalStatus, rejectionReason string) (bool, error) {
	args := m.Called(ctx, id, from, to, rejectionReason)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) ListOccupyingByItem(ctx context.Context, itemID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) LockItemCalendar(ctx context.Context, itemID int32) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
func (m *MockRentalRepo) CancelOverdue(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, renterID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, ownerID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

// MockRateLogRepo
type MockRateLogRepo struct {
	mock.Mock
}

func (m *MockRateLogRepo) Create(ctx context.Context, log *domain.HostRentalRateLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
func (m *MockRateLogRepo) ListByHost(ctx context.Context, hostID int32, limit, offset int32) ([]domain.HostRentalRateLog, error) {
	args := m.Called(ctx, hostID, limit, offset)
	return args.Get(0).([]domain.HostRentalRateLog), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) AggregateForReviewee(ctx context.Context, revieweeID int32) (float64, int32, error) {
	args := m.Called(ctx, revieweeID)
	return args.Get(0).(float64), args.Get(1).(int32), args.Error(2)
}
func (m *MockReviewRepo) ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	args := m.Called(ctx, revieweeID, page, pageSize)
	return args.Get(0).([]domain.Review), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// mockStore bundles the repository mocks behind the Store interface.
// ExecTx runs the callback against the same store, which matches the
// production behavior of a transaction-bound store closely enough for
// unit tests.
type mockStore struct {
	users         *MockUserRepo
	items         *MockItemRepo
	rentals       *MockRentalRepo
	rateLogs      *MockRateLogRepo
	reviews       *MockReviewRepo
	notifications *MockNotificationRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		users:         &MockUserRepo{},
		items:         &MockItemRepo{},
		rentals:       &MockRentalRepo{},
		rateLogs:      &MockRateLogRepo{},
		reviews:       &MockReviewRepo{},
		notifications: &MockNotificationRepo{},
	}
}

func (s *mockStore) Users() repository.UserRepository                  { return s.users }
func (s *mockStore) Items() repository.ItemRepository                  { return s.items }
func (s *mockStore) Rentals() repository.RentalRepository              { return s.rentals }
func (s *mockStore) RateLogs() repository.RateLogRepository            { return s.rateLogs }
func (s *mockStore) Reviews() repository.ReviewRepository              { return s.reviews }
func (s *mockStore) Notifications() repository.NotificationRepository  { return s.notifications }

func (s *mockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

func (s *mockStore) assertExpectations(t mock.TestingT) {
	s.users.AssertExpectations(t)
	s.items.AssertExpectations(t)
	s.rentals.AssertExpectations(t)
	s.rateLogs.AssertExpectations(t)
	s.reviews.AssertExpectations(t)
	s.notifications.AssertExpectations(t)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, itemName string) error {
	args := m.Called(ctx, ownerEmail, renterName, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReceivedNotification(ctx context.Context, renterEmail, itemName string) error {
	args := m.Called(ctx, renterEmail, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingApprovalNotification(ctx context.Context, renterEmail, itemName string) error {
	args := m.Called(ctx, renterEmail, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingRejectionNotification(ctx context.Context, renterEmail, itemName, reason string) error {
	args := m.Called(ctx, renterEmail, itemName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCompletionNotification(ctx context.Context, email, itemName string) error {
	args := m.Called(ctx, email, itemName)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingExpiredNotification(ctx context.Context, renterEmail, itemName string) error {
	args := m.Called(ctx, renterEmail, itemName)
	return args.Error(0)
}
