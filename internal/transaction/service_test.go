package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRepository is a mock implementation of RepositoryInterface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, tx *Transaction) (primitive.ObjectID, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRepository) FindRecentByUser(ctx context.Context, userID string) ([]*Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func (m *MockRepository) FindByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]*Transaction, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func (m *MockRepository) FindAllByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]*Transaction, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func (m *MockRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestDeriveType(t *testing.T) {
	assert.Equal(t, TypeIncome, DeriveType(100))
	assert.Equal(t, TypeIncome, DeriveType(0)) // zero counts as income
	assert.Equal(t, TypeExpense, DeriveType(-0.01))
	assert.Equal(t, TypeExpense, DeriveType(-40))
}

func TestDayWindow(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	start, end := DayWindow(day)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), start)
	// Queried with an exclusive upper bound, so 23:59:59 itself is
	// never matched.
	assert.Equal(t, time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC), end)
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		month, year int
		start, end  time.Time
	}{
		{3, 2024, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{2, 2024, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{12, 2023, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		start, end := MonthWindow(tt.month, tt.year)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestSummarize_BucketsByStoredType(t *testing.T) {
	// The stored type field decides the bucket even if it disagrees
	// with the sign: type is derived once at creation, never again.
	txs := []*Transaction{
		{Amount: 100, Type: TypeIncome},
		{Amount: -40, Type: TypeExpense},
		{Amount: -10, Type: TypeIncome},
	}

	r := Summarize(txs)

	assert.Equal(t, 90.0, r.Income)
	assert.Equal(t, 40.0, r.Expense)
}

func TestAdd_DerivesTypeAndDefaultsDate(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	newID := primitive.NewObjectID()
	before := time.Now().UTC()

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(tx *Transaction) bool {
		return tx.Type == TypeExpense && !tx.Date.Before(before)
	})).Return(newID, nil)

	tx, err := service.Add(context.Background(), AddInput{
		UserID:      "u1",
		Amount:      -40,
		Description: "groceries",
	})

	require.NoError(t, err)
	assert.Equal(t, newID, tx.ID)
	assert.Equal(t, TypeExpense, tx.Type)
	assert.Equal(t, -40.0, tx.Amount)

	repo.AssertExpectations(t)
}

func TestAdd_UsesProvidedDate(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	date := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(tx *Transaction) bool {
		return tx.Date.Equal(date) && tx.Type == TypeIncome
	})).Return(primitive.NewObjectID(), nil)

	tx, err := service.Add(context.Background(), AddInput{
		UserID: "u1",
		Amount: 100,
		Date:   &date,
	})

	require.NoError(t, err)
	assert.Equal(t, date, tx.Date)

	repo.AssertExpectations(t)
}

func TestAdd_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("Insert", mock.Anything, mock.AnythingOfType("*transaction.Transaction")).
		Return(primitive.NilObjectID, errors.New("connection reset"))

	_, err := service.Add(context.Background(), AddInput{UserID: "u1", Amount: 5})

	assert.Error(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("DeleteByID", mock.Anything, "68b1c0ffee0000000000aaaa").Return(false, nil)

	err := service.Delete(context.Background(), "68b1c0ffee0000000000aaaa")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("DeleteByID", mock.Anything, "68b1c0ffee0000000000aaaa").Return(true, nil)

	err := service.Delete(context.Background(), "68b1c0ffee0000000000aaaa")

	assert.NoError(t, err)
}

func TestDelete_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("DeleteByID", mock.Anything, "not-a-hex-id").Return(false, errors.New("invalid id"))

	err := service.Delete(context.Background(), "not-a-hex-id")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSearchByDay_PassesDayWindow(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	wantStart := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC)

	repo.On("FindByUserBetween", mock.Anything, "u1", wantStart, wantEnd).
		Return([]*Transaction{}, nil)

	txs, err := service.SearchByDay(context.Background(), "u1", "2024-03-05")

	require.NoError(t, err)
	assert.Empty(t, txs)

	repo.AssertExpectations(t)
}

func TestSearchByDay_BadDate(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	_, err := service.SearchByDay(context.Background(), "u1", "yesterday")

	assert.Error(t, err)
	repo.AssertNotCalled(t, "FindByUserBetween")
}

func TestMonthlyReport_MarchScenario(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	repo.On("FindAllByUserInRange", mock.Anything, "u1", wantStart, wantEnd).
		Return([]*Transaction{
			{Amount: 100, Type: TypeIncome, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
			{Amount: -40, Type: TypeExpense, Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		}, nil)

	report, err := service.MonthlyReport(context.Background(), "u1", 3, 2024)

	require.NoError(t, err)
	assert.Equal(t, 100.0, report.Income)
	assert.Equal(t, 40.0, report.Expense)

	repo.AssertExpectations(t)
}

func TestMonthlyReport_EmptyMonth(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("FindAllByUserInRange", mock.Anything, "u1", mock.Anything, mock.Anything).
		Return([]*Transaction{}, nil)

	report, err := service.MonthlyReport(context.Background(), "u1", 1, 2024)

	require.NoError(t, err)
	assert.Equal(t, 0.0, report.Income)
	assert.Equal(t, 0.0, report.Expense)
}

func TestMonthlyReport_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	repo.On("FindAllByUserInRange", mock.Anything, "u1", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := service.MonthlyReport(context.Background(), "u1", 3, 2024)

	assert.Error(t, err)
}
