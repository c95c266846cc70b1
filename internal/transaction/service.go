package transaction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"expense_manager/internal/observability"
)

// ErrNotFound is returned when a delete matched no record.
var ErrNotFound = errors.New("transaction not found")

// searchDateLayout is the calendar-date format accepted by the day
// search query parameter.
const searchDateLayout = "2006-01-02"

// AddInput carries the add-transaction request fields. Date is optional
// and defaults to the current time.
type AddInput struct {
	UserID      string
	Amount      float64
	Description string
	Date        *time.Time
}

type ServiceInterface interface {
	Add(ctx context.Context, in AddInput) (*Transaction, error)
	ListRecent(ctx context.Context, userID string) ([]*Transaction, error)
	Delete(ctx context.Context, id string) error
	SearchByDay(ctx context.Context, userID, date string) ([]*Transaction, error)
	MonthlyReport(ctx context.Context, userID string, month, year int) (*Report, error)
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

// DeriveType maps an amount to its transaction type: zero counts as
// income.
func DeriveType(amount float64) string {
	if amount >= 0 {
		return TypeIncome
	}
	return TypeExpense
}

// DayWindow computes the search range for one calendar day in UTC. The
// upper bound is 23:59:59 queried exclusively, so the final second of
// the day never matches.
func DayWindow(day time.Time) (start, end time.Time) {
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end = start.Add(24*time.Hour - time.Second)
	return start, end
}

// MonthWindow computes the report range for a month in UTC: the first
// of the month through the last calendar day at midnight, both
// inclusive.
func MonthWindow(month, year int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// Summarize reduces a set of transactions to income and expense totals.
// The stored type field decides the bucket, not the sign of the amount.
func Summarize(txs []*Transaction) *Report {
	r := &Report{}
	for _, t := range txs {
		switch t.Type {
		case TypeIncome:
			r.Income += t.Amount
		case TypeExpense:
			r.Expense += math.Abs(t.Amount)
		}
	}
	return r
}

// Add derives the type from the amount's sign, fills in the date if
// absent and persists the record.
func (s *Service) Add(ctx context.Context, in AddInput) (*Transaction, error) {
	date := time.Now().UTC()
	if in.Date != nil {
		date = *in.Date
	}

	tx := &Transaction{
		UserID:      in.UserID,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        date,
		Type:        DeriveType(in.Amount),
	}

	id, err := s.repo.Insert(ctx, tx)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	observability.CountTransactionCreated(tx.Type)
	return tx, nil
}

// ListRecent returns the user's newest transactions, capped at 10.
func (s *Service) ListRecent(ctx context.Context, userID string) ([]*Transaction, error) {
	return s.repo.FindRecentByUser(ctx, userID)
}

// Delete removes a transaction by id; ErrNotFound when nothing matched.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	observability.CountTransactionDeleted()
	return nil
}

// SearchByDay returns the user's transactions within the given calendar
// day, date descending.
func (s *Service) SearchByDay(ctx context.Context, userID, date string) ([]*Transaction, error) {
	day, err := time.Parse(searchDateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse search date %q: %w", date, err)
	}

	start, end := DayWindow(day)
	return s.repo.FindByUserBetween(ctx, userID, start, end)
}

// MonthlyReport fetches every transaction of the month and reduces it
// in process. It deliberately uses the unlimited range query: the
// aggregation must see all records, not the capped listing page.
func (s *Service) MonthlyReport(ctx context.Context, userID string, month, year int) (*Report, error) {
	start, end := MonthWindow(month, year)

	txs, err := s.repo.FindAllByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return Summarize(txs), nil
}
