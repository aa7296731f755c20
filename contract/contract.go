package contract

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hpmalinova/Finance-Tracker/model"
)

type UserRepo interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	FindRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Transaction, error)
	FindPage(ctx context.Context, userID primitive.ObjectID, start, end *time.Time, page, limit int64) ([]model.Transaction, int64, error)
	FindBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]model.Transaction, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, t *model.Transaction) (*model.Transaction, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type ExpenseRepo interface {
	Create(ctx context.Context, e *model.Expense) (*model.Expense, error)
	FindRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Expense, error)
	FindPage(ctx context.Context, userID primitive.ObjectID, start, end *time.Time, page, limit int64) ([]model.Expense, int64, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, e *model.Expense) (*model.Expense, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type BudgetRepo interface {
	FindByMonth(ctx context.Context, userID primitive.ObjectID, month string) ([]model.Budget, error)
	SetLimit(ctx context.Context, userID primitive.ObjectID, category, month string, year int, limit float64) (*model.Budget, error)
	// AddSpent atomically increments currentSpent for the budget keyed by
	// (userID, category, month), creating it when absent.
	AddSpent(ctx context.Context, userID primitive.ObjectID, category, month string, year int, amount float64) error
}

// ReportStore provisions the relational reporting tables. No request
// path writes to them; a batch job outside this codebase is expected
// to fill them in.
type ReportStore interface {
	InitSchema(ctx context.Context) error
}
