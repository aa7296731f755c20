package rest

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hpmalinova/Finance-Tracker/model"
	"github.com/hpmalinova/Finance-Tracker/repository"
)

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, *user)
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTransactionRepo struct {
	transactions []model.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	t.ID = primitive.NewObjectID()
	if t.Type == "" {
		t.Type = model.TypeExpense
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	f.transactions = append(f.transactions, *t)
	return t, nil
}

func (f *fakeTransactionRepo) forUser(userID primitive.ObjectID, start, end *time.Time) []model.Transaction {
	var out []model.Transaction
	for _, t := range f.transactions {
		if t.UserID != userID {
			continue
		}
		if start != nil && t.Date.Before(*start) {
			continue
		}
		if end != nil && t.Date.After(*end) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (f *fakeTransactionRepo) FindRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Transaction, error) {
	out := f.forUser(userID, nil, nil)
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTransactionRepo) FindPage(ctx context.Context, userID primitive.ObjectID, start, end *time.Time, page, limit int64) ([]model.Transaction, int64, error) {
	out := f.forUser(userID, start, end)
	total := int64(len(out))

	from := (page - 1) * limit
	if from > total {
		from = total
	}
	to := from + limit
	if to > total {
		to = total
	}
	return out[from:to], total, nil
}

func (f *fakeTransactionRepo) FindBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]model.Transaction, error) {
	return f.forUser(userID, &from, &to), nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, id, userID primitive.ObjectID, t *model.Transaction) (*model.Transaction, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id && f.transactions[i].UserID == userID {
			t.ID = id
			t.UserID = userID
			t.UpdatedAt = time.Now()
			f.transactions[i] = *t
			updated := f.transactions[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	for i := range f.transactions {
		if f.transactions[i].ID == id && f.transactions[i].UserID == userID {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeExpenseRepo struct {
	expenses []model.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *model.Expense) (*model.Expense, error) {
	e.ID = primitive.NewObjectID()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	f.expenses = append(f.expenses, *e)
	return e, nil
}

func (f *fakeExpenseRepo) FindRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeExpenseRepo) FindPage(ctx context.Context, userID primitive.ObjectID, start, end *time.Time, page, limit int64) ([]model.Expense, int64, error) {
	var out []model.Expense
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	total := int64(len(out))

	from := (page - 1) * limit
	if from > total {
		from = total
	}
	to := from + limit
	if to > total {
		to = total
	}
	return out[from:to], total, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, id, userID primitive.ObjectID, e *model.Expense) (*model.Expense, error) {
	for i := range f.expenses {
		if f.expenses[i].ID == id && f.expenses[i].UserID == userID {
			e.ID = id
			e.UserID = userID
			f.expenses[i] = *e
			updated := f.expenses[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	for i := range f.expenses {
		if f.expenses[i].ID == id && f.expenses[i].UserID == userID {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type addSpentCall struct {
	userID   primitive.ObjectID
	category string
	month    string
	year     int
	amount   float64
}

type fakeBudgetRepo struct {
	budgets   []model.Budget
	addSpent  []addSpentCall
	returnErr error
}

func (f *fakeBudgetRepo) FindByMonth(ctx context.Context, userID primitive.ObjectID, month string) ([]model.Budget, error) {
	var out []model.Budget
	for _, b := range f.budgets {
		if b.UserID == userID && b.Month == month {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) SetLimit(ctx context.Context, userID primitive.ObjectID, category, month string, year int, limit float64) (*model.Budget, error) {
	for i := range f.budgets {
		b := &f.budgets[i]
		if b.UserID == userID && b.Category == category && b.Month == month {
			b.LimitAmount = limit
			b.Year = year
			budget := *b
			return &budget, nil
		}
	}
	budget := model.Budget{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Category:    category,
		Month:       month,
		Year:        year,
		LimitAmount: limit,
	}
	f.budgets = append(f.budgets, budget)
	return &budget, nil
}

func (f *fakeBudgetRepo) AddSpent(ctx context.Context, userID primitive.ObjectID, category, month string, year int, amount float64) error {
	if f.returnErr != nil {
		return f.returnErr
	}
	f.addSpent = append(f.addSpent, addSpentCall{userID, category, month, year, amount})
	for i := range f.budgets {
		b := &f.budgets[i]
		if b.UserID == userID && b.Category == category && b.Month == month {
			b.CurrentSpent += amount
			b.Year = year
			return nil
		}
	}
	f.budgets = append(f.budgets, model.Budget{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Category:     category,
		Month:        month,
		Year:         year,
		CurrentSpent: amount,
	})
	return nil
}
