package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hpmalinova/Finance-Tracker/model"
)

type fakeSource struct {
	transactions []model.Transaction
}

func (f *fakeSource) FindBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range f.transactions {
		if t.UserID != userID {
			continue
		}
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

var testUser = primitive.NewObjectID()

func tx(amount float64, category, txType, method string, date time.Time) model.Transaction {
	return model.Transaction{
		ID:            primitive.NewObjectID(),
		UserID:        testUser,
		Amount:        amount,
		Category:      category,
		Type:          txType,
		PaymentMethod: method,
		Date:          date,
	}
}

func TestDashboard_CurrentMonthSummary(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	src := &fakeSource{transactions: []model.Transaction{
		tx(100, "Food", model.TypeExpense, "UPI", asOf),
		tx(500, "Salary", model.TypeIncome, "Net Banking", asOf.AddDate(0, 0, -3)),
	}}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	assert.Equal(t, 100.0, stats.TotalSpent)
	assert.Equal(t, 500.0, stats.TotalIncome)
	assert.Equal(t, 400.0, stats.NetAmount)
	assert.Equal(t, 80.0, stats.SavingsRate)
	assert.Equal(t, "Food", stats.TopExpenseCategory)
	assert.Equal(t, "Salary", stats.TopIncomeCategory)
	assert.Equal(t, "Food", stats.TopCategory)
	assert.Equal(t, map[string]float64{"Food": 100}, stats.ExpenseCategoryData)
	assert.Equal(t, map[string]float64{"Salary": 500}, stats.IncomeCategoryData)
	assert.Equal(t, 2, stats.TotalTransactions)
	assert.Equal(t, 1, stats.ExpenseCount)
	assert.Equal(t, 1, stats.IncomeCount)
	assert.Equal(t, 100.0, stats.AvgExpense)
	assert.Equal(t, 500.0, stats.AvgIncome)
	assert.Equal(t, map[string]int{"UPI": 1, "Net Banking": 1}, stats.PaymentMethodData)
}

func TestDashboard_SavingsRateRounding(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{transactions: []model.Transaction{
		tx(100, "Food", model.TypeExpense, "Cash", asOf),
		tx(300, "Salary", model.TypeIncome, "Cash", asOf),
	}}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	// (300-100)/300*100 = 66.666... rounds to two decimals
	assert.Equal(t, 66.67, stats.SavingsRate)
}

func TestDashboard_NoIncome(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{transactions: []model.Transaction{
		tx(42, "Food", model.TypeExpense, "Cash", asOf),
	}}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	assert.Equal(t, 0.0, stats.SavingsRate)
	assert.Equal(t, 0.0, stats.AvgIncome)
	assert.Equal(t, "", stats.TopIncomeCategory)
	assert.Equal(t, -42.0, stats.NetAmount)
}

func TestDashboard_LegacyRecordsCountAsExpenses(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{transactions: []model.Transaction{
		// written before the type field existed
		tx(30, "Transport", "", "Cash", asOf),
		tx(70, "Food", model.TypeExpense, "Cash", asOf),
	}}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	assert.Equal(t, 100.0, stats.TotalSpent)
	assert.Equal(t, 2, stats.ExpenseCount)
	assert.Equal(t, 0, stats.IncomeCount)
}

func TestDashboard_TopCategoryTieBreak(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{transactions: []model.Transaction{
		tx(50, "Shopping", model.TypeExpense, "Cash", asOf),
		tx(50, "Food", model.TypeExpense, "Cash", asOf),
	}}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	assert.Equal(t, "Food", stats.TopExpenseCategory)
}

func TestDashboard_TopPaymentMethods(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	methods := []string{"UPI", "UPI", "UPI", "Cash", "Cash", "Credit Card", "Debit Card", "Net Banking", "Wallet"}
	var transactions []model.Transaction
	for _, m := range methods {
		transactions = append(transactions, tx(10, "Food", model.TypeExpense, m, asOf))
	}
	src := &fakeSource{transactions: transactions}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	require.Len(t, stats.TopPaymentMethods, 5)
	assert.Equal(t, "UPI", stats.TopPaymentMethods[0])
	assert.Equal(t, "Cash", stats.TopPaymentMethods[1])
	// remaining three have one use each, ordered by name
	assert.Equal(t, []string{"Credit Card", "Debit Card", "Net Banking"}, stats.TopPaymentMethods[2:])
}

func TestDashboard_MonthlySeries(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{transactions: []model.Transaction{
		tx(200, "Rent", model.TypeExpense, "Cash", time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)),
		tx(900, "Salary", model.TypeIncome, "Net Banking", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
		tx(50, "Food", model.TypeExpense, "UPI", asOf),
	}}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	require.Len(t, stats.MonthlyData, 6)

	labels := make([]string, 0, 6)
	for _, p := range stats.MonthlyData {
		labels = append(labels, p.Month)
	}
	assert.Equal(t, []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "May 2024", "Jun 2024"}, labels)

	april := stats.MonthlyData[3]
	assert.Equal(t, 200.0, april.Expenses)
	assert.Equal(t, 200.0, april.Amount)
	assert.Equal(t, 900.0, april.Income)
	assert.Equal(t, 700.0, april.Net)

	may := stats.MonthlyData[4]
	assert.Equal(t, 0.0, may.Expenses)
	assert.Equal(t, 0.0, may.Income)

	june := stats.MonthlyData[5]
	assert.Equal(t, 50.0, june.Expenses)
}

func TestDashboard_SeriesAnchorsOnMonthStart(t *testing.T) {
	// A reference day past the 28th must not skip short months when
	// stepping back.
	asOf := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{}

	stats, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	labels := make([]string, 0, 6)
	for _, p := range stats.MonthlyData {
		labels = append(labels, p.Month)
	}
	assert.Equal(t, []string{"Oct 2023", "Nov 2023", "Dec 2023", "Jan 2024", "Feb 2024", "Mar 2024"}, labels)
}

func TestDashboard_Idempotent(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{transactions: []model.Transaction{
		tx(100, "Food", model.TypeExpense, "UPI", asOf),
		tx(500, "Salary", model.TypeIncome, "Cash", asOf),
	}}

	first, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)
	second, err := Dashboard(context.Background(), src, testUser, asOf)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMonthRange(t *testing.T) {
	t.Run("leap february", func(t *testing.T) {
		start, end := MonthRange(time.Date(2024, time.February, 10, 8, 30, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC), end)
	})
	t.Run("thirty one days", func(t *testing.T) {
		start, end := MonthRange(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 999999999, time.UTC), end)
	})
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-11", MonthKey(time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC)))
}
