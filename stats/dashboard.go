package stats

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/hpmalinova/Finance-Tracker/model"
)

// historyMonths is the length of the dashboard time series, the
// reference month included.
const historyMonths = 6

type TransactionSource interface {
	FindBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]model.Transaction, error)
}

// MonthKey formats t as the "2006-01" key used by budgets.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthRange returns the inclusive window covering the calendar month
// of t, from the first day at midnight to the last nanosecond of the
// last day.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// Dashboard builds the dashboard for the calendar month of asOf plus a
// six month history ending at that month. Every invocation re-scans the
// relevant windows; nothing is cached. The historical months are
// independent of each other and are fetched concurrently.
func Dashboard(ctx context.Context, src TransactionSource, userID primitive.ObjectID, asOf time.Time) (*model.DashboardStats, error) {
	start, end := MonthRange(asOf)
	current, err := src.FindBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	sum := reduce(current)

	stats := &model.DashboardStats{
		TotalSpent:  sum.expenses.InexactFloat64(),
		TotalIncome: sum.income.InexactFloat64(),
		NetAmount:   sum.income.Sub(sum.expenses).InexactFloat64(),
		SavingsRate: savingsRate(sum.income, sum.expenses),

		TopExpenseCategory:  topCategory(sum.expenseByCategory),
		TopIncomeCategory:   topCategory(sum.incomeByCategory),
		ExpenseCategoryData: toFloatMap(sum.expenseByCategory),
		IncomeCategoryData:  toFloatMap(sum.incomeByCategory),

		TopPaymentMethods: topPaymentMethods(sum.paymentMethods),
		PaymentMethodData: sum.paymentMethods,

		TotalTransactions: sum.expenseCount + sum.incomeCount,
		ExpenseCount:      sum.expenseCount,
		IncomeCount:       sum.incomeCount,
	}
	if sum.expenseCount > 0 {
		stats.AvgExpense = stats.TotalSpent / float64(sum.expenseCount)
	}
	if sum.incomeCount > 0 {
		stats.AvgIncome = stats.TotalIncome / float64(sum.incomeCount)
	}
	stats.TopCategory = stats.TopExpenseCategory
	stats.CategoryData = stats.ExpenseCategoryData

	points, err := monthlySeries(ctx, src, userID, asOf)
	if err != nil {
		return nil, err
	}
	stats.MonthlyData = points

	return stats, nil
}

// monthlySeries reduces each of the six months ending at the month of
// asOf, oldest first. Months are anchored on the first day before
// stepping back so that a late reference day (say the 31st) cannot
// overflow into the wrong month.
func monthlySeries(ctx context.Context, src TransactionSource, userID primitive.ObjectID, asOf time.Time) ([]model.MonthPoint, error) {
	base := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	points := make([]model.MonthPoint, historyMonths)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < historyMonths; i++ {
		i := i
		g.Go(func() error {
			ref := base.AddDate(0, i-(historyMonths-1), 0)
			from, to := MonthRange(ref)
			transactions, err := src.FindBetween(gctx, userID, from, to)
			if err != nil {
				return err
			}

			sum := reduce(transactions)
			expenses := sum.expenses.InexactFloat64()
			income := sum.income.InexactFloat64()
			points[i] = model.MonthPoint{
				Month:    ref.Format("Jan 2006"),
				Amount:   expenses,
				Expenses: expenses,
				Income:   income,
				Net:      sum.income.Sub(sum.expenses).InexactFloat64(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

type summary struct {
	expenses          decimal.Decimal
	income            decimal.Decimal
	expenseByCategory map[string]decimal.Decimal
	incomeByCategory  map[string]decimal.Decimal
	paymentMethods    map[string]int
	expenseCount      int
	incomeCount       int
}

func reduce(transactions []model.Transaction) summary {
	sum := summary{
		expenseByCategory: map[string]decimal.Decimal{},
		incomeByCategory:  map[string]decimal.Decimal{},
		paymentMethods:    map[string]int{},
	}

	for i := range transactions {
		t := &transactions[i]
		amount := decimal.NewFromFloat(t.Amount)

		if t.IsIncome() {
			sum.income = sum.income.Add(amount)
			sum.incomeByCategory[t.Category] = sum.incomeByCategory[t.Category].Add(amount)
			sum.incomeCount++
		} else {
			sum.expenses = sum.expenses.Add(amount)
			sum.expenseByCategory[t.Category] = sum.expenseByCategory[t.Category].Add(amount)
			sum.expenseCount++
		}
		sum.paymentMethods[t.PaymentMethod]++
	}
	return sum
}

// savingsRate is (income - expenses) / income * 100 rounded to two
// decimal places, or 0 when there is no income.
func savingsRate(income, expenses decimal.Decimal) float64 {
	if income.Sign() <= 0 {
		return 0
	}
	rate := income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100))
	return rate.Round(2).InexactFloat64()
}

// topCategory picks the category with the largest summed amount. Ties
// go to the lexicographically smaller name so the result does not
// depend on map iteration order.
func topCategory(totals map[string]decimal.Decimal) string {
	var top string
	var topAmount decimal.Decimal
	for category, amount := range totals {
		if top == "" || amount.GreaterThan(topAmount) ||
			(amount.Equal(topAmount) && category < top) {
			top = category
			topAmount = amount
		}
	}
	return top
}

// topPaymentMethods orders payment methods by descending usage count,
// name ascending on ties, truncated to five.
func topPaymentMethods(counts map[string]int) []string {
	methods := make([]string, 0, len(counts))
	for method := range counts {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool {
		if counts[methods[i]] != counts[methods[j]] {
			return counts[methods[i]] > counts[methods[j]]
		}
		return methods[i] < methods[j]
	})
	if len(methods) > 5 {
		methods = methods[:5]
	}
	return methods
}

func toFloatMap(totals map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(totals))
	for category, amount := range totals {
		out[category] = amount.InexactFloat64()
	}
	return out
}
