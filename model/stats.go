package model

// DashboardStats is the response of the dashboard endpoint. TopCategory
// and CategoryData duplicate the expense fields for clients written
// against the pre-income API.
type DashboardStats struct {
	TotalSpent  float64 `json:"totalSpent"`
	TotalIncome float64 `json:"totalIncome"`
	NetAmount   float64 `json:"netAmount"`
	SavingsRate float64 `json:"savingsRate"`

	TopCategory         string             `json:"topCategory"`
	TopExpenseCategory  string             `json:"topExpenseCategory"`
	TopIncomeCategory   string             `json:"topIncomeCategory"`
	CategoryData        map[string]float64 `json:"categoryData"`
	ExpenseCategoryData map[string]float64 `json:"expenseCategoryData"`
	IncomeCategoryData  map[string]float64 `json:"incomeCategoryData"`

	TopPaymentMethods []string       `json:"topPaymentMethods"`
	PaymentMethodData map[string]int `json:"paymentMethodData"`

	MonthlyData []MonthPoint `json:"monthlyData"`

	TotalTransactions int     `json:"totalTransactions"`
	ExpenseCount      int     `json:"expenseCount"`
	IncomeCount       int     `json:"incomeCount"`
	AvgExpense        float64 `json:"avgExpense"`
	AvgIncome         float64 `json:"avgIncome"`
}

// MonthPoint is one entry of the six-month history. Amount mirrors
// Expenses for the pre-income API.
type MonthPoint struct {
	Month    string  `json:"month"`
	Amount   float64 `json:"amount"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
	Net      float64 `json:"net"`
}

// Pagination is the envelope returned by the paginated list endpoints.
type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int64 `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}
