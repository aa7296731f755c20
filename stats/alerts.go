package stats

import (
	"math"
	"sort"

	"github.com/hpmalinova/Finance-Tracker/model"
)

const (
	// alertThreshold is the spent percentage at which a budget starts
	// alerting.
	alertThreshold = 80

	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alerts scans the given budgets and reports those at or above the
// alert threshold. Budgets without a positive limit never alert; the
// percentage is undefined at a zero limit. Alerts are ordered by
// category name.
func Alerts(budgets []model.Budget) []model.BudgetAlert {
	alerts := []model.BudgetAlert{}
	for _, b := range budgets {
		if b.LimitAmount <= 0 {
			continue
		}

		percentage := int(math.Round(b.CurrentSpent / b.LimitAmount * 100))
		if percentage < alertThreshold {
			continue
		}

		severity := SeverityMedium
		if b.CurrentSpent >= b.LimitAmount {
			severity = SeverityHigh
		}
		alerts = append(alerts, model.BudgetAlert{
			Category:   b.Category,
			Percentage: percentage,
			Spent:      b.CurrentSpent,
			Limit:      b.LimitAmount,
			Severity:   severity,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Category < alerts[j].Category
	})
	return alerts
}
