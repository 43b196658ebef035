package render

import (
	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a USD amount, e.g. $1,234.50.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// FormatNumber renders a count with thousands grouping.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

func DashboardCards(summary domain.DashboardSummary) []domain.DashboardCard {
	return []domain.DashboardCard{
		{
			Title:    "Sales",
			Subtitle: FormatNumber(summary.Sales.NumberOfSales) + " Orders",
			Body:     FormatCurrency(summary.Sales.Amount),
		},
		{
			Title:    "Customers",
			Subtitle: FormatCurrency(summary.Users.AverageValuePerUser) + " Average Value",
			Body:     FormatNumber(summary.Users.UserCount),
		},
		{
			Title:    "Active Products",
			Subtitle: FormatNumber(summary.Products.InactiveCount) + " Inactive Products",
			Body:     FormatNumber(summary.Products.ActiveCount),
		},
	}
}
