package render

import (
	"testing"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$60.00", FormatCurrency(60))
	assert.Equal(t, "$19.99", FormatCurrency(19.99))
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "-$5.00", FormatCurrency(-5))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "7", FormatNumber(7))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
}

func TestDashboardCards_Empty(t *testing.T) {
	cards := DashboardCards(domain.DashboardSummary{})

	assert.Equal(t, []domain.DashboardCard{
		{Title: "Sales", Subtitle: "0 Orders", Body: "$0.00"},
		{Title: "Customers", Subtitle: "$0.00 Average Value", Body: "0"},
		{Title: "Active Products", Subtitle: "0 Inactive Products", Body: "0"},
	}, cards)
}

func TestDashboardCards_Populated(t *testing.T) {
	cards := DashboardCards(domain.DashboardSummary{
		Sales:    domain.SalesData{Amount: 60, NumberOfSales: 3},
		Users:    domain.UserData{UserCount: 2, AverageValuePerUser: 30},
		Products: domain.ProductData{ActiveCount: 5, InactiveCount: 2},
	})

	assert.Equal(t, "3 Orders", cards[0].Subtitle)
	assert.Equal(t, "$60.00", cards[0].Body)
	assert.Equal(t, "$30.00 Average Value", cards[1].Subtitle)
	assert.Equal(t, "2", cards[1].Body)
	assert.Equal(t, "Active Products", cards[2].Title)
	assert.Equal(t, "5", cards[2].Body)
	assert.Equal(t, "2 Inactive Products", cards[2].Subtitle)
}
