package domain

type SalesData struct {
	Amount        float64 `json:"amount"`
	NumberOfSales int64   `json:"number_of_sales"`
}

type UserData struct {
	UserCount           int64   `json:"user_count"`
	AverageValuePerUser float64 `json:"average_value_per_user"`
}

type ProductData struct {
	ActiveCount   int64 `json:"active_count"`
	InactiveCount int64 `json:"inactive_count"`
}

type DashboardSummary struct {
	Sales    SalesData   `json:"sales"`
	Users    UserData    `json:"users"`
	Products ProductData `json:"products"`
}

type DashboardCard struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
}
