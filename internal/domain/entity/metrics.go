package entity

import "time"

// MonthlyValue is one bucket of a monthly series.
type MonthlyValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// RevenueKPIs holds the headline revenue tiles of the report.
type RevenueKPIs struct {
	TotalRevenue              float64 `json:"total_revenue"`
	MonthlyAverageRevenue     float64 `json:"monthly_average_revenue"`
	DailyAverageRevenue       float64 `json:"daily_average_revenue"`
	CurrentMRR                float64 `json:"current_mrr"`
	TotalDiscounts            float64 `json:"total_discounts"`
	AverageDiscount           float64 `json:"average_discount"`
	TotalRefunds              float64 `json:"total_refunds"`
	AverageRefund             float64 `json:"average_refund"`
	AverageSubscriptionAmount float64 `json:"average_subscription_amount"`
}

// SubscriptionCounts partitions the distinct subscriptions of a window.
type SubscriptionCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Canceled int `json:"canceled"`
}

// CategoryRevenue is the revenue attributed to one value of a product dimension.
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// CustomerValue is the lifetime value of one customer over the window.
type CustomerValue struct {
	Customer string  `json:"customer"`
	CLV      float64 `json:"clv"`
}

// CLVSegment counts customers whose CLV falls in one bucket.
type CLVSegment struct {
	Label     string `json:"label"`
	Customers int    `json:"customers"`
}

// CustomerMetrics summarizes customer analysis tiles and tables.
type CustomerMetrics struct {
	AverageRevenuePerCustomer float64         `json:"average_revenue_per_customer"`
	ChurnRate                 float64         `json:"churn_rate"`
	ActiveCustomers           int             `json:"active_customers"`
	TotalCustomers            int             `json:"total_customers"`
	LifetimeValues            []CustomerValue `json:"lifetime_values"`
	TopCustomers              []CustomerValue `json:"top_customers"`
	Segments                  []CLVSegment    `json:"segments"`
}

// ReportMetrics is everything the report page renders for one date range.
type ReportMetrics struct {
	Range                 DateRange          `json:"range"`
	AsOf                  time.Time          `json:"as_of"`
	Rows                  int                `json:"rows"`
	Revenue               RevenueKPIs        `json:"revenue"`
	MonthlyRevenue        []MonthlyValue     `json:"monthly_revenue"`
	MRR                   []MonthlyValue     `json:"mrr"`
	Subscriptions         SubscriptionCounts `json:"subscriptions"`
	ActiveSubscriptions   []MonthlyValue     `json:"active_subscriptions"`
	Dimension             Dimension          `json:"dimension"`
	RevenueByCategory     []CategoryRevenue  `json:"revenue_by_category"`
	SelectedCategory      string             `json:"selected_category,omitempty"`
	CategoryTrend         []MonthlyValue     `json:"category_trend,omitempty"`
	Customers             CustomerMetrics    `json:"customers"`
	ActiveCustomersSeries []MonthlyValue     `json:"active_customers_series"`
}
