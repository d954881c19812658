package entity

import "time"

// RecordType differentiates rows coming from the line item table from rows
// created to carry header-only information.
type RecordType string

const (
	RecordTypeHeader   RecordType = "header"
	RecordTypeLineItem RecordType = "line_item"
)

// LineItemRecord represents one row of the standardized billing line item model.
type LineItemRecord struct {
	HeaderID        string     `json:"header_id"`
	LineItemID      string     `json:"line_item_id"`
	LineItemIndex   int        `json:"line_item_index,omitempty"`
	RecordType      RecordType `json:"record_type,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	Currency        string     `json:"currency,omitempty"`
	HeaderStatus    string     `json:"header_status,omitempty"`
	TransactionType string     `json:"transaction_type,omitempty"`
	BillingType     string     `json:"billing_type,omitempty"`

	// Produto
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	ProductType string `json:"product_type,omitempty"`

	// Valores monetários. Ausências são lidas como zero.
	Quantity       float64 `json:"quantity"`
	UnitAmount     float64 `json:"unit_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`

	// Pagamento
	PaymentID       string     `json:"payment_id,omitempty"`
	PaymentMethodID string     `json:"payment_method_id,omitempty"`
	PaymentMethod   string     `json:"payment_method,omitempty"`
	PaymentAt       *time.Time `json:"payment_at,omitempty"`
	FeeAmount       float64    `json:"fee_amount"`
	RefundAmount    float64    `json:"refund_amount"`

	// Assinatura. SubscriptionID vazio indica receita não recorrente.
	SubscriptionID              string     `json:"subscription_id,omitempty"`
	SubscriptionPeriodStartedAt *time.Time `json:"subscription_period_started_at,omitempty"`
	SubscriptionPeriodEndedAt   *time.Time `json:"subscription_period_ended_at,omitempty"`
	SubscriptionStatus          string     `json:"subscription_status,omitempty"`

	// Cliente
	CustomerID      string `json:"customer_id,omitempty"`
	CustomerLevel   string `json:"customer_level,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerCompany string `json:"customer_company,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerCity    string `json:"customer_city,omitempty"`
	CustomerCountry string `json:"customer_country,omitempty"`
}

// IsRecurring reports whether the line is tied to a subscription.
func (r LineItemRecord) IsRecurring() bool {
	return r.SubscriptionID != ""
}

// ActiveAt reports whether the subscription period is still open at t.
func (r LineItemRecord) ActiveAt(t time.Time) bool {
	return r.SubscriptionPeriodEndedAt == nil || r.SubscriptionPeriodEndedAt.After(t)
}

// Month returns the calendar month bucket of the record ("YYYY-MM").
func (r LineItemRecord) Month() string {
	return r.CreatedAt.Format(MonthLayout)
}
