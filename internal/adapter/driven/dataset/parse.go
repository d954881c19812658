package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// timeLayouts are tried in order; layouts without offset are read as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp reads a timestamp and normalizes it to UTC. Empty and
// null-like values return nil.
func parseTimestamp(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if isNull(value) {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, fmt.Errorf("unrecognized timestamp %q", value)
}

// parseAmount reads a numeric value. Empty and null-like values are zero.
func parseAmount(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if isNull(value) {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return f, nil
}

func isNull(value string) bool {
	switch strings.ToLower(value) {
	case "", "null", "nan", "nat", "none":
		return true
	}
	return false
}

func text(value string) string {
	value = strings.TrimSpace(value)
	if isNull(value) {
		return ""
	}
	return value
}

// truncateToDate keeps the calendar date of t; created_at is reported at day grain.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// recordBuilder maps a raw row to a LineItemRecord using a column index.
type recordBuilder struct {
	index map[string]int
}

func newRecordBuilder(header []string) (*recordBuilder, []string) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return &recordBuilder{index: index}, missing
}

func (b *recordBuilder) get(row []string, col string) string {
	i, ok := b.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// build converts one row. A row without a usable created_at yields ok=false;
// any other malformed value is an error.
func (b *recordBuilder) build(row []string) (rec entity.LineItemRecord, ok bool, err error) {
	created, err := parseTimestamp(b.get(row, "created_at"))
	if err != nil || created == nil {
		return rec, false, nil
	}

	rec = entity.LineItemRecord{
		HeaderID:           text(b.get(row, "header_id")),
		LineItemID:         text(b.get(row, "line_item_id")),
		RecordType:         entity.RecordType(text(b.get(row, "record_type"))),
		CreatedAt:          truncateToDate(*created),
		Currency:           text(b.get(row, "currency")),
		HeaderStatus:       text(b.get(row, "header_status")),
		TransactionType:    text(b.get(row, "transaction_type")),
		BillingType:        text(b.get(row, "billing_type")),
		ProductID:          text(b.get(row, "product_id")),
		ProductName:        text(b.get(row, "product_name")),
		ProductType:        text(b.get(row, "product_type")),
		PaymentID:          text(b.get(row, "payment_id")),
		PaymentMethodID:    text(b.get(row, "payment_method_id")),
		PaymentMethod:      text(b.get(row, "payment_method")),
		SubscriptionID:     text(b.get(row, "subscription_id")),
		SubscriptionStatus: text(b.get(row, "subscription_status")),
		CustomerID:         text(b.get(row, "customer_id")),
		CustomerLevel:      text(b.get(row, "customer_level")),
		CustomerName:       text(b.get(row, "customer_name")),
		CustomerCompany:    text(b.get(row, "customer_company")),
		CustomerEmail:      text(b.get(row, "customer_email")),
		CustomerCity:       text(b.get(row, "customer_city")),
		CustomerCountry:    text(b.get(row, "customer_country")),
	}

	if idx := text(b.get(row, "line_item_index")); idx != "" {
		f, err := parseAmount(idx)
		if err != nil {
			return rec, false, fmt.Errorf("line_item_index: %w", err)
		}
		rec.LineItemIndex = int(f)
	}

	amounts := []struct {
		col string
		dst *float64
	}{
		{"quantity", &rec.Quantity},
		{"unit_amount", &rec.UnitAmount},
		{"discount_amount", &rec.DiscountAmount},
		{"tax_amount", &rec.TaxAmount},
		{"total_amount", &rec.TotalAmount},
		{"fee_amount", &rec.FeeAmount},
		{"refund_amount", &rec.RefundAmount},
	}
	for _, a := range amounts {
		if *a.dst, err = parseAmount(b.get(row, a.col)); err != nil {
			return rec, false, fmt.Errorf("%s: %w", a.col, err)
		}
	}

	timestamps := []struct {
		col string
		dst **time.Time
	}{
		{"payment_at", &rec.PaymentAt},
		{"subscription_period_started_at", &rec.SubscriptionPeriodStartedAt},
		{"subscription_period_ended_at", &rec.SubscriptionPeriodEndedAt},
	}
	for _, ts := range timestamps {
		if *ts.dst, err = parseTimestamp(b.get(row, ts.col)); err != nil {
			return rec, false, fmt.Errorf("%s: %w", ts.col, err)
		}
	}

	return rec, true, nil
}
