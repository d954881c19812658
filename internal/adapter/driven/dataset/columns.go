package dataset

import (
	"fmt"
	"strings"
)

// Columns lists the standardized line item columns, in warehouse order.
var Columns = []string{
	"header_id",
	"line_item_id",
	"line_item_index",
	"record_type",
	"created_at",
	"currency",
	"header_status",
	"product_id",
	"product_name",
	"transaction_type",
	"billing_type",
	"product_type",
	"quantity",
	"unit_amount",
	"discount_amount",
	"tax_amount",
	"total_amount",
	"payment_id",
	"payment_method_id",
	"payment_method",
	"payment_at",
	"fee_amount",
	"refund_amount",
	"subscription_id",
	"subscription_period_started_at",
	"subscription_period_ended_at",
	"subscription_status",
	"customer_id",
	"customer_level",
	"customer_name",
	"customer_company",
	"customer_email",
	"customer_city",
	"customer_country",
}

// RequiredColumns must be present in every source.
var RequiredColumns = []string{"header_id", "line_item_id", "created_at"}

// BuildWarehouseQuery returns the query selecting the line item model from
// <schema>.<platform>__line_item_enhanced.
func BuildWarehouseQuery(schema, platform string) string {
	return fmt.Sprintf("select %s\nfrom %s.%s__line_item_enhanced",
		strings.Join(Columns, ", "), schema, strings.ToLower(platform))
}
