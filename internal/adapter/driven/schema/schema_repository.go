package schema

import (
	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
)

// fields is the standardized line item schema, in display order.
var fields = []entity.SchemaField{
	{Name: "header_id", Description: "ID of either the invoice or order.", PrimaryKey: true},
	{Name: "line_item_id", Description: "ID of either the invoice line or order line item.", PrimaryKey: true},
	{Name: "line_item_index", Description: "Numerical identifier of the line item within the header object."},
	{Name: "record_type", Description: "Either 'header' or 'line_item' to differentiate if the record is originally from the line item table or was created to document information only available at the header level."},
	{Name: "created_at", Description: "Date the line item entry was created."},
	{Name: "currency", Description: "Determines the currency in which the transaction took place."},
	{Name: "header_status", Description: "Indicates the status of the header. Eg. paid, voided, returned."},
	{Name: "product_id", Description: "ID of the product associated with the line item."},
	{Name: "product_name", Description: "Name of the product associated with the line item."},
	{Name: "product_type", Description: "Type of the product (e.g., physical, digital)."},
	{Name: "product_category", Description: "Category to which the product belongs (e.g., electronics, clothing)."},
	{Name: "quantity", Description: "Quantity of the product in the line item."},
	{Name: "unit_amount", Description: "Unit price of the product."},
	{Name: "discount_amount", Description: "Amount of discount applied to the line item."},
	{Name: "tax_rate", Description: "Tax rate applied to the line item."},
	{Name: "tax_amount", Description: "Amount of tax applied to the line item."},
	{Name: "total_amount", Description: "Total amount for the line item (including tax and discounts)."},
	{Name: "payment_id", Description: "ID of the payment associated with the line item."},
	{Name: "payment_method", Description: "Method used for payment (e.g., credit card, PayPal)."},
	{Name: "payment_at", Description: "Date and time of the payment."},
	{Name: "fee_amount", Description: "Any additional fees associated with the payment."},
	{Name: "refund_amount", Description: "Amount refunded for the line item (if applicable)."},
	{Name: "subscription_id", Description: "ID of the subscription (if applicable)."},
	{Name: "subscription_period_started_at", Description: "Start date of the subscription period (if applicable)."},
	{Name: "subscription_period_ended_at", Description: "End date of the subscription period (if applicable)."},
	{Name: "subscription_status", Description: "Status of the subscription (if applicable)."},
	{Name: "customer_id", Description: "ID of the customer associated with the line item."},
	{Name: "customer_level", Description: "Identifies if the customer is reported at the account or customer level."},
	{Name: "customer_name", Description: "Name of the customer."},
	{Name: "customer_company", Description: "Company name of the customer (if applicable)."},
	{Name: "customer_email", Description: "Email address of the customer."},
	{Name: "customer_city", Description: "City of the customer's address."},
	{Name: "customer_country", Description: "Country of the customer's address."},
}

var stripe = entity.PlatformMapping{
	Platform: "Stripe",
	Fields: map[string]string{
		"header_id":                      "invoice_line_item.invoice_id",
		"line_item_id":                   "invoice_line_item.line_item_id",
		"line_item_index":                "Created with row number using invoice_id partition, ordered by amount",
		"record_type":                    "'line_item'",
		"created_at":                     "invoice.created_at",
		"currency":                       "invoice_line_item.currency",
		"header_status":                  "invoice.status",
		"product_id":                     "price_plan.product_id",
		"product_name":                   "product.name",
		"transaction_type":               "balance_transaction.type",
		"billing_type":                   "invoice_line_item.type",
		"product_type":                   "product.type",
		"quantity":                       "invoice_line_item.quantity",
		"unit_amount":                    "Calculated using invoice_line_item, dividing amount by quantity",
		"discount_amount":                "discount.amount",
		"tax_amount":                     "invoice.tax",
		"total_amount":                   "invoice.total",
		"payment_id":                     "payment_intent.payment_intent_id",
		"payment_method_id":              "payment_method.payment_method_id",
		"payment_method":                 "payment_method.type",
		"payment_at":                     "charge.created_at",
		"fee_amount":                     "balance_transaction.fee",
		"refund_amount":                  "refund.amount",
		"subscription_id":                "invoice.subscription_id",
		"subscription_period_started_at": "subscription.current_period_start",
		"subscription_period_ended_at":   "subscription.current_period_end",
		"subscription_status":            "subscription.status",
		"customer_id":                    "invoice.customer_id",
		"customer_level":                 "'customer'",
		"customer_name":                  "customer.customer_name",
		"customer_company":               "connected_account.company_name",
		"customer_email":                 "customer.email",
		"customer_city":                  "customer.customer_address_city",
		"customer_country":               "customer.customer_address_country",
	},
}

var zuora = entity.PlatformMapping{
	Platform: "Zuora",
	Fields: map[string]string{
		"header_id":                      "invoice_item.invoice_id",
		"line_item_id":                   "invoice_item.invoice_line_id",
		"line_item_index":                "Created from row number with invoice and line item partitioned",
		"record_type":                    "header or invoice",
		"created_at":                     "invoice.created_at",
		"currency":                       "invoice_item.transaction_currency",
		"header_status":                  "invoice.status",
		"product_id":                     "invoice_item.product_id",
		"product_name":                   "product.product_name",
		"transaction_type":               "invoice_item.processing_type",
		"billing_type":                   "invoice.source_type",
		"product_type":                   "product.category",
		"quantity":                       "invoice_item.quantity",
		"unit_amount":                    "invoice_item.unit_price",
		"discount_amount":                "invoice_item.charge_amount (when invoice_item.processing_type = '1')",
		"tax_amount":                     "invoice_item.tax_amount",
		"total_amount":                   "invoice_item.charge_amount",
		"payment_id":                     "invoice_payment.payment_id",
		"payment_method_id":              "invoice_payment.payment_method_id",
		"payment_method":                 "payment_method.name",
		"payment_at":                     "payment.effective_date",
		"fee_amount":                     "null",
		"refund_amount":                  "invoice.refund_amount",
		"subscription_id":                "invoice_item.subscription_id",
		"subscription_period_started_at": "subscription.subscription_start_date",
		"subscription_period_ended_at":   "subscription.subscription_ended_at",
		"subscription_status":            "subscription.status",
		"customer_id":                    "invoice_item.account_id",
		"customer_level":                 "customer",
		"customer_name":                  "dbt.concat(['contacts.first_name', '' '', 'contacts.last_name'])",
		"customer_company":               "account.name",
		"customer_email":                 "contact.work_email",
		"customer_city":                  "contact.city",
		"customer_country":               "contact.country",
	},
}

// pendingFields are documented for the platforms whose mapping is still to be defined.
var pendingFields = []string{
	"header_id", "line_item_id", "line_item_index", "record_type", "created_at", "currency",
	"line_item_status", "header_status", "product_id", "product_name", "product_type",
	"product_category", "quantity", "unit_amount", "discount_amount", "tax_amount", "total_amount",
	"payment_id", "payment_method", "payment_at", "fee_amount", "refund_id", "refund_amount",
	"refunded_at", "subscription_id", "subscription_period_started_at",
	"subscription_period_ended_at", "subscription_status", "customer_id", "customer_level",
	"customer_name", "customer_company", "customer_email", "customer_city", "customer_country",
}

// PendingMapping marks a platform field that has not been mapped yet.
const PendingMapping = "TBD"

func pending(platform string) entity.PlatformMapping {
	m := entity.PlatformMapping{Platform: platform, Fields: make(map[string]string, len(pendingFields))}
	for _, f := range pendingFields {
		m.Fields[f] = PendingMapping
	}
	return m
}

// SchemaRepositoryImpl serves the static schema catalog.
type SchemaRepositoryImpl struct {
	platforms []entity.PlatformMapping
}

// NewSchemaRepository cria uma nova implementação do SchemaRepository.
func NewSchemaRepository() repository.SchemaRepository {
	return &SchemaRepositoryImpl{
		platforms: []entity.PlatformMapping{
			stripe,
			zuora,
			pending("Recurly"),
			pending("Shopify"),
			pending("Recharge"),
		},
	}
}

// Fields returns a copy of the schema fields.
func (r *SchemaRepositoryImpl) Fields() []entity.SchemaField {
	out := make([]entity.SchemaField, len(fields))
	copy(out, fields)
	return out
}

// Platforms returns the supported platforms in display order.
func (r *SchemaRepositoryImpl) Platforms() []entity.PlatformMapping {
	out := make([]entity.PlatformMapping, len(r.platforms))
	copy(out, r.platforms)
	return out
}
