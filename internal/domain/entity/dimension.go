package entity

import "fmt"

// Dimension is a product attribute revenue can be broken down by.
type Dimension string

const (
	DimensionProductType Dimension = "product_type"
	DimensionProductName Dimension = "product_name"
)

// UnknownCategory labels rows whose dimension value is missing.
const UnknownCategory = "Unknown"

// ParseDimension validates a dimension name.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionProductType, DimensionProductName:
		return Dimension(s), nil
	case "":
		return DimensionProductType, nil
	}
	return "", fmt.Errorf("unsupported category dimension %q (use %s or %s)", s, DimensionProductType, DimensionProductName)
}

// Value returns the dimension value of r, or UnknownCategory when empty.
func (d Dimension) Value(r LineItemRecord) string {
	var v string
	switch d {
	case DimensionProductName:
		v = r.ProductName
	default:
		v = r.ProductType
	}
	if v == "" {
		return UnknownCategory
	}
	return v
}

// Title returns a human-readable label ("Product Type").
func (d Dimension) Title() string {
	if d == DimensionProductName {
		return "Product Name"
	}
	return "Product Type"
}
