package entity

// SchemaField is one field of the standardized line item model.
type SchemaField struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PrimaryKey  bool   `json:"primary_key,omitempty"`
}

// PlatformMapping maps standard field names to the source field of one billing platform.
type PlatformMapping struct {
	Platform string            `json:"platform"`
	Fields   map[string]string `json:"fields"`
}

// SourceField returns the platform field for name. ok is false when the
// platform does not document the field.
func (m PlatformMapping) SourceField(name string) (string, bool) {
	v, ok := m.Fields[name]
	return v, ok
}
