package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Source     string          `json:"source" yaml:"source" toml:"source"`
	AWSProfile string          `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion  string          `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	StateFile  string          `json:"state_file" yaml:"state_file" toml:"state_file"`
	Category   string          `json:"category" yaml:"category" toml:"category"`
	ReportName string          `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string        `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string          `json:"dir" yaml:"dir" toml:"dir"`
	Warehouse  WarehouseConfig `json:"warehouse" yaml:"warehouse" toml:"warehouse"`
}

// WarehouseConfig identifies the warehouse table the line items would be queried from.
type WarehouseConfig struct {
	Schema         string `json:"schema" yaml:"schema" toml:"schema"`
	Platform       string `json:"platform" yaml:"platform" toml:"platform"`
	CredentialsRef string `json:"credentials_ref" yaml:"credentials_ref" toml:"credentials_ref"`
}

// Enabled reports whether a warehouse table was configured.
func (w WarehouseConfig) Enabled() bool {
	return w.Schema != "" && w.Platform != ""
}
