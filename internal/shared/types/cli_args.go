package types

import "time"

// CLIArgs represents the command-line arguments of the report command.
type CLIArgs struct {
	ConfigFile    string
	Source        string
	AWSProfile    string
	AWSRegion     string
	StateFile     string
	Start         *time.Time
	End           *time.Time
	ResetRange    bool
	Category      string
	CategoryValue string
	AsOf          time.Time
	ReportName    string
	ReportType    []string
	Dir           string
	Debug         bool
}

// SchemaArgs represents the arguments of the schema command.
type SchemaArgs struct {
	ConfigFile string
	Source     string
	AWSProfile string
	AWSRegion  string
	Field      string
	Platform   string
	Sample     bool
}

// OverviewArgs represents the arguments of the overview command.
type OverviewArgs struct {
	File string
	HTML string
	Dir  string
}
