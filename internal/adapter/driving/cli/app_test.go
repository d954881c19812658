package cli

import (
	"testing"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("start", " 2023-02-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseDate("start", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDate("end", "01/02/2023")
	var rangeErr *types.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Contains(t, err.Error(), `--end "01/02/2023" is not a YYYY-MM-DD date`)
}

func TestParseArgs(t *testing.T) {
	app := NewCLIApp("1.0.0")
	cmd := app.rootCmd
	require.NoError(t, cmd.ParseFlags([]string{
		"--source", "line_items.csv",
		"--start", "2023-01-01",
		"--end", "2023-03-31",
		"--as-of", "2023-04-15",
		"-g", "product_name",
		"-y", "csv,pdf",
		"--reset-range",
	}))

	args, err := app.parseArgs(cmd)

	require.NoError(t, err)
	assert.Equal(t, "line_items.csv", args.Source)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), *args.Start)
	assert.Equal(t, time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), *args.End)
	assert.Equal(t, time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), args.AsOf)
	assert.Equal(t, "product_name", args.Category)
	assert.Equal(t, []string{"csv", "pdf"}, args.ReportType)
	assert.True(t, args.ResetRange)
	assert.Empty(t, args.Dir)
}

func TestParseArgs_InvalidDate(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{"--as-of", "tomorrow"}))

	_, err := app.parseArgs(app.rootCmd)

	var rangeErr *types.InvalidRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestSubcommands(t *testing.T) {
	app := NewCLIApp("1.0.0")

	var names []string
	for _, c := range app.rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "schema")
	assert.Contains(t, names, "overview")
}
