package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/billing-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverview_PrintsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "OVERVIEW.md")
	require.NoError(t, os.WriteFile(path, []byte("# Custom overview\n"), 0o644))
	c := &fakeConsole{}
	uc := NewOverviewUseCase(&fakeExport{}, c)

	require.NoError(t, uc.Show(&types.OverviewArgs{File: path}))

	assert.Equal(t, "# Custom overview\n\n", c.out.String())
}

func TestOverview_MissingExplicitFile(t *testing.T) {
	uc := NewOverviewUseCase(&fakeExport{}, &fakeConsole{})

	err := uc.Show(&types.OverviewArgs{File: filepath.Join(t.TempDir(), "missing.md")})

	assert.ErrorContains(t, err, "error reading overview file")
}

func TestOverview_BuiltinFallback(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	md, err := NewOverviewUseCase(&fakeExport{}, &fakeConsole{}).Markdown("")

	require.NoError(t, err)
	assert.Equal(t, builtinOverview, md)
	assert.Contains(t, md, "# Billing Insights Dashboard")
}

func TestOverview_ExportsHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "OVERVIEW.md")
	require.NoError(t, os.WriteFile(path, []byte("# Custom overview\n"), 0o644))
	export := &fakeExport{}
	c := &fakeConsole{}
	uc := NewOverviewUseCase(export, c)

	require.NoError(t, uc.Show(&types.OverviewArgs{File: path, HTML: "overview", Dir: "/tmp/site"}))

	assert.Equal(t, []string{"html"}, export.formats)
	assert.Equal(t, "# Custom overview\n", export.markdown)
	assert.Equal(t, []string{"Successfully exported overview to HTML: /tmp/site/overview.html"}, c.success)
}
