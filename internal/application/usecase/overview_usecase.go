package usecase

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
	"github.com/diillson/billing-dashboard-go/internal/shared/types"
)

// DefaultOverviewFile is read when no --file is given.
const DefaultOverviewFile = "README.md"

//go:embed overview.md
var builtinOverview string

// OverviewUseCase exibe a página de visão geral.
type OverviewUseCase struct {
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewOverviewUseCase creates a new overview use case.
func NewOverviewUseCase(exportRepo repository.ExportRepository, console types.ConsoleInterface) *OverviewUseCase {
	return &OverviewUseCase{exportRepo: exportRepo, console: console}
}

// Markdown returns the overview document. A missing default file falls back
// to the built-in overview; a missing explicit file is an error.
func (uc *OverviewUseCase) Markdown(file string) (string, error) {
	path := file
	if path == "" {
		path = DefaultOverviewFile
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if file == "" && errors.Is(err, fs.ErrNotExist) {
		uc.console.LogDebug("%s not found, using the built-in overview", path)
		return builtinOverview, nil
	}
	return "", fmt.Errorf("error reading overview file: %w", err)
}

// Show prints the overview, or writes it as HTML when args.HTML names a file.
func (uc *OverviewUseCase) Show(args *types.OverviewArgs) error {
	md, err := uc.Markdown(args.File)
	if err != nil {
		return err
	}

	if args.HTML == "" {
		uc.console.Println(md)
		return nil
	}

	path, err := uc.exportRepo.ExportOverviewToHTML(md, args.HTML, args.Dir)
	if err != nil {
		return fmt.Errorf("failed to export overview: %w", err)
	}
	uc.console.LogSuccess("Successfully exported overview to HTML: %s", path)
	return nil
}
