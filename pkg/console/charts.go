package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/billing-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

const barWidth = 40

// DisplayKPITiles exibe os indicadores lado a lado, quatro por linha.
func (c *Console) DisplayKPITiles(title string, tiles []types.KPITile) {
	if len(tiles) == 0 {
		return
	}

	var panels pterm.Panels
	var row []pterm.Panel
	for i, tile := range tiles {
		content := fmt.Sprintf("%s\n%s", pterm.FgDarkGray.Sprint(tile.Label), pterm.Bold.Sprint(BrightCyan(tile.Value)))
		box := pterm.DefaultBox.WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(content)
		row = append(row, pterm.Panel{Data: box})
		if len(row) == 4 || i == len(tiles)-1 {
			panels = append(panels, row)
			row = nil
		}
	}

	pterm.DefaultSection.Println(title)
	rendered, _ := pterm.DefaultPanel.WithPanels(panels).WithPadding(2).Srender()
	fmt.Println(rendered)
}

// DisplayTrendBars exibe gráficos de barras mensais com variação mês a mês.
// Growth is green and decline red; currency formats amounts as dollars.
func (c *Console) DisplayTrendBars(title string, series []types.MonthlyAmount, currency bool) {
	maxValue := 0.0
	for _, m := range series {
		if m.Amount > maxValue {
			maxValue = m.Amount
		}
	}

	if maxValue == 0 {
		pterm.Warning.Printfln("%s: all values are zero for this period", title)
		return
	}

	tableData := pterm.TableData{
		{"Month", "Value", "", "MoM Change"},
	}

	var prev *float64
	for _, m := range series {
		barLength := 0
		if m.Amount > 0 {
			barLength = int((m.Amount / maxValue) * barWidth)
		}
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prev != nil {
			if *prev < 0.01 {
				if m.Amount < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgGreen.Sprint("N/A")
					barColor = pterm.FgGreen.Sprint(bar)
				}
			} else {
				changePercent := ((m.Amount - *prev) / *prev) * 100.0

				switch {
				case math.Abs(changePercent) < 0.01:
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				case changePercent > 999:
					change = pterm.FgGreen.Sprint(">+999%")
					barColor = pterm.FgGreen.Sprint(bar)
				case changePercent > 0:
					change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				default:
					change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				}
			}
		}

		value := FormatCount(m.Amount)
		if currency {
			value = FormatMoney(m.Amount, 0)
		}
		tableData = append(tableData, []string{m.Month, value, barColor, change})

		current := m.Amount
		prev = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayCategoryBars exibe a receita por categoria em barras horizontais.
func (c *Console) DisplayCategoryBars(title string, values []types.CategoryAmount) {
	if len(values) == 0 {
		pterm.Warning.Printfln("%s: no data for this period", title)
		return
	}

	maxValue := 0.0
	for _, v := range values {
		maxValue = math.Max(maxValue, v.Amount)
	}

	tableData := pterm.TableData{{"Category", "Revenue", ""}}
	for _, v := range values {
		barLength := 0
		if maxValue > 0 && v.Amount > 0 {
			barLength = int((v.Amount / maxValue) * barWidth)
		}
		tableData = append(tableData, []string{
			v.Category,
			FormatMoney(v.Amount, 0),
			pterm.FgBlue.Sprint(strings.Repeat("█", barLength)),
		})
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}
