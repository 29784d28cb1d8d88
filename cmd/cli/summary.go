package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/yurifrl/resultado/pkg/models"
)

var (
	yearStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")) // blue
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // green
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // gray
)

func sortedYears(records map[int]*models.YearRecord) []int {
	years := make([]int, 0, len(records))
	for year := range records {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// printSummary renders a per-year overview: revenue, resolved profit and
// contribution margin, with gray markers for values that were not found.
func printSummary(records map[int]*models.YearRecord) {
	for _, year := range sortedYears(records) {
		rec := records[year]
		fmt.Println(yearStyle.Render(fmt.Sprintf("=== %d ===", year)))

		if rev := rec.Revenue(); rev != nil {
			fmt.Println(okStyle.Render(fmt.Sprintf("  revenue   R$ %.2f (%d months)", rev.Annual, len(rev.Monthly))))
		} else {
			fmt.Println(missingStyle.Render("  revenue   not found"))
		}

		if kind, value, ok := models.ResolveProfit(rec.Profits); ok {
			fmt.Println(okStyle.Render(fmt.Sprintf("  profit    R$ %.2f (%s)", value, kind)))
		} else {
			fmt.Println(missingStyle.Render("  profit    not found"))
		}

		if rec.ContributionMargin != nil {
			fmt.Println(okStyle.Render(fmt.Sprintf("  cont.mgn  R$ %.2f", *rec.ContributionMargin)))
		} else {
			fmt.Println(missingStyle.Render("  cont.mgn  not found"))
		}

		fmt.Printf("  %d line items, %d hierarchy groups\n", len(rec.LineItems), len(rec.Hierarchy))
	}
}
