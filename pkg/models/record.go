package models

// MonthCode is one of the twelve Portuguese month abbreviations used as
// column headers in the source spreadsheets.
type MonthCode string

const (
	Jan MonthCode = "JAN"
	Fev MonthCode = "FEV"
	Mar MonthCode = "MAR"
	Abr MonthCode = "ABR"
	Mai MonthCode = "MAI"
	Jun MonthCode = "JUN"
	Jul MonthCode = "JUL"
	Ago MonthCode = "AGO"
	Set MonthCode = "SET"
	Out MonthCode = "OUT"
	Nov MonthCode = "NOV"
	Dez MonthCode = "DEZ"
)

// Months lists the codes in calendar order.
var Months = []MonthCode{Jan, Fev, Mar, Abr, Mai, Jun, Jul, Ago, Set, Out, Nov, Dez}

// AnnualKey is the pseudo-month key used for yearly totals in the margins map.
const AnnualKey = "ANNUAL"

// CategoryTag classifies a line item into the controlled vocabulary.
type CategoryTag string

const (
	CategoryRevenue        CategoryTag = "revenue"
	CategoryVariableCosts  CategoryTag = "variable_costs"
	CategoryFixedCosts     CategoryTag = "fixed_costs"
	CategoryNonOperational CategoryTag = "non_operational_costs"
	CategoryTaxes          CategoryTag = "taxes"
	CategoryCommissions    CategoryTag = "commissions"
	CategoryAdministrative CategoryTag = "administrative_expenses"
	CategoryMarketing      CategoryTag = "marketing_expenses"
	CategoryFinancial      CategoryTag = "financial_expenses"
	CategoryProfit         CategoryTag = "profit"
	CategoryMargin         CategoryTag = "margin"
	CategoryUncategorized  CategoryTag = "uncategorized"
)

// LineItem is one classified, atomic row from a worksheet. Items are created
// while scanning a sheet and never mutated afterwards.
type LineItem struct {
	Label      string                `json:"label"`
	Category   CategoryTag           `json:"category"`
	Monthly    map[MonthCode]float64 `json:"monthly,omitempty"`
	Annual     float64               `json:"annual"`
	IsSubtotal bool                  `json:"is_subtotal,omitempty"`
}

// HierarchyNode groups a parent row with the contiguous run of rows that sum
// to its value. Confident is false when the children never reconciled with
// the parent within tolerance; callers must tolerate the drift.
type HierarchyNode struct {
	Parent    LineItem   `json:"parent"`
	Children  []LineItem `json:"children,omitempty"`
	Residual  float64    `json:"residual"`
	Confident bool       `json:"confident"`
}

// Aggregate holds the monthly series and annual total for one category.
type Aggregate struct {
	Monthly map[MonthCode]float64 `json:"monthly,omitempty"`
	Annual  float64               `json:"annual"`
}

// Merge folds another row's values into the aggregate.
func (a *Aggregate) Merge(monthly map[MonthCode]float64, annual float64) {
	if a.Monthly == nil {
		a.Monthly = make(map[MonthCode]float64)
	}
	for m, v := range monthly {
		a.Monthly[m] += v
	}
	a.Annual += annual
}

// YearRecord is the normalized output for one fiscal year.
type YearRecord struct {
	Year               int                        `json:"year"`
	Categories         map[CategoryTag]*Aggregate `json:"categories"`
	LineItems          map[string]LineItem        `json:"line_items"`
	Hierarchy          []HierarchyNode            `json:"hierarchy,omitempty"`
	Profits            map[ProfitKind]float64     `json:"profit_candidates,omitempty"`
	ProfitMonthly      map[MonthCode]float64      `json:"profit_monthly,omitempty"`
	ContributionMargin *float64                   `json:"contribution_margin,omitempty"`
	Margins            map[string]float64         `json:"margins,omitempty"`
}

// NewYearRecord returns an empty record for the given year.
func NewYearRecord(year int) *YearRecord {
	return &YearRecord{
		Year:       year,
		Categories: make(map[CategoryTag]*Aggregate),
		LineItems:  make(map[string]LineItem),
		Profits:    make(map[ProfitKind]float64),
		Margins:    make(map[string]float64),
	}
}

// Category returns the aggregate for a tag, creating it on first use.
func (r *YearRecord) Category(tag CategoryTag) *Aggregate {
	agg, ok := r.Categories[tag]
	if !ok {
		agg = &Aggregate{}
		r.Categories[tag] = agg
	}
	return agg
}

// HasData reports whether the record carries at least one non-empty revenue
// or cost category. Records without data are not worth keeping.
func (r *YearRecord) HasData() bool {
	for _, tag := range []CategoryTag{
		CategoryRevenue,
		CategoryVariableCosts,
		CategoryFixedCosts,
		CategoryNonOperational,
	} {
		if agg, ok := r.Categories[tag]; ok {
			if agg.Annual != 0 || len(agg.Monthly) > 0 {
				return true
			}
		}
	}
	return false
}

// Revenue is a convenience accessor for the revenue aggregate, nil when the
// sheet had none.
func (r *YearRecord) Revenue() *Aggregate {
	return r.Categories[CategoryRevenue]
}
