package extractor

import (
	"strings"

	"github.com/yurifrl/resultado/pkg/models"
)

// Classification is the outcome of matching one row label against the
// pattern table.
type Classification struct {
	Category models.CategoryTag
	// Profit is set when Category is CategoryProfit.
	Profit models.ProfitKind
	// Margin marks a "MARGEM DE LUCRO" row (a percentage series, kept out
	// of the line-item set).
	Margin bool
	// Contribution marks the "MARGEM DE CONTRIBUIÇÃO" scalar.
	Contribution bool
	// Secondary is set when revenue was matched via the weaker "RECEITA"
	// signal rather than the primary "FATURAMENTO" rule.
	Secondary bool
}

// keyword lists for the containment rules, in folded (uppercase,
// accent-free) form. Checked only after the prefix rules miss.
var (
	nonOpPatterns     = []string{"NAO OPERACIONA"}
	taxPatterns       = []string{"IMPOSTO", "TRIBUTO", "SIMPLES NACIONAL", "DAS "}
	commissionPattern = "COMISS"
	adminPatterns     = []string{"DESPESAS ADMINISTRATIVAS", "ADMINISTRATIVO"}
	marketingPatterns = []string{"MARKETING", "PUBLICIDADE", "PROPAGANDA"}
	financialPatterns = []string{"DESPESAS FINANCEIRAS", "JUROS", "TARIFA BANCARIA", "TARIFAS BANCARIAS"}

	// profitExclusions suppress rows that contain RESULTADO/LUCRO but are
	// derived or auxiliary figures, not primary results.
	profitExclusions = []string{"MARGEM", "PONTO", "EQUILIBRIO", "EXCLUINDO"}
)

// Classify assigns zero-or-one category to a row label. The order below is
// the contract: Portuguese financial labels are compound phrases where
// generic substrings ("CUSTOS", "RESULTADO") appear inside more specific
// labels, so the broad containment rules run last and the exclusion lists
// suppress known false positives.
//
// revenueSeen tells the classifier whether a primary revenue row was
// already found in this sheet; the weaker "RECEITA" signal is only accepted
// before that and never overwrites a primary match.
func Classify(label string, revenueSeen bool) Classification {
	folded := models.Fold(label)
	if folded == "" {
		return Classification{Category: models.CategoryUncategorized}
	}

	// 1. Primary revenue.
	if strings.HasPrefix(folded, "FATURAMENTO") {
		return Classification{Category: models.CategoryRevenue}
	}

	// 2. Secondary revenue signal, only while no primary row exists.
	if strings.Contains(folded, "RECEITA") && !revenueSeen {
		return Classification{Category: models.CategoryRevenue, Secondary: true}
	}

	// 3. Cost sections.
	if strings.HasPrefix(folded, "CUSTOS VARIAVEIS") || strings.HasPrefix(folded, "CUSTO VARIAVEL") {
		return Classification{Category: models.CategoryVariableCosts}
	}
	if strings.HasPrefix(folded, "CUSTOS FIXOS") {
		return Classification{Category: models.CategoryFixedCosts}
	}

	// 4. Margin rows come before the profit rules: "MARGEM DE LUCRO"
	// contains "LUCRO" and would otherwise land there.
	if strings.Contains(folded, "MARGEM DE CONTRIBUICAO") {
		return Classification{Category: models.CategoryMargin, Contribution: true}
	}
	if strings.Contains(folded, "MARGEM DE LUCRO") && !strings.Contains(folded, "PONTO") {
		return Classification{Category: models.CategoryMargin, Margin: true}
	}

	// 5. Profit/result rows, with the exclusion list.
	if strings.Contains(folded, "RESULTADO") || strings.Contains(folded, "LUCRO") {
		excluded := false
		for _, term := range profitExclusions {
			if strings.Contains(folded, term) {
				excluded = true
				break
			}
		}
		if !excluded {
			return Classification{
				Category: models.CategoryProfit,
				Profit:   profitKind(folded),
			}
		}
	}

	// 6. Containment rules for the remaining categories.
	for _, p := range nonOpPatterns {
		if strings.Contains(folded, p) {
			return Classification{Category: models.CategoryNonOperational}
		}
	}
	for _, p := range taxPatterns {
		if strings.Contains(folded, p) {
			return Classification{Category: models.CategoryTaxes}
		}
	}
	if strings.Contains(folded, commissionPattern) {
		return Classification{Category: models.CategoryCommissions}
	}
	for _, p := range adminPatterns {
		if strings.Contains(folded, p) {
			return Classification{Category: models.CategoryAdministrative}
		}
	}
	for _, p := range marketingPatterns {
		if strings.Contains(folded, p) {
			return Classification{Category: models.CategoryMarketing}
		}
	}
	for _, p := range financialPatterns {
		if strings.Contains(folded, p) {
			return Classification{Category: models.CategoryFinancial}
		}
	}

	return Classification{Category: models.CategoryUncategorized}
}

// profitKind refines a matched profit row into its sub-kind. The literal
// minus sign check is a convention carried over from the observed files:
// a "- Investimentos" suffix in the label means the figure already deducts
// investments/withdrawals.
func profitKind(folded string) models.ProfitKind {
	trimmed := strings.TrimSpace(folded)
	switch trimmed {
	case "LUCRO", "LUCRO BRUTO":
		return models.ProfitGross
	}
	if strings.Contains(folded, "INVESTIMENTOS") || strings.Contains(folded, "RETIRADA") {
		if strings.Contains(folded, "-") {
			return models.ProfitNetFinal
		}
		return models.ProfitNetAdjusted
	}
	if strings.Contains(folded, "C/CUSTOS NAO OP") || strings.Contains(folded, "C/CUSTOS N") {
		return models.ProfitWithNonOp
	}
	if strings.Contains(folded, "S/CUSTOS NAO OP") || strings.Contains(folded, "S/CUSTOS N") {
		return models.ProfitWithoutNonOp
	}
	if trimmed == "RESULTADO" {
		return models.ProfitOperational
	}
	return models.ProfitOther
}
