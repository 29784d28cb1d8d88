package extractor

import (
	"strings"

	"github.com/yurifrl/resultado/pkg/models"
)

// calculationTerms flag rows whose value is computed from other rows
// (totals, break-even points, DRE headers). Folded form, so accented
// spellings match too.
var calculationTerms = []string{
	"TOTAL",
	"SUBTOTAL",
	"SOMA",
	"PONTO EQUILIBRIO",
	"PONTO DE EQUILIBRIO",
	"COMPOSICAO",
	"TOTAL GERAL",
	"DRE",
	"APLICACOES",
	"RETIRADA EXCEDENTE",
	"SALDO",
	"LUCRO LIQUIDO",
	"TOTAL DESPESAS",
	"DESPESAS - TOTAL",
}

// IsRollup decides whether a classified row is a computed aggregate rather
// than a primary data line. It is deliberately local (label plus resolved
// annual value only); sum-based grouping belongs to the Reconstructor, this
// is the cheap filter that keeps obvious aggregates out of it.
func IsRollup(label string, annual float64, category models.CategoryTag) bool {
	folded := models.Fold(label)
	for _, term := range calculationTerms {
		if strings.Contains(folded, term) {
			return true
		}
	}

	// Zero often means "section header with no own value" in these files.
	// Fixed-cost section rows are exempt: their zero is meaningful (the
	// section's children carry the data).
	if annual == 0 && category != models.CategoryFixedCosts {
		return true
	}
	return false
}
