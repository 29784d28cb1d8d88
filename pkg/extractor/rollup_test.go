package extractor

import (
	"testing"

	"github.com/yurifrl/resultado/pkg/models"
)

func TestIsRollupCalculationTerms(t *testing.T) {
	for _, label := range []string{
		"TOTAL DESPESAS",
		"Subtotal",
		"Soma dos Custos",
		"Ponto de Equilíbrio",
		"Composição do Resultado",
		"Saldo Acumulado",
		"Lucro Líquido",
		"Aplicações Financeiras",
	} {
		if !IsRollup(label, 1000, models.CategoryUncategorized) {
			t.Errorf("IsRollup(%q) = false, want true", label)
		}
	}
}

func TestIsRollupZeroValue(t *testing.T) {
	if !IsRollup("Despesas Diversas", 0, models.CategoryUncategorized) {
		t.Errorf("Zero-value row not flagged as rollup")
	}

	// Fixed-cost section rows legitimately carry zero.
	if IsRollup("Custos Fixos", 0, models.CategoryFixedCosts) {
		t.Errorf("Zero-value fixed-cost row flagged as rollup")
	}
}

func TestIsRollupPlainRow(t *testing.T) {
	if IsRollup("Aluguel", 5000, models.CategoryUncategorized) {
		t.Errorf("IsRollup(Aluguel) = true, want false")
	}
}
