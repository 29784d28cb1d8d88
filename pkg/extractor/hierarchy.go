package extractor

import (
	"math"

	"github.com/yurifrl/resultado/pkg/models"
)

// Reconstructor rebuilds parent→child aggregation groups from an ordered
// run of atomic rows. Spreadsheet authors never mark the relationship up
// (no indentation survives into the cell grid), so the only reliable signal
// is arithmetic: a parent's declared value equals the sum of the detail
// rows beneath it, within tolerance.
type Reconstructor struct {
	opts Options
}

// NewReconstructor builds a reconstructor with the given tunables (zero
// fields fall back to defaults).
func NewReconstructor(opts Options) *Reconstructor {
	return &Reconstructor{opts: opts.withDefaults()}
}

// tolerance is the larger of the absolute and relative thresholds for a
// given parent value.
func (r *Reconstructor) tolerance(parent float64) float64 {
	abs := r.opts.ToleranceAbs
	rel := r.opts.ToleranceRel * math.Abs(parent)
	if rel > abs {
		return rel
	}
	return abs
}

// Group scans forward from a candidate parent, accumulating children until
// their running sum reaches the parent's value within tolerance or a value
// too large to be a child appears. The scan is bounded by the configured
// lookahead so a run that never reconciles cannot loop forever. The second
// return value is how many rows of rest were consumed by the scan.
//
// The returned node is confident only when the sum reconciled; a group
// emitted at the lookahead bound is best-effort and flagged as such.
func (r *Reconstructor) Group(parent models.LineItem, rest []models.LineItem) (models.HierarchyNode, int) {
	node := models.HierarchyNode{Parent: parent}
	tol := r.tolerance(parent.Annual)

	limit := r.opts.Lookahead
	if limit > len(rest) {
		limit = len(rest)
	}

	sum := 0.0
	consumed := 0
	for j := 0; j < limit; j++ {
		v := rest[j].Annual
		if v <= 0 {
			// Valueless rows neither join nor end the group.
			consumed = j + 1
			continue
		}

		// A row that alone exceeds the parent beyond tolerance cannot
		// be its child; it signals a new section.
		if v > parent.Annual+tol {
			break
		}
		// Once siblings exist, a row nearly the parent's size is a new
		// parent, and so is one that would blow way past the total.
		if len(node.Children) >= 2 {
			if v > r.opts.ParentRatio*parent.Annual {
				break
			}
			if sum+v > parent.Annual*1.1 {
				break
			}
		}

		node.Children = append(node.Children, rest[j])
		sum += v
		consumed = j + 1

		if math.Abs(sum-parent.Annual) < tol {
			node.Confident = true
			break
		}
	}

	// Children may legitimately fail to reconcile; the best-effort group
	// is still returned, with the residual exposed and Confident false.
	node.Residual = parent.Annual - sum
	return node, consumed
}

// Reconstruct walks an ordered run of atomic rows and produces the
// parent/child groups. A head row whose scan accumulated any children is
// emitted with them even when the sum never reconciled; the Confident flag
// tells the two cases apart. Rows that claimed nothing come back standalone
// (a parent with zero children is a legitimate informational row).
func (r *Reconstructor) Reconstruct(items []models.LineItem) []models.HierarchyNode {
	var nodes []models.HierarchyNode
	for i := 0; i < len(items); {
		parent := items[i]
		if parent.Annual <= 0 {
			i++
			continue
		}

		node, consumed := r.Group(parent, items[i+1:])
		if len(node.Children) > 0 {
			nodes = append(nodes, node)
			i += 1 + consumed
			continue
		}

		nodes = append(nodes, models.HierarchyNode{
			Parent:    parent,
			Confident: true,
		})
		i++
	}
	return nodes
}
