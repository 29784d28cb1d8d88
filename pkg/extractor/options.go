package extractor

// Options are the extraction tunables. Zero values are replaced with the
// defaults below so a partially filled struct still behaves.
type Options struct {
	// ToleranceAbs and ToleranceRel bound the residual allowed between a
	// parent row and the sum of its detected children; the effective
	// tolerance is the larger of the two for the parent's value.
	ToleranceAbs float64
	ToleranceRel float64

	// Lookahead caps how many rows below a candidate parent are scanned
	// for children before the group is given up as unreconciled.
	Lookahead int

	// ParentRatio: once a group has at least two children, a row larger
	// than ParentRatio*parent is judged a new parent, not a sibling.
	ParentRatio float64

	// MaxItemValue demotes suspiciously large rows to uncategorized when
	// set (> 0). The useful threshold depends on the company's scale, so
	// it is off by default.
	MaxItemValue float64

	// YearMin/YearMax bound which numeric sheet names count as years.
	YearMin int
	YearMax int

	// HeaderScanRows is how many leading rows are searched for the month
	// and annual column headers.
	HeaderScanRows int
}

// DefaultOptions returns the tunables calibrated against the reference
// report files.
func DefaultOptions() Options {
	return Options{
		ToleranceAbs:   100,
		ToleranceRel:   0.02,
		Lookahead:      20,
		ParentRatio:    0.8,
		MaxItemValue:   0,
		YearMin:        2000,
		YearMax:        2030,
		HeaderScanRows: 10,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ToleranceAbs <= 0 {
		o.ToleranceAbs = def.ToleranceAbs
	}
	if o.ToleranceRel <= 0 {
		o.ToleranceRel = def.ToleranceRel
	}
	if o.Lookahead <= 0 {
		o.Lookahead = def.Lookahead
	}
	if o.ParentRatio <= 0 {
		o.ParentRatio = def.ParentRatio
	}
	if o.YearMin <= 0 {
		o.YearMin = def.YearMin
	}
	if o.YearMax <= 0 {
		o.YearMax = def.YearMax
	}
	if o.HeaderScanRows <= 0 {
		o.HeaderScanRows = def.HeaderScanRows
	}
	return o
}
