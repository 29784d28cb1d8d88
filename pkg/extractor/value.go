package extractor

import (
	"strconv"
	"strings"
)

var currencyMarkers = strings.NewReplacer("R$", "", "$", "", " ", "", "\u00a0", "")

// ParseNumber normalizes a raw cell into a float. Numeric cells come through
// the sheet reader as plain decimal strings and parse directly; text cells
// get the Brazilian treatment: currency markers out, thousands dots out,
// decimal comma to a period. Anything that still does not parse is "no
// value", never an error; malformed financial text is routine in these
// files.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}

	s = strings.TrimSpace(currencyMarkers.Replace(s))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '-', r == '+', r == '.':
			return r
		}
		return -1
	}, s)

	switch s {
	case "", "-", "+", ".", "-.", "+.":
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
