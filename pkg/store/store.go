// Package store is the persistence collaborator: year-keyed durable storage
// of extracted records. The core never writes anywhere itself; it hands
// records to a Store.
package store

import (
	"errors"
	"fmt"

	"github.com/yurifrl/resultado/pkg/models"
)

// ErrNotFound is returned when no record exists for a requested year.
var ErrNotFound = errors.New("record not found")

// Store persists one record per fiscal year. Implementations own the
// storage format.
type Store interface {
	Put(year int, rec *models.YearRecord) error
	Get(year int) (*models.YearRecord, error)
	Years() ([]int, error)
}

// Validate applies the storability contract: a record is worth persisting
// only if its revenue has at least three months of data or a non-zero
// annual total, and the revenue is not all zeros. A record netting to zero
// revenue signals a mis-extraction, not a legitimately inactive year.
func Validate(rec *models.YearRecord) error {
	if rec == nil {
		return fmt.Errorf("nil record")
	}
	rev := rec.Revenue()
	if rev == nil {
		return fmt.Errorf("year %d: no revenue category", rec.Year)
	}
	if len(rev.Monthly) < 3 && rev.Annual == 0 {
		return fmt.Errorf("year %d: revenue has %d months and no annual total", rec.Year, len(rev.Monthly))
	}
	if rev.Annual != 0 {
		return nil
	}
	for _, v := range rev.Monthly {
		if v != 0 {
			return nil
		}
	}
	return fmt.Errorf("year %d: revenue is all zeros", rec.Year)
}
