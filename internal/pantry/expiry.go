package pantry

import (
	"fmt"
	"time"
)

// Band is an expiry severity band.
type Band string

const (
	BandExpired  Band = "expired"
	BandCritical Band = "critical"
	BandWarning  Band = "warning"
	BandGood     Band = "good"
)

// ExpiryStatus pairs a band with its display label.
type ExpiryStatus struct {
	Band  Band
	Label string
}

// ClassifyExpiry maps days until expiry onto its severity band:
// below zero is expired, 0-3 critical, 4-7 warning, above 7 good.
func ClassifyExpiry(days int) ExpiryStatus {
	switch {
	case days < 0:
		return ExpiryStatus{Band: BandExpired, Label: "Expired"}
	case days <= 3:
		return ExpiryStatus{Band: BandCritical, Label: fmt.Sprintf("%dd left", days)}
	case days <= 7:
		return ExpiryStatus{Band: BandWarning, Label: fmt.Sprintf("%dd left", days)}
	default:
		return ExpiryStatus{Band: BandGood, Label: fmt.Sprintf("%dd left", days)}
	}
}

// DaysUntil returns the number of calendar days from today to expiration.
// Only the calendar date of each value counts; the difference is taken in
// UTC date space so daylight-saving shifts never produce a partial day.
func DaysUntil(expiration, today time.Time) int {
	e := time.Date(expiration.Year(), expiration.Month(), expiration.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}
