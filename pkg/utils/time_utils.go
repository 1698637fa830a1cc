package utils

import "time"

const (
	DateLayout = "2006-01-02"

	// InstallmentPeriod separates two payment plan due dates.
	InstallmentPeriod = 30 * 24 * time.Hour
)

// ParseDate accepts RFC3339 timestamps as well as bare YYYY-MM-DD dates and
// returns UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(DateLayout, s)
}
