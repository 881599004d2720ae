package domain

import "time"

// DateLayout is the calendar-date layout used for transaction and movement dates.
const DateLayout = "2006-01-02"

// AuditFields holds creation and last-update timestamps for stored entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ParseDate parses a YYYY-MM-DD calendar date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
