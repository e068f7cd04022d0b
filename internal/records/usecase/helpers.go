package usecase

import (
	"strconv"
	"strings"
	"time"

	"invoice-assistant/internal/records"
)

const dateLayout = "2006-01-02"

// parseDate accepts YYYY-MM-DD or RFC 3339. Empty means no filter.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, records.ErrInvalidDate
	}
	return &t, nil
}

func parseFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, records.ErrInvalidNumber
	}
	return &f, nil
}

func parseInt(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, records.ErrInvalidNumber
	}
	return &n, nil
}
