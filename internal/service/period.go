package service

import (
	"strconv"
	"strings"
	"time"

	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/repository"
)

// Period is a calendar month
type Period struct {
	Month int `json:"month" example:"10"`
	Year  int `json:"year" example:"2025"`
}

// resolvePeriod parses month and year query values; a missing part defaults to now's
func resolvePeriod(month, year string, now time.Time) (Period, error) {
	p := Period{Month: int(now.Month()), Year: now.Year()}

	if m := strings.TrimSpace(month); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			return Period{}, apperrors.NewValidationError("month", "must be an integer between 1 and 12")
		}
		p.Month = v
	}
	if y := strings.TrimSpace(year); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil || v < 1000 || v > 9999 {
			return Period{}, apperrors.NewValidationError("year", "must be a four-digit year")
		}
		p.Year = v
	}
	return p, nil
}

// Window returns [first instant of the month, first instant of the next month) in loc
func (p Period) Window(loc *time.Location) repository.DateRange {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	return repository.DateRange{From: start, To: start.AddDate(0, 1, 0)}
}
