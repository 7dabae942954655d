package utils

import "time"

// ParseDate interpreta uma data no formato do calendário (AAAA-MM-DD)
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate serializa uma data no formato do calendário (AAAA-MM-DD)
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
