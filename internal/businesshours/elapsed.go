package businesshours

import "time"

// CalculateElapsedBusinessHours sums the work hours that fall between start
// and end, walking one calendar day at a time. end at or before start yields 0.
func CalculateElapsedBusinessHours(start, end time.Time, cfg Config) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if !end.After(start) {
		return 0, nil
	}

	total := 0.0
	pointer := start
	endDate := dateOf(end)
	for !dateOf(pointer).After(endDate) {
		if IsWorkDay(pointer, cfg) {
			dayStart := cfg.WorkStart.On(pointer)
			dayEnd := cfg.WorkEnd.On(pointer)

			effectiveStart := pointer
			if dayStart.After(effectiveStart) {
				effectiveStart = dayStart
			}
			effectiveEnd := end
			if dayEnd.Before(effectiveEnd) {
				effectiveEnd = dayEnd
			}
			if effectiveEnd.After(effectiveStart) {
				total += effectiveEnd.Sub(effectiveStart).Hours()
			}
		}
		pointer = cfg.WorkStart.On(pointer.AddDate(0, 0, 1))
	}
	return total, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
