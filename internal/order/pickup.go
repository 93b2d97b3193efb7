package order

import (
	"slices"
	"strings"
	"time"
)

// Opening hours: pickup is accepted from OpeningHour:00 up to, but not
// including, ClosingHour:00.
const (
	OpeningHour = 8
	ClosingHour = 20
)

// pickupLayouts are the accepted clock formats; browsers send seconds when
// the time input has a step below one minute.
var pickupLayouts = []string{"15:04", "15:04:05"}

// endOfDay is midnight written as the end of the previous day.
var endOfDay = []string{"24:00", "24:00:00"}

// ParsePickupTime parses an "HH:MM" (or "HH:MM:SS") clock time and returns
// the hour and minute. "24:00" is midnight and parses as 00:00.
func ParsePickupTime(raw string) (hour, minute int, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, &OrderError{Code: ErrCodeMissingPickupTime}
	}
	if slices.Contains(endOfDay, raw) {
		return 0, 0, nil
	}
	for _, layout := range pickupLayouts {
		if t, perr := time.Parse(layout, raw); perr == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, &OrderError{Code: ErrCodeInvalidPickupTime, PickupTime: raw}
}

// ValidatePickupTime checks that raw is a clock time within opening hours.
func ValidatePickupTime(raw string) error {
	hour, _, err := ParsePickupTime(raw)
	if err != nil {
		return err
	}
	if hour < OpeningHour || hour >= ClosingHour {
		return &OrderError{Code: ErrCodePickupTimeOutOfRange, PickupTime: strings.TrimSpace(raw)}
	}
	return nil
}
