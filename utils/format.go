package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns "Fade & Beard Trim" into "fade-beard-trim". Used to derive
// barber/service/product slugs when none is supplied.
func Slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// To24HourTime normalizes a 12-hour display time ("2:00 PM") to the stored
// 24-hour format ("14:00:00"). Rules: PM and hour != 12 adds 12; AM and
// hour == 12 becomes 0.
func To24HourTime(display string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(display))
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time format: %q", display)
	}

	meridiem := strings.ToUpper(parts[1])
	if meridiem != "AM" && meridiem != "PM" {
		return "", fmt.Errorf("invalid meridiem in time: %q", display)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return "", fmt.Errorf("invalid time format: %q", display)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("invalid hour in time: %q", display)
	}

	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in time: %q", display)
	}

	if meridiem == "PM" && hour != 12 {
		hour += 12
	} else if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}
