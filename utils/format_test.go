package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shev-k/mikes-cut/utils"
)

func TestTo24HourTime(t *testing.T) {
	cases := []struct {
		display string
		want    string
	}{
		{"9:00 AM", "09:00:00"},
		{"11:30 AM", "11:30:00"},
		{"12:00 PM", "12:00:00"}, // noon stays 12
		{"12:00 AM", "00:00:00"}, // midnight wraps to 0
		{"1:00 PM", "13:00:00"},
		{"2:30 PM", "14:30:00"},
		{"11:45 PM", "23:45:00"},
		{"12:30 AM", "00:30:00"},
	}

	for _, tc := range cases {
		got, err := utils.To24HourTime(tc.display)
		assert.NoError(t, err, tc.display)
		assert.Equal(t, tc.want, got, tc.display)
	}
}

func TestTo24HourTime_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"2:00",       // missing meridiem
		"2:00 XM",    // bad meridiem
		"14:00 PM",   // hour out of 12h range
		"0:30 AM",    // hour below 1
		"2:75 PM",    // bad minute
		"2 PM",       // missing minutes
		"2:00 PM ET", // trailing junk
	}

	for _, display := range invalid {
		_, err := utils.To24HourTime(display)
		assert.Error(t, err, display)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "classic-haircut", utils.Slugify("Classic Haircut"))
	assert.Equal(t, "fade-beard-trim", utils.Slugify("Fade & Beard Trim"))
	assert.Equal(t, "hot-towel-shave", utils.Slugify("  Hot Towel Shave!  "))
	assert.Equal(t, "kids-cut-12", utils.Slugify("Kids' Cut (12-)"))
	assert.Equal(t, "", utils.Slugify("!!!"))
}
