package media

import (
	"fmt"
	"strconv"
)

// NotAvailable is shown for any missing value.
const NotAvailable = "N/A"

// FormatRuntime renders minutes as "2 hr 19 min".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}

// FormatSeasons renders a season count as "3 Season(s)".
func FormatSeasons(n int) string {
	if n <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d Season(s)", n)
}

// FormatRating renders a vote average with one decimal. A zero average means
// nobody voted.
func FormatRating(avg float64) string {
	if avg <= 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
