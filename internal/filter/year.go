package filter

import "time"

// YearRange is an optional release window. A nil bound is open.
type YearRange struct {
	From *time.Time
	To   *time.Time
}

// Bounded reports whether either bound is set.
func (r YearRange) Bounded() bool {
	return r.From != nil || r.To != nil
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (r YearRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// yearValues lists the selectable year filters in display order.
var yearValues = []string{"2025", "2024", "2020-now", "2010-2019", "2000-2009", "1990-1999"}

var yearRanges = map[string]YearRange{
	"2025":      span(2025, 2025),
	"2024":      span(2024, 2024),
	"2020-now":  {From: day(2020, time.January, 1)},
	"2010-2019": span(2010, 2019),
	"2000-2009": span(2000, 2009),
	"1990-1999": span(1990, 1999),
}

// RangeFor returns the window for a year filter value. "all" and unknown
// values are unbounded.
func RangeFor(year string) YearRange {
	return yearRanges[year]
}

func span(from, to int) YearRange {
	return YearRange{
		From: day(from, time.January, 1),
		To:   day(to, time.December, 31),
	}
}

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}
