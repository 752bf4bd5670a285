package filter

// Option is one dropdown entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// YearOptions lists the year filters.
func YearOptions() []Option {
	opts := make([]Option, 0, len(yearValues))
	for _, y := range yearValues {
		opts = append(opts, Option{Value: y, Label: y})
	}
	return opts
}

// RatingOptions lists minimum ratings from 9 down to 1.
func RatingOptions() []Option {
	opts := make([]Option, 0, 9)
	for r := 9; r >= 1; r-- {
		v := string(rune('0' + r))
		opts = append(opts, Option{Value: v, Label: v + "+"})
	}
	return opts
}

// SortOptions lists the sort orders.
func SortOptions() []Option {
	return []Option{
		{Value: string(SortPopularityDesc), Label: "Most Popular"},
		{Value: string(SortReleaseDateDesc), Label: "Newest"},
		{Value: string(SortReleaseDateAsc), Label: "Oldest"},
		{Value: string(SortVoteAverageDesc), Label: "Top Rated"},
	}
}

// WithAll prepends the unconstrained entry to opts.
func WithAll(label string, opts []Option) []Option {
	return append([]Option{{Value: All, Label: label}}, opts...)
}
