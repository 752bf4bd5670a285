// Package listing reconciles a fetched page with the filter state into what
// a listing screen shows.
package listing

import "github.com/vmunix/marquee/internal/filter"

const (
	// MinPageSize is the item count a page needs before pagination shows.
	// Short trailing pages would otherwise get a "1 of 1" paginator.
	MinPageSize = 15

	// WindowSize is the number of page buttons.
	WindowSize = 5
)

// ShowPagination reports whether pagination controls render.
func ShowPagination(itemCount, totalPages int) bool {
	return itemCount >= MinPageSize && totalPages > 1
}

// PageLink is one pagination control. Href is the location it navigates to;
// pagination only ever rewrites the page in the URL.
type PageLink struct {
	Page     int    `json:"page"`
	Href     string `json:"href"`
	Current  bool   `json:"current,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Pager is the pagination control set.
type Pager struct {
	Current    int        `json:"current"`
	TotalPages int        `json:"total_pages"`
	Prev       PageLink   `json:"prev"`
	Next       PageLink   `json:"next"`
	Pages      []PageLink `json:"pages"`
}

// NewPager builds the controls for state's page.
//
// The window starts two pages before the current one and runs for up to
// five pages, clamped to [1, totalPages].
func NewPager(s filter.State, totalPages int) Pager {
	cur := s.Page
	if cur < 1 {
		cur = 1
	}

	start := max(1, cur-WindowSize/2)
	end := min(totalPages, start+WindowSize-1)

	p := Pager{
		Current:    cur,
		TotalPages: totalPages,
		Prev:       link(s, cur-1),
		Next:       link(s, cur+1),
	}
	p.Prev.Disabled = cur == 1
	p.Next.Disabled = cur >= totalPages

	for n := start; n <= end; n++ {
		l := link(s, n)
		l.Current = n == cur
		p.Pages = append(p.Pages, l)
	}
	return p
}

func link(s filter.State, page int) PageLink {
	if page < 1 {
		page = 1
	}
	return PageLink{Page: page, Href: s.WithPage(page).String()}
}
