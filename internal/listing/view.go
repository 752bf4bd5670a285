package listing

import (
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/filter"
	"github.com/vmunix/marquee/internal/media"
)

// DisplayLimit caps the tiles rendered for one page.
const DisplayLimit = 15

// Status is the render state of a listing.
type Status string

const (
	StatusLoading Status = "loading"
	StatusFailed  Status = "failed"
	StatusEmpty   Status = "empty"
	StatusReady   Status = "ready"
)

// Messages shown for the non-ready states.
const (
	LoadingMessage = "Loading..."
	FailedMessage  = "Data unavailable"
	EmptyMessage   = "No Items Found"
)

// View is everything a listing screen renders.
type View struct {
	Status   Status          `json:"status"`
	Message  string          `json:"message,omitempty"`
	Location string          `json:"location"`
	State    filter.State    `json:"state"`
	Mode     catalog.Mode    `json:"mode"`
	Items    []media.Summary `json:"items"`
	Pager    *Pager          `json:"pagination,omitempty"`
}

// Loading is the placeholder shown while the page for s is in flight. It
// never carries items from another state.
func Loading(s filter.State) View {
	return View{
		Status:   StatusLoading,
		Message:  LoadingMessage,
		Location: s.String(),
		State:    s,
		Mode:     catalog.ModeOf(s),
		Items:    []media.Summary{},
	}
}

// Present builds the view for a finished fetch.
func Present(s filter.State, res *catalog.PageResult, err error) View {
	v := Loading(s)
	v.Message = ""

	if err != nil || res == nil {
		v.Status = StatusFailed
		v.Message = FailedMessage
		return v
	}

	v.Mode = res.Mode
	if len(res.Items) == 0 {
		v.Status = StatusEmpty
		v.Message = EmptyMessage
		return v
	}

	v.Status = StatusReady
	items := res.Items
	if len(items) > DisplayLimit {
		items = items[:DisplayLimit]
	}
	v.Items = items

	if ShowPagination(len(res.Items), res.TotalPages) {
		p := NewPager(s, res.TotalPages)
		v.Pager = &p
	}
	return v
}
