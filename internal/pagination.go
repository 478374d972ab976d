package internal

const (
	// DefaultPageSize is the fixed listing page size.
	DefaultPageSize = 10

	// PageWindowWidth is the width of the numbered page strip.
	PageWindowWidth = 5

	// CountProbeLimit bounds the one-off fetch used to learn the total
	// memo count.
	CountProbeLimit = 1000
)

// ListView is the explicit pagination cursor for one listing render: an
// immutable value passed in and out of each load instead of module-level
// counters.
type ListView struct {
	CurrentPage int
	PageSize    int
	TotalCount  int
}

func NewListView(page, totalCount int) ListView {
	if page < 1 {
		page = 1
	}
	return ListView{
		CurrentPage: page,
		PageSize:    DefaultPageSize,
		TotalCount:  totalCount,
	}
}

func (v ListView) Skip() int {
	return (v.CurrentPage - 1) * v.PageSize
}

func (v ListView) TotalPages() int {
	if v.TotalCount <= 0 {
		return 0
	}
	return (v.TotalCount + v.PageSize - 1) / v.PageSize
}

// Clamped forces the current page into [1, totalPages]. A request past the
// end lands on the last page instead of crashing or fetching nothing.
func (v ListView) Clamped() ListView {
	total := v.TotalPages()
	if total > 0 && v.CurrentPage > total {
		v.CurrentPage = total
	}
	if v.CurrentPage < 1 {
		v.CurrentPage = 1
	}
	return v
}

func (v ListView) HasPrev() bool {
	return v.CurrentPage > 1
}

func (v ListView) HasNext() bool {
	return v.CurrentPage < v.TotalPages()
}

// PageStrip describes the numbered pagination strip: a fixed window of page
// numbers centered on the current page, with first/last shortcuts and
// ellipses when the window does not reach the edges.
type PageStrip struct {
	Pages            []int
	ShowFirst        bool
	LeadingEllipsis  bool
	ShowLast         bool
	TrailingEllipsis bool
	HasPrev          bool
	HasNext          bool
}

// Strip computes the window for the given width.
func (v ListView) Strip(width int) PageStrip {
	total := v.TotalPages()

	start := v.CurrentPage - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > total {
		end = total
	}
	if end-start < width-1 {
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, width)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return PageStrip{
		Pages:            pages,
		ShowFirst:        start > 1,
		LeadingEllipsis:  start > 2,
		ShowLast:         end < total,
		TrailingEllipsis: end < total-1,
		HasPrev:          v.HasPrev(),
		HasNext:          v.HasNext(),
	}
}
