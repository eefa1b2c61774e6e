package pager

// Cursor отслеживает, сколько страниц текущей выдачи уже показано.
// Чистая арифметика, никакой виртуализации: показанное остается показанным
// до следующего поиска.
type Cursor struct {
	pageSize int
	total    int
	page     int
}

// New creates a cursor for the given page size. The cursor is empty until the
// first Reset.
func New(pageSize int) *Cursor {
	return &Cursor{pageSize: pageSize, page: 1}
}

// Reset points the cursor at a fresh result set of the given length.
// The page count always restarts at 1.
func (c *Cursor) Reset(total int) {
	c.total = total
	c.page = 1
}

// Page returns how many pages have been materialized so far.
func (c *Cursor) Page() int {
	return c.page
}

// PageSize returns the fixed page size.
func (c *Cursor) PageSize() int {
	return c.pageSize
}

// VisibleCount = min(page*P, N)
func (c *Cursor) VisibleCount() int {
	v := c.page * c.pageSize
	if v > c.total {
		v = c.total
	}
	return v
}

// Remaining = max(N - page*P, 0)
func (c *Cursor) Remaining() int {
	r := c.total - c.page*c.pageSize
	if r < 0 {
		r = 0
	}
	return r
}

// HasMore reports whether the advance control should be enabled.
func (c *Cursor) HasMore() bool {
	return c.Remaining() > 0
}

// FirstSlice returns the [lo, hi) bounds of the initial render.
func (c *Cursor) FirstSlice() (int, int) {
	hi := c.pageSize
	if hi > c.total {
		hi = c.total
	}
	return 0, hi
}

// NextSlice returns the [lo, hi) bounds the next advance would append.
// lo == hi when nothing remains.
func (c *Cursor) NextSlice() (int, int) {
	lo := c.page * c.pageSize
	if lo > c.total {
		lo = c.total
	}
	hi := lo + c.pageSize
	if hi > c.total {
		hi = c.total
	}
	return lo, hi
}

// Advance moves the cursor one page forward. Callers gate it on HasMore;
// advancing past the end only clamps, it never panics.
func (c *Cursor) Advance() {
	c.page++
}
