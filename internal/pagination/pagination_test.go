package pagination

import "testing"

var allowedSizes = []int{6, 12, 24, 48}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		pageSize int
		want     int
	}{
		{"empty list still has one page", 0, 12, 1},
		{"exact multiple", 24, 12, 2},
		{"remainder adds a page", 25, 12, 3},
		{"fewer items than one page", 5, 12, 1},
		{"single item", 1, 6, 1},
		{"large catalog", 250, 48, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New[int](tt.pageSize, allowedSizes)
			p.SetSource(intRange(tt.items))
			if got := p.TotalPages(); got != tt.want {
				t.Errorf("TotalPages() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentSliceBounds(t *testing.T) {
	p := New[int](12, allowedSizes)
	p.SetSource(intRange(25))

	// Full first page
	if got := len(p.CurrentSlice()); got != 12 {
		t.Errorf("page 1 len = %d, want 12", got)
	}

	// Short last page, no padding
	p.SetPage(3)
	slice := p.CurrentSlice()
	if len(slice) != 1 {
		t.Fatalf("page 3 len = %d, want 1", len(slice))
	}
	if slice[0] != 25 {
		t.Errorf("page 3 item = %d, want 25", slice[0])
	}
}

func TestCurrentSliceEmptySource(t *testing.T) {
	p := New[int](12, allowedSizes)
	p.SetSource(nil)
	if got := p.CurrentSlice(); got != nil {
		t.Errorf("CurrentSlice() on empty source = %v, want nil", got)
	}
	if p.Page() != 1 {
		t.Errorf("Page() = %d, want 1", p.Page())
	}
}

func TestSlicesPartitionSource(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		pageSize int
	}{
		{"remainder on the last page", 25, 12},
		{"exact multiple", 48, 12},
		{"single short page", 5, 12},
		{"empty source", 0, 12},
		{"page size one", 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := intRange(tt.items)
			p := New[int](tt.pageSize, allowedSizes)
			p.SetSource(source)

			// Walking every page must reproduce the source exactly:
			// nothing duplicated, nothing dropped, order intact
			var walked []int
			for page := 1; page <= p.TotalPages(); page++ {
				p.SetPage(page)
				slice := p.CurrentSlice()
				if len(slice) > tt.pageSize {
					t.Fatalf("page %d slice len %d exceeds page size %d",
						page, len(slice), tt.pageSize)
				}
				walked = append(walked, slice...)
			}

			if len(walked) != tt.items {
				t.Fatalf("walked %d items, source has %d", len(walked), tt.items)
			}
			for i, v := range walked {
				if v != source[i] {
					t.Fatalf("item %d = %d, want %d", i, v, source[i])
				}
			}
		})
	}
}

func TestSetPageClamps(t *testing.T) {
	p := New[int](12, allowedSizes)
	p.SetSource(intRange(25)) // 3 pages

	tests := []struct {
		name string
		page int
		want int
	}{
		{"below range clamps to first", -5, 1},
		{"zero clamps to first", 0, 1},
		{"in range stays", 2, 2},
		{"above range clamps to last", 99, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetPage(tt.page)
			if got := p.Page(); got != tt.want {
				t.Errorf("SetPage(%d): Page() = %d, want %d", tt.page, got, tt.want)
			}
		})
	}
}

func TestNextPrevClampAtEnds(t *testing.T) {
	p := New[int](12, allowedSizes)
	p.SetSource(intRange(25))

	p.PrevPage()
	if p.Page() != 1 {
		t.Errorf("PrevPage() at first page moved to %d", p.Page())
	}

	p.SetPage(3)
	p.NextPage()
	if p.Page() != 3 {
		t.Errorf("NextPage() at last page moved to %d", p.Page())
	}
}

func TestSetSourceResetsToFirstPage(t *testing.T) {
	p := New[int](12, allowedSizes)
	p.SetSource(intRange(100))
	p.SetPage(5)

	p.SetSource(intRange(30))
	if p.Page() != 1 {
		t.Errorf("Page() after SetSource = %d, want 1", p.Page())
	}
}

func TestSetPageSize(t *testing.T) {
	p := New[int](12, allowedSizes)
	p.SetSource(intRange(100))
	p.SetPage(4)

	if !p.SetPageSize(24) {
		t.Fatal("SetPageSize(24) rejected an allowed size")
	}
	if p.Page() != 1 {
		t.Errorf("Page() after size change = %d, want 1", p.Page())
	}
	if p.PageSize() != 24 {
		t.Errorf("PageSize() = %d, want 24", p.PageSize())
	}

	if p.SetPageSize(7) {
		t.Error("SetPageSize(7) accepted a size outside the allowed set")
	}
	if p.PageSize() != 24 {
		t.Errorf("PageSize() changed to %d after rejected set", p.PageSize())
	}
}

func TestNewFallsBackToFirstAllowedSize(t *testing.T) {
	p := New[int](7, allowedSizes)
	if p.PageSize() != 6 {
		t.Errorf("PageSize() = %d, want fallback 6", p.PageSize())
	}
}

func TestCyclePageSize(t *testing.T) {
	p := New[int](12, allowedSizes)
	p.SetSource(intRange(100))

	want := []int{24, 48, 6, 12}
	for _, w := range want {
		if got := p.CyclePageSize(); got != w {
			t.Fatalf("CyclePageSize() = %d, want %d", got, w)
		}
	}
}

func TestNeeded(t *testing.T) {
	p := New[int](12, allowedSizes)

	p.SetSource(intRange(12))
	if p.Needed() {
		t.Error("Needed() = true for a single page")
	}

	p.SetSource(intRange(13))
	if !p.Needed() {
		t.Error("Needed() = false with two pages")
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		page      int
		wantStart int
		wantEnd   int
	}{
		{"start of a long list", 200, 1, 1, 5},
		{"near the start", 200, 2, 1, 5},
		{"middle centers on current", 200, 9, 7, 11},
		{"window truncated at the end", 200, 16, 14, 17},
		{"last page", 200, 17, 15, 17},
		{"fewer pages than the window", 30, 2, 1, 3},
		{"single page", 5, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New[int](12, allowedSizes)
			p.SetSource(intRange(tt.items))
			p.SetPage(tt.page)

			start, end := p.Window(DefaultWindow)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window(5) at page %d = [%d, %d], want [%d, %d]",
					tt.page, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
