package sheet

// TabSelection is the selected index into a fixed set of tabs.
type TabSelection struct {
	index int
	count int
}

// NewTabSelection selects the first of count tabs. count is at least one.
func NewTabSelection(count int) TabSelection {
	if count < 1 {
		count = 1
	}
	return TabSelection{count: count}
}

func (t TabSelection) Index() int { return t.index }

func (t TabSelection) Count() int { return t.count }

// Select moves to tab i. Out-of-range indices are ignored and report false.
func (t *TabSelection) Select(i int) bool {
	if i < 0 || i >= t.count {
		return false
	}
	t.index = i
	return true
}

// Next selects the following tab, wrapping to the first.
func (t *TabSelection) Next() {
	t.index = (t.index + 1) % t.count
}

// Prev selects the preceding tab, wrapping to the last.
func (t *TabSelection) Prev() {
	t.index = (t.index - 1 + t.count) % t.count
}
