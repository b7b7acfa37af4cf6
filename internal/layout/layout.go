// Package layout partitions a row of tabs into pages of fixed width.
package layout

// Tab is the position of a tab within the strip of all tabs laid end to end.
type Tab struct {
	Index int
	// Left and Right are the tab's edges, including any filler.
	Left  int
	Right int
	Width int
	// Filler is the margin inserted before the tab to push it onto the start
	// of a new page.
	Filler int
	// Page is the 1-based number of the page containing the tab.
	Page int
}

// Page is a contiguous run of tabs that fits within one page width.
type Page struct {
	// Left is the offset of the start of the page within the strip.
	Left     int
	FirstTab int
	LastTab  int
	// Tabs are the indices of the tabs on the page.
	Tabs []int
}

// Len is the number of tabs on the page.
func (p Page) Len() int {
	return p.LastTab - p.FirstTab + 1
}

type PageSet struct {
	Tabs  []Tab
	Pages []Page
	// Width is the width of the whole strip, including fillers.
	Width int
	// Max is the width of the widest tab.
	Max int
}

// Compute lays out tabs of the given widths onto pages that are usable cells
// wide. No tab is wider than a page. A tab that would straddle two pages is
// pushed onto the start of the next page with a filler margin.
//
// With no tabs there are no pages. With no usable width all tabs are laid
// out on a single page without fillers.
func Compute(widths []int, usable int) PageSet {
	set := PageSet{
		Tabs: make([]Tab, 0, len(widths)),
	}
	if len(widths) == 0 {
		return set
	}
	if usable <= 0 {
		return single(widths)
	}

	var total int
	for i, w := range widths {
		w = max(0, min(w, usable))
		tab := Tab{
			Index: i,
			Left:  total,
			Width: w,
			Right: total + w,
		}
		tab.Page = ceilDiv(tab.Right, usable)
		if tab.Page < 1 {
			// zero width tab at the very start
			tab.Page = 1
		}
		if tab.Page > len(set.Pages) {
			tab.Filler = usable*(tab.Page-1) - tab.Left
			tab.Left += tab.Filler
			tab.Right += tab.Filler
			set.Pages = append(set.Pages, Page{
				Left:     tab.Left,
				FirstTab: i,
				LastTab:  i,
				Tabs:     []int{i},
			})
		} else {
			current := &set.Pages[len(set.Pages)-1]
			current.LastTab = i
			current.Tabs = append(current.Tabs, i)
			// a tab on an existing page belongs to the latest page
			tab.Page = len(set.Pages)
		}
		total = tab.Right
		set.Max = max(set.Max, w)
		set.Tabs = append(set.Tabs, tab)
	}
	set.Width = total
	return set
}

// single lays out every tab on one page.
func single(widths []int) PageSet {
	set := PageSet{Tabs: make([]Tab, len(widths))}
	page := Page{LastTab: len(widths) - 1}
	var total int
	for i, w := range widths {
		w = max(0, w)
		set.Tabs[i] = Tab{Index: i, Left: total, Width: w, Right: total + w, Page: 1}
		page.Tabs = append(page.Tabs, i)
		total += w
		set.Max = max(set.Max, w)
	}
	set.Pages = []Page{page}
	set.Width = total
	return set
}

// PageOf returns the 0-based page index of the tab with the given index. A
// tab that does not exist is reported as being on the first page.
func (s PageSet) PageOf(index int) int {
	if index < 0 || index >= len(s.Tabs) {
		return 0
	}
	return s.Tabs[index].Page - 1
}

// Fillers returns the filler margin of each tab.
func (s PageSet) Fillers() []int {
	fillers := make([]int, len(s.Tabs))
	for i, tab := range s.Tabs {
		fillers[i] = tab.Filler
	}
	return fillers
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
