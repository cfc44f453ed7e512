package atlas

import "image"

// shelf is one horizontal band of a page.
type shelf struct {
	y      int
	height int
	nextX  int
}

// packer hands out disjoint rectangles of a page with shelf packing: a
// rectangle goes on the first shelf with room for it, otherwise on a new
// shelf below the last one. Space is never reclaimed, except that undo
// takes back the latest allocation.
type packer struct {
	width, height int
	shelves       []shelf
	used          int
	last          allocation
}

// allocation records what allocate changed so undo can revert it.
type allocation struct {
	valid    bool
	appended bool
	shelf    int
	prev     shelf
	area     int
}

func newPacker(width, height int) *packer {
	return &packer{width: width, height: height}
}

// allocate reserves a w x h rectangle. It returns false when the page has no
// room left.
func (p *packer) allocate(w, h int) (image.Rectangle, bool) {
	if w <= 0 || h <= 0 || w > p.width || h > p.height {
		return image.Rectangle{}, false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.nextX+w > p.width {
			continue
		}
		last := i == len(p.shelves)-1
		// Only the last shelf may grow, and only while it stays on the page.
		if h > s.height && (!last || s.y+h > p.height) {
			continue
		}
		r := image.Rect(s.nextX, s.y, s.nextX+w, s.y+h)
		p.last = allocation{valid: true, shelf: i, prev: *s, area: w * h}
		s.nextX += w
		s.height = max(s.height, h)
		p.used += w * h
		return r, true
	}

	y := 0
	if n := len(p.shelves); n > 0 {
		y = p.shelves[n-1].y + p.shelves[n-1].height
	}
	if y+h > p.height {
		return image.Rectangle{}, false
	}
	p.shelves = append(p.shelves, shelf{y: y, height: h, nextX: w})
	p.last = allocation{valid: true, appended: true, shelf: len(p.shelves) - 1, area: w * h}
	p.used += w * h
	return image.Rect(0, y, w, y+h), true
}

// undo reverts the latest allocate. It is a no-op when there is nothing to
// revert.
func (p *packer) undo() {
	a := p.last
	if !a.valid {
		return
	}
	if a.appended {
		p.shelves = p.shelves[:a.shelf]
	} else {
		p.shelves[a.shelf] = a.prev
	}
	p.used -= a.area
	p.last = allocation{}
}

// utilization returns the fraction of the page handed out.
func (p *packer) utilization() float64 {
	return float64(p.used) / float64(p.width*p.height)
}
