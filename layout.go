package polyui

import (
	"errors"

	"github.com/chewxy/math32"
)

// ============================================================================
// Positioner
// ============================================================================

// position is the single-pass layout engine. It sizes the component
// (intrinsic sizer first, then inference from content), recursively lays
// out every child subtree at its own origin, and places the flowing
// children according to the container's Alignment. Manually positioned
// children are sized but pinned at their At offset from the parent origin;
// layout-ignored children are sized and left wherever they are.
//
// The pass is depth-first and runs exactly once per call; there is no
// constraint solving or second measure pass.
func position(c *Component) error {
	if !c.setSize && c.sizer != nil {
		if s := c.sizer(c); s.IsValid() {
			c.width, c.height = s.W, s.H
		}
	}

	if len(c.children) == 0 {
		if !c.Size().IsValid() {
			return &UnresolvedSizeError{Node: c}
		}
		c.clampVisible()
		c.tryMakeScrolling()
		return nil
	}

	for _, k := range c.children {
		if err := position(k); err != nil {
			// An unsized layout-ignored placeholder is exempt from the
			// positioner's size guarantees; everything else aborts.
			var unresolved *UnresolvedSizeError
			if k.layoutIgnored && errors.As(err, &unresolved) {
				continue
			}
			return err
		}
		k.positioned = true
	}

	var flow []*Component
	for _, k := range c.children {
		switch {
		case k.layoutIgnored:
		case k.setPosition:
			k.moveBy(c.x+k.setX-k.x, c.y+k.setY-k.y)
		default:
			flow = append(flow, k)
		}
	}
	if len(flow) > 0 {
		layoutFlow(c, flow)
	}

	if !c.Size().IsValid() {
		return &UnresolvedSizeError{Node: c}
	}
	c.clampVisible()
	c.tryMakeScrolling()
	return nil
}

// clampVisible keeps an explicit viewport from exceeding the size.
func (c *Component) clampVisible() {
	if c.visibleW > c.width {
		c.visibleW = c.width
	}
	if c.visibleH > c.height {
		c.visibleH = c.height
	}
}

// layoutFlow places the flowing children. Rows are built greedily, content
// extent is measured, the container grows to fit when it has no explicit
// size, and finally every row is aligned within the inner box.
func layoutFlow(c *Component, flow []*Component) {
	a := c.alignment
	mainGap := a.Padding.X
	crossGap := a.Padding.Y

	insetMainStart := a.main(c.padding.Left, c.padding.Top)
	insetMain := a.main(c.padding.Horizontal(), c.padding.Vertical())
	insetCrossStart := a.cross(c.padding.Left, c.padding.Top)
	insetCross := a.cross(c.padding.Horizontal(), c.padding.Vertical())

	rows := buildRows(c, flow, mainGap, insetMain)

	var contentMain, contentCross float32
	for i, row := range rows {
		rm, rc := rowExtent(a, row, mainGap)
		contentMain = math32.Max(contentMain, rm)
		contentCross += rc
		if i > 0 {
			contentCross += crossGap
		}
	}

	if !c.setSize {
		growTo(c, a, contentMain+insetMain, contentCross+insetCross)
	}

	innerMain := a.main(c.width, c.height) - insetMain
	innerCross := a.cross(c.width, c.height) - insetCross

	crossPos := insetCrossStart
	for _, row := range rows {
		_, rowCross := rowExtent(a, row, mainGap)
		extent := rowCross
		if len(rows) == 1 {
			// A single row aligns against the full inner box, not
			// against its own height.
			extent = innerCross
		}
		placeRow(c, a, row, mainGap, innerMain, insetMainStart, crossPos, extent)
		crossPos += rowCross + crossGap
	}
}

// buildRows splits the flow into rows. With no MaxRowSize everything is
// one row. Otherwise a row breaks at MaxRowSize items, or earlier when the
// container has a usable main extent and the next item would overflow it.
func buildRows(c *Component, flow []*Component, mainGap, insetMain float32) [][]*Component {
	a := c.alignment
	if a.MaxRowSize <= 0 {
		return [][]*Component{flow}
	}
	avail := a.main(c.width, c.height) - insetMain

	var rows [][]*Component
	var row []*Component
	var rowMain float32
	for _, k := range flow {
		km := a.main(k.width, k.height)
		full := len(row) >= a.MaxRowSize ||
			(avail > 0 && rowMain+mainGap+km > avail)
		if len(row) > 0 && full {
			rows = append(rows, row)
			row = nil
			rowMain = 0
		}
		if len(row) > 0 {
			rowMain += mainGap
		}
		row = append(row, k)
		rowMain += km
	}
	return append(rows, row)
}

// rowExtent returns the main extent (sizes plus gaps) and the cross extent
// (tallest member) of a row.
func rowExtent(a Alignment, row []*Component, mainGap float32) (main, cross float32) {
	for i, k := range row {
		main += a.main(k.width, k.height)
		if i > 0 {
			main += mainGap
		}
		cross = math32.Max(cross, a.cross(k.width, k.height))
	}
	return main, cross
}

// growTo expands a size-inferring container to hold its content. Existing
// extents (from a sizer or a previous pass) are never shrunk here;
// Recalculate resets them first when a fresh measure is wanted.
func growTo(c *Component, a Alignment, needMain, needCross float32) {
	if a.Axis == Vertical {
		c.width = math32.Max(c.width, needCross)
		c.height = math32.Max(c.height, needMain)
		return
	}
	c.width = math32.Max(c.width, needMain)
	c.height = math32.Max(c.height, needCross)
}

// placeRow positions one row's members along the main axis per the main
// alignment, and each member within the row's cross extent per the cross
// alignment. crossPos and insetMainStart are offsets from the container
// origin.
func placeRow(c *Component, a Alignment, row []*Component, mainGap, innerMain, insetMainStart, crossPos, crossExtent float32) {
	var sum float32
	for _, k := range row {
		sum += a.main(k.width, k.height)
	}
	n := float32(len(row))

	var pos, gap float32
	switch a.Main {
	case MainStart:
		gap = mainGap
	case MainCenter:
		gap = mainGap
		pos = (innerMain - sum - gap*(n-1)) / 2
	case MainEnd:
		gap = mainGap
		pos = innerMain - sum - gap*(n-1)
	case MainSpaceBetween:
		if len(row) > 1 {
			gap = (innerMain - sum) / (n - 1)
		} else {
			pos = (innerMain - sum) / 2
		}
	case MainSpaceEvenly:
		gap = (innerMain - sum) / (n + 1)
		pos = gap
	}

	for _, k := range row {
		km := a.main(k.width, k.height)
		kc := a.cross(k.width, k.height)

		var crossOff float32
		switch a.Cross {
		case CrossStart:
		case CrossCenter:
			crossOff = (crossExtent - kc) / 2
		case CrossEnd:
			crossOff = crossExtent - kc
		}

		targetMain := insetMainStart + pos
		targetCross := crossPos + crossOff
		if a.Axis == Vertical {
			k.moveBy(c.x+targetCross-k.x, c.y+targetMain-k.y)
		} else {
			k.moveBy(c.x+targetMain-k.x, c.y+targetCross-k.y)
		}
		pos += km + gap
	}
}
