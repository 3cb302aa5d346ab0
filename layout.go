package panel

// Layout helpers compute child rectangles inside a container. Divisions
// round toward negative infinity so oversized content stays anchored the
// same way as undersized content.

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CenterRect centers a width × height rectangle in container.
func CenterRect(container Rect, width, height int) Rect {
	return Rect{
		X:      container.X + floorDiv(container.Width-width, 2),
		Y:      container.Y + floorDiv(container.Height-height, 2),
		Width:  width,
		Height: height,
	}
}

// DistributeHorizontal lays out one column per width, separated by spacing
// and centered as a group. Each column spans the container's height.
func DistributeHorizontal(container Rect, widths []int, spacing int) []Rect {
	if len(widths) == 0 {
		return nil
	}
	total := spacing * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	x := container.X + floorDiv(container.Width-total, 2)
	rects := make([]Rect, len(widths))
	for i, w := range widths {
		rects[i] = Rect{X: x, Y: container.Y, Width: w, Height: container.Height}
		x += w + spacing
	}
	return rects
}

// DistributeVertical lays out one row per height, separated by spacing and
// centered as a group. Each row spans the container's width.
func DistributeVertical(container Rect, heights []int, spacing int) []Rect {
	if len(heights) == 0 {
		return nil
	}
	total := spacing * (len(heights) - 1)
	for _, h := range heights {
		total += h
	}
	y := container.Y + floorDiv(container.Height-total, 2)
	rects := make([]Rect, len(heights))
	for i, h := range heights {
		rects[i] = Rect{X: container.X, Y: y, Width: container.Width, Height: h}
		y += h + spacing
	}
	return rects
}

// GridLayout splits container into rows × cols equal cells separated by
// spacing. The result is indexed [row][col].
func GridLayout(container Rect, rows, cols, spacing int) [][]Rect {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	cellW := floorDiv(container.Width-spacing*(cols-1), cols)
	cellH := floorDiv(container.Height-spacing*(rows-1), rows)
	grid := make([][]Rect, rows)
	for r := range grid {
		grid[r] = make([]Rect, cols)
		for c := range grid[r] {
			grid[r][c] = Rect{
				X:      container.X + c*(cellW+spacing),
				Y:      container.Y + r*(cellH+spacing),
				Width:  cellW,
				Height: cellH,
			}
		}
	}
	return grid
}

// AlignLeft places a rectangle margin pixels from the container's left edge,
// centered vertically.
func AlignLeft(container Rect, width, height, margin int) Rect {
	return Rect{
		X:      container.X + margin,
		Y:      container.Y + floorDiv(container.Height-height, 2),
		Width:  width,
		Height: height,
	}
}

// AlignRight places a rectangle margin pixels from the container's right
// edge, centered vertically.
func AlignRight(container Rect, width, height, margin int) Rect {
	return Rect{
		X:      container.Right() - width - margin,
		Y:      container.Y + floorDiv(container.Height-height, 2),
		Width:  width,
		Height: height,
	}
}

// AlignTop places a rectangle margin pixels below the container's top edge,
// centered horizontally.
func AlignTop(container Rect, width, height, margin int) Rect {
	return Rect{
		X:      container.X + floorDiv(container.Width-width, 2),
		Y:      container.Y + margin,
		Width:  width,
		Height: height,
	}
}

// AlignBottom places a rectangle margin pixels above the container's bottom
// edge, centered horizontally.
func AlignBottom(container Rect, width, height, margin int) Rect {
	return Rect{
		X:      container.X + floorDiv(container.Width-width, 2),
		Y:      container.Bottom() - height - margin,
		Width:  width,
		Height: height,
	}
}
