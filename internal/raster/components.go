package raster

// CountComponents returns the number of 8-connected foreground components.
func CountComponents(b *Binary) int {
	visited := make([]bool, len(b.Pix))
	count := 0
	for i, v := range b.Pix {
		if v == Background || visited[i] {
			continue
		}
		count++
		floodFill(b, visited, i)
	}
	return count
}

// floodFill marks every foreground pixel 8-connected to start as visited.
// It uses an explicit stack so large shapes cannot overflow the goroutine stack.
func floodFill(b *Binary, visited []bool, start int) {
	stack := []int{start}
	visited[start] = true
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%b.Width, i/b.Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if !b.In(nx, ny) {
					continue
				}
				j := ny*b.Width + nx
				if visited[j] || b.Pix[j] == Background {
					continue
				}
				visited[j] = true
				stack = append(stack, j)
			}
		}
	}
}

// IsContour reports whether the foreground pixel at (x, y) has at least one
// 4-connected background neighbor. Background pixels are never contour.
func IsContour(b *Binary, x, y int) bool {
	if !b.IsForeground(x, y) {
		return false
	}
	return !b.IsForeground(x, y-1) || !b.IsForeground(x+1, y) ||
		!b.IsForeground(x, y+1) || !b.IsForeground(x-1, y)
}
