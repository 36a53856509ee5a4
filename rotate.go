package circlegarden

// RotateColors shifts every color one position forward in place: each shape
// takes its predecessor's color and the first shape takes the last color.
// Applying it len(colors) times restores the starting assignment.
func RotateColors(colors []Color) {
	n := len(colors)
	if n < 2 {
		return
	}
	last := colors[n-1]
	copy(colors[1:], colors[:n-1])
	colors[0] = last
}
