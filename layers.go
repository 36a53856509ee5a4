package circlegarden

// MaxLayers is the number of independent render layers available to scenes.
const MaxLayers = 32

// Layer identifies the render layer that isolates one scene. Valid layers
// are 1..MaxLayers; zero means "no layer".
type Layer uint8

// LayerAllocator hands out layers in increasing order and never reuses them.
// It is not safe for concurrent use.
type LayerAllocator struct {
	next Layer
}

// Allocate returns the next unused layer, or false once all MaxLayers have
// been issued.
func (a *LayerAllocator) Allocate() (Layer, bool) {
	if a.next >= MaxLayers {
		return 0, false
	}
	a.next++
	return a.next, true
}

// Allocated returns how many layers have been issued.
func (a LayerAllocator) Allocated() int {
	return int(a.next)
}

// Remaining returns how many layers can still be issued.
func (a LayerAllocator) Remaining() int {
	return MaxLayers - int(a.next)
}
