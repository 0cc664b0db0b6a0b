package renderer

// Partition maps every pixel index (line*width + col) to the worker that owns it.
// Lines are dealt out round-robin so that every worker gets a similar mix of
// cheap and expensive regions.
func Partition(width, height, workers int) []int {
	if workers < 1 {
		workers = 1
	}
	assignment := make([]int, width*height)
	for idx := range assignment {
		assignment[idx] = (idx / width) % workers
	}
	return assignment
}

// assignedPixels returns the pixel indices owned by worker, in scan order
func assignedPixels(assignment []int, worker int) []int {
	var pixels []int
	for idx, owner := range assignment {
		if owner == worker {
			pixels = append(pixels, idx)
		}
	}
	return pixels
}

// workList tracks which of a worker's pixels still need samples.
// slots holds every local slot exactly once: the active ones in slots[:live],
// the retired ones after them.
type workList struct {
	slots []int
	live  int
}

func newWorkList(n int) *workList {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = i
	}
	return &workList{slots: slots, live: n}
}

// Len returns the number of active slots
func (l *workList) Len() int {
	return l.live
}

// Active returns the slots still being sampled
func (l *workList) Active() []int {
	return l.slots[:l.live]
}

// Retired returns the slots that have converged
func (l *workList) Retired() []int {
	return l.slots[l.live:]
}

// Pass calls sample once for every active slot, in order, and retires each slot
// for which it returns true. Slots kept for the next pass are compacted to the front.
func (l *workList) Pass(sample func(slot int) (retire bool)) {
	next := 0
	for i := 0; i < l.live; i++ {
		if sample(l.slots[i]) {
			continue
		}
		l.slots[next], l.slots[i] = l.slots[i], l.slots[next]
		next++
	}
	l.live = next
}

// jitterSequence returns the per-sample stratum offsets (0,0),(0,1),(1,0),(1,1),...
// shuffled with shuffle. Entry s is used for a pixel's s-th sample.
func jitterSequence(samples int, shuffle func(n int, swap func(i, j int))) [][2]float64 {
	jitter := make([][2]float64, samples)
	for s := range jitter {
		jitter[s] = [2]float64{float64((s / 2) & 1), float64(s & 1)}
	}
	shuffle(len(jitter), func(i, j int) {
		jitter[i], jitter[j] = jitter[j], jitter[i]
	})
	return jitter
}
