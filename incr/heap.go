package incr

// recomputeHeap buckets nodes by height with intrusive doubly-linked lists
// threaded through the node's prev/next-in-recompute-heap fields, avoiding
// any per-node heap allocation.
type recomputeHeap struct {
	buckets  []Packed // buckets[h] = head of the list at height h
	minNonEmpty int    // smallest height known to possibly be non-empty, or -1
}

func newRecomputeHeap() *recomputeHeap {
	return &recomputeHeap{minNonEmpty: -1}
}

func (h *recomputeHeap) ensureBucket(height int) {
	for len(h.buckets) <= height {
		h.buckets = append(h.buckets, nil)
	}
}

// insert adds p to the bucket at its current Height(). p must not already
// be in the heap.
func (h *recomputeHeap) insert(p Packed) {
	height := p.height()
	if height < 0 {
		contractViolation("recomputeHeap.insert: node #%d has negative height", p.id())
	}
	h.ensureBucket(height)
	head := h.buckets[height]
	p.setPrevInRecomputeHeap(nil)
	p.setNextInRecomputeHeap(head)
	if head != nil {
		head.setPrevInRecomputeHeap(p)
	}
	h.buckets[height] = p
	p.setHeightInRecomputeHeap(height)
	if h.minNonEmpty == -1 || height < h.minNonEmpty {
		h.minNonEmpty = height
	}
}

// remove unlinks p from whatever bucket it currently occupies.
func (h *recomputeHeap) remove(p Packed) {
	bucket := p.heightInRecomputeHeap()
	if bucket == -1 {
		return
	}
	prev := p.prevInRecomputeHeap()
	next := p.nextInRecomputeHeap()
	if prev != nil {
		prev.setNextInRecomputeHeap(next)
	} else {
		h.buckets[bucket] = next
	}
	if next != nil {
		next.setPrevInRecomputeHeap(prev)
	}
	p.setPrevInRecomputeHeap(nil)
	p.setNextInRecomputeHeap(nil)
	p.setHeightInRecomputeHeap(-1)
}

// moveToHeight sets p's height to newHeight and relocates p, already in the
// heap, to the bucket for that height. Used by height adjustment:
// a node's recompute-heap bucket must track its height once adjustment
// concludes.
func (h *recomputeHeap) moveToHeight(p Packed, newHeight int) {
	h.remove(p)
	p.setHeight(newHeight)
	h.insert(p)
}

// popMin removes and returns one node from the lowest non-empty bucket, or
// nil if the heap is empty. Order within a bucket is unspecified.
func (h *recomputeHeap) popMin() Packed {
	for h.minNonEmpty != -1 && h.minNonEmpty < len(h.buckets) {
		if head := h.buckets[h.minNonEmpty]; head != nil {
			h.remove(head)
			return head
		}
		h.minNonEmpty++
	}
	h.minNonEmpty = -1
	return nil
}

func (h *recomputeHeap) isEmpty() bool { return h.peek() == nil }

// peek returns, without removing, a node from the lowest non-empty bucket.
func (h *recomputeHeap) peek() Packed {
	for h.minNonEmpty != -1 && h.minNonEmpty < len(h.buckets) {
		if head := h.buckets[h.minNonEmpty]; head != nil {
			return head
		}
		h.minNonEmpty++
	}
	h.minNonEmpty = -1
	return nil
}

// adjustHeightsHeap stages nodes during a height-raise cascade, bucketed by
// their pre-adjustment height so the cascade drains in non-decreasing
// pre-adjustment-height order.
type adjustHeightsHeap struct {
	buckets     []Packed
	minNonEmpty int
	targets     map[int64]int // node id -> required new height, while staged
}

func newAdjustHeightsHeap() *adjustHeightsHeap {
	return &adjustHeightsHeap{minNonEmpty: -1, targets: make(map[int64]int)}
}

func (h *adjustHeightsHeap) ensureBucket(height int) {
	for len(h.buckets) <= height {
		h.buckets = append(h.buckets, nil)
	}
}

// add stages p, recording the old height in p.height_in_adjust_heights_heap
// and setting/raising its target new height.
func (h *adjustHeightsHeap) add(p Packed, newHeight int) {
	if cur, ok := h.targets[p.id()]; ok {
		if newHeight > cur {
			h.targets[p.id()] = newHeight
		}
		return
	}
	oldHeight := p.height()
	h.targets[p.id()] = newHeight
	p.setHeightInAdjustHeightsHeap(oldHeight)
	h.ensureBucket(oldHeight)
	p.setNextInAdjustHeightsHeap(h.buckets[oldHeight])
	h.buckets[oldHeight] = p
	if h.minNonEmpty == -1 || oldHeight < h.minNonEmpty {
		h.minNonEmpty = oldHeight
	}
}

// popMin drains the lowest pre-adjustment-height bucket one node at a
// time, along with that node's target new height.
func (h *adjustHeightsHeap) popMin() (Packed, int, bool) {
	for h.minNonEmpty != -1 && h.minNonEmpty < len(h.buckets) {
		if head := h.buckets[h.minNonEmpty]; head != nil {
			next := head.nextInAdjustHeightsHeap()
			h.buckets[h.minNonEmpty] = next
			head.setNextInAdjustHeightsHeap(nil)
			head.setHeightInAdjustHeightsHeap(-1)
			target := h.targets[head.id()]
			delete(h.targets, head.id())
			return head, target, true
		}
		h.minNonEmpty++
	}
	h.minNonEmpty = -1
	return nil, 0, false
}
