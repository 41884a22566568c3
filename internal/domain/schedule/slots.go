package schedule

// GenerateSlots returns every candidate slot start between start and end
// (minutes since midnight) at the given stride. Starts are strictly before
// end; whether a slot may run past end is the validator's concern, not the
// grid's. start >= end or stride <= 0 produce an empty grid.
func GenerateSlots(start, end, stride int) []int {
	if stride <= 0 || start >= end {
		return nil
	}

	var slots []int
	for cur := start; cur < end; cur += stride {
		slots = append(slots, cur)
	}
	return slots
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Every conflict check in the engine goes through
// this predicate so that back-to-back intervals are never flagged.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
