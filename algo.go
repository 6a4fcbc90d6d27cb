package bsearch

// BinarySearch returns an index i such that a[i] == x, or -1 if x is not
// present. a must be sorted in non-descending order; the result is
// unreliable otherwise (no check is performed). If x occurs more than once,
// any matching index may be returned.
func BinarySearch(a []int, x int) int {
	start, end := 0, len(a)-1
	for start <= end {
		pos := start + (end-start)/2 // immune to start+end overflow
		switch {
		case a[pos] > x:
			end = pos - 1
		case a[pos] < x:
			start = pos + 1
		default:
			return pos
		}
	}
	return -1
}
