package combinatorics

// Partitions returns all partitions of n into exactly k parts, each part
// at least minPart, in descending (non-increasing) part order. Partitions
// are returned in lexicographically decreasing order of their part
// sequences.
//
// Returns nil when no such partition exists (for example n < k*minPart).
func Partitions(n, k, minPart int) [][]int {
	if k <= 0 || n < k*minPart {
		return nil
	}
	var result [][]int
	parts := make([]int, 0, k)

	// Recursive descent fixing the largest remaining part first. The next
	// part may not exceed the previous one, and must leave at least
	// minPart for each remaining slot.
	var descend func(remaining, slots, maxPart int)
	descend = func(remaining, slots, maxPart int) {
		if slots == 1 {
			if remaining >= minPart && remaining <= maxPart {
				p := make([]int, len(parts)+1)
				copy(p, parts)
				p[len(parts)] = remaining
				result = append(result, p)
			}
			return
		}
		hi := min(maxPart, remaining-minPart*(slots-1))
		for part := hi; part >= minPart; part-- {
			// Remaining slots each hold at most part, so the rest must fit.
			if remaining-part > part*(slots-1) {
				break
			}
			parts = append(parts, part)
			descend(remaining-part, slots-1, part)
			parts = parts[:len(parts)-1]
		}
	}
	descend(n, k, n)
	return result
}
