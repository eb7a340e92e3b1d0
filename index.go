package planar

// BilateralInterleavingID maps the ids 0, 1, 2, 3, … of a sequence of length
// n onto 0, n−1, 1, n−2, …, alternately taking elements from the front and
// the back.
func BilateralInterleavingID(id, n int) int {
	if id&1 == 0 {
		return id >> 1
	}
	return n - 1 - id>>1
}

// TriangularIndex returns the position of the entry (i, j) of a symmetric
// matrix whose upper triangle, including the diagonal, is stored row by row
// in a flat slice. The order of i and j doesn't matter.
//
// An n×n matrix needs n(n+1)/2 entries, see [TriangularSize].
func TriangularIndex(i, j, n int) int {
	if i > j {
		i, j = j, i
	}
	return i*n - i*(i-1)/2 + j - i
}

// TriangularSize returns the number of entries in the upper triangle of an
// n×n matrix, including the diagonal.
func TriangularSize(n int) int {
	return n * (n + 1) / 2
}
