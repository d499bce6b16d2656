package basic

import "github.com/antibyte/retrobasic/pkg/logger"

const (
	// NumVars is the number of variable cells, one per letter A-Z.
	NumVars = 26
	// MaxArraySize is the largest size DIM accepts.
	MaxArraySize = 65536
)

// VarBank holds the 26 scalar integer cells and the 26 optional arrays.
// A letter names either its scalar or its array depending on whether an
// index is supplied at the use site; the two never alias.
type VarBank struct {
	scalars [NumVars]int64
	arrays  [NumVars][]int64
}

// Get reads the scalar cell for variable index vi (0 = A).
func (v *VarBank) Get(vi int) int64 {
	return v.scalars[vi]
}

// Set writes the scalar cell for variable index vi.
func (v *VarBank) Set(vi int, val int64) {
	v.scalars[vi] = val
}

// GetCell reads array element idx of variable vi. An undimensioned array
// or an out-of-range index reads as 0; neither is an error.
func (v *VarBank) GetCell(vi int, idx int64) int64 {
	arr := v.arrays[vi]
	if arr == nil || idx < 0 || idx >= int64(len(arr)) {
		return 0
	}
	return arr[idx]
}

// SetCell writes array element idx of variable vi. Out-of-range writes
// (including writes to an undimensioned array) are dropped.
func (v *VarBank) SetCell(vi int, idx, val int64) {
	arr := v.arrays[vi]
	if arr == nil || idx < 0 || idx >= int64(len(arr)) {
		logger.Debug(logger.AreaBasic, "array write %c(%d) out of range, ignored", 'A'+vi, idx)
		return
	}
	arr[idx] = val
}

// Dim allocates the array for variable vi with the given size, discarding
// any prior contents. Sizes outside [1, MaxArraySize] are ignored and the
// previous array, if any, stays in place.
func (v *VarBank) Dim(vi int, size int64) bool {
	if size < 1 || size > MaxArraySize {
		logger.Debug(logger.AreaBasic, "DIM %c(%d) out of range, ignored", 'A'+vi, size)
		return false
	}
	v.arrays[vi] = make([]int64, size)
	return true
}

// ArraySize returns the dimensioned size of variable vi's array, 0 if none.
func (v *VarBank) ArraySize(vi int) int {
	return len(v.arrays[vi])
}

// Reset zeroes every scalar cell and releases every array. RUN calls this
// so each execution starts from a clean slate.
func (v *VarBank) Reset() {
	for i := range v.scalars {
		v.scalars[i] = 0
		v.arrays[i] = nil
	}
}
