package ai

// BucketID names one of the five middle-field buckets.
type BucketID int

const (
	BucketNone BucketID = iota - 1
	BucketHigh          // answers {8,9,10}
	BucketUpper         // answers {5,6,7}
	BucketMid           // answers {2,3,4}
	BucketLow           // answers {1,-1,-2}
	BucketNegative      // answers {-3,-4,-5}
	bucketCount
)

func (b BucketID) String() string {
	if b < 0 || b >= bucketCount {
		return "none"
	}
	return []string{"high", "upper", "mid", "low", "negative"}[b]
}

// fieldPartition is the fixed starting content of every bucket.
var fieldPartition = [bucketCount][]int{
	BucketHigh:     {10, 11, 12},
	BucketUpper:    {13, 14, 15},
	BucketMid:      {7, 8, 9},
	BucketLow:      {1, 2, 3},
	BucketNegative: {4, 5, 6},
}

// Classify maps a point value to its bucket. preferSwap exchanges the two
// high-value buckets; the other three are fixed. Values outside the five
// documented ranges yield BucketNone.
func Classify(pointValue int, preferSwap bool) BucketID {
	switch pointValue {
	case 8, 9, 10:
		if preferSwap {
			return BucketUpper
		}
		return BucketHigh
	case 5, 6, 7:
		if preferSwap {
			return BucketHigh
		}
		return BucketUpper
	case 2, 3, 4:
		return BucketMid
	case 1, -1, -2:
		return BucketLow
	case -3, -4, -5:
		return BucketNegative
	default:
		return BucketNone
	}
}

// FieldSet holds the mutable buckets used by the middle-field strategy.
// Buckets only shrink until Reset.
type FieldSet struct {
	buckets [bucketCount][]int
}

func NewFieldSet() *FieldSet {
	f := &FieldSet{}
	f.Reset()
	return f
}

// Reset refills every bucket with its fixed partition.
func (f *FieldSet) Reset() {
	for id, values := range fieldPartition {
		f.buckets[id] = append([]int(nil), values...)
	}
}

// Values returns a copy of what is left in bucket id.
func (f *FieldSet) Values(id BucketID) []int {
	if id < 0 || id >= bucketCount {
		return nil
	}
	return append([]int(nil), f.buckets[id]...)
}

// Remove deletes value from bucket id and reports whether it was present.
func (f *FieldSet) Remove(id BucketID, value int) bool {
	if id < 0 || id >= bucketCount {
		return false
	}
	for i, v := range f.buckets[id] {
		if v == value {
			f.buckets[id] = append(f.buckets[id][:i], f.buckets[id][i+1:]...)
			return true
		}
	}
	return false
}
