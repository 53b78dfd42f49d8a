package bitsets

// Sets of node ids, one bit per id. Node id k is stored as the (1-based)
// (k+1)th bit from the left of the array, so id 0 is the top bit of byte 0.

// How many bytes are needed to hold ids 0..n-1
func Len(n int) int {
	return (n + 7) / 8
}

// New allocates an empty set that can hold ids 0..n-1
func New(n int) []byte {
	return make([]byte, Len(n), Len(n))
}

// Set the 8 - kth bit of a byte to 1. k ∈ {0,1,2,3,4,5,6,7}.
// E.g. if k = 0, then returned byte = byte | 10000000
func setBit(b byte, k int) byte {
	b = b | (1 << (7 - k))
	return b
}

// Set the (1-based) kth bit (from the LHS) in an array of bytes to 1.
// len(ba) * 8 must be >= k
func SetBit(ba []byte, k int) {
	byteindex := (k - 1) / 8
	bitindex := (k - 1) % 8

	ba[byteindex] = setBit(ba[byteindex], bitindex)
}

// Is the (1-based) kth bit (from the LHS) set? Bits past the end of the array are unset.
func IsBitSet(ba []byte, k int) bool {
	byteindex := (k - 1) / 8
	if k < 1 || byteindex >= len(ba) {
		return false
	}
	bitindex := (k - 1) % 8
	return (ba[byteindex]>>(7-bitindex))&1 == 1
}

// Add node id to the set
func AddId(ba []byte, id int) {
	SetBit(ba, id+1)
}

// Is node id in the set
func HasId(ba []byte, id int) bool {
	return IsBitSet(ba, id+1)
}

// The node ids in the set, in increasing order
func Ids(ba []byte) []int {
	bits := GetSetBits(ba)
	for i := range bits {
		bits[i]--
	}
	return bits
}

// is any bit in an array of bytes set, true/false?
func IsAnyBitSet(ba []byte) bool {
	for i := range ba {
		if ba[i] > 0 {
			return true
		}
	}
	return false
}

// which bits in an array of bytes are set? left-most bit of the left-most byte is bit # 1
func GetSetBits(ba []byte) []int {
	states := make([]int, 0)
	counter := 1

	for i := range ba {
		for j := 7; j > -1; j-- {
			if (ba[i]>>j)&1 == 1 {
				states = append(states, counter)
			}
			counter++
		}
	}

	return states
}

// Get the intersection of set bits from two equal length arrays of bytes.
// Allocates and returns a new byte array which contains the intersection of set bits
func Intersection(aa, ba []byte) []byte {
	ca := make([]byte, len(aa), len(aa))
	for i := range aa {
		ca[i] = aa[i] & ba[i]
	}
	return ca
}
