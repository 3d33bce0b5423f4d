package arbor

import "math/bits"

// bitmask256 records which component kinds are present on an entity. Each
// bit corresponds to a KindID; a set bit means the entity currently owns a
// component of that kind.
type bitmask256 [4]uint64

// set enables the bit for the given kind.
func (m *bitmask256) set(k KindID) {
	i := k >> 6 // (k / 64) to find the uint64 index
	o := k & 63 // (k % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// unset disables the bit for the given kind.
func (m *bitmask256) unset(k KindID) {
	i := k >> 6
	o := k & 63
	m[i] &= ^(uint64(1) << uint64(o))
}

// has checks if the bit for the given kind is set.
func (m bitmask256) has(k KindID) bool {
	i := k >> 6
	o := k & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}

// count returns the number of set bits.
func (m bitmask256) count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}

// isEmpty reports whether no bit is set.
func (m bitmask256) isEmpty() bool {
	return m[0]|m[1]|m[2]|m[3] == 0
}

// appendKinds appends every set kind to dst in ascending order.
func (m bitmask256) appendKinds(dst []KindID) []KindID {
	for i, word := range m {
		for word != 0 {
			o := bits.TrailingZeros64(word)
			dst = append(dst, KindID(i*64+o))
			word &= word - 1
		}
	}
	return dst
}
