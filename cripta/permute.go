package cripta

const mask28 = uint32(0x0FFFFFFF)

// PermuteBits builds a len(rule)-bit value from the low inputWidth bits of
// value. Every entry of rule is a 1-based source position counted from the
// most significant of those inputWidth bits, and output bit i (also counted
// from the most significant end) receives the source bit named by rule[i].
func PermuteBits(value uint64, inputWidth int, rule []int) uint64 {
	var result uint64
	for _, pos := range rule {
		result = (result << 1) | (value>>(inputWidth-pos))&1
	}

	return result
}

// rotateLeft28 rotates the low 28 bits of value left by shifts positions.
func rotateLeft28(value uint32, shifts int) uint32 {
	value &= mask28
	return ((value << shifts) | (value >> (28 - shifts))) & mask28
}
