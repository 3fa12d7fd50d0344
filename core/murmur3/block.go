package murmur3

import (
	"encoding/binary"
	"math/bits"
)

// uint64的乘法和加法按2^64取模回绕, 这是算法本身的定义
const (
	c1 uint64 = 0x87c37b91114253d5
	c2 uint64 = 0x4cf5ad432745937f
)

// bmix folds one block (len(b) >= BlockSize) into the accumulator.
// The two words are always decoded little-endian.
func bmix(h1, h2 uint64, b []byte) (uint64, uint64) {
	k1 := binary.LittleEndian.Uint64(b[0:8])
	k2 := binary.LittleEndian.Uint64(b[8:16])

	h1 ^= mixK1(k1)
	h1 = bits.RotateLeft64(h1, 27)
	h1 += h2
	h1 = h1*5 + 0x52dce729

	h2 ^= mixK2(k2)
	h2 = bits.RotateLeft64(h2, 31)
	h2 += h1
	h2 = h2*5 + 0x38495ab5

	return h1, h2
}

func mixK1(k1 uint64) uint64 {
	k1 *= c1
	k1 = bits.RotateLeft64(k1, 31)
	k1 *= c2
	return k1
}

func mixK2(k2 uint64) uint64 {
	k2 *= c2
	k2 = bits.RotateLeft64(k2, 33)
	k2 *= c1
	return k2
}
