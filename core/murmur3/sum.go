package murmur3

import "github.com/nyan233/mmh3/core/utils/convert"

// Sum128 hashes data in one call. It is equivalent to
//
//	s := New(seed)
//	s.Write(data)
//	s.Sum128()
//
// without the intermediate copy of the tail.
func Sum128(data []byte, seed uint64) (h1, h2 uint64) {
	h1, h2 = seed, seed
	length := uint64(len(data))
	for len(data) >= BlockSize {
		h1, h2 = bmix(h1, h2, data[:BlockSize])
		data = data[BlockSize:]
	}
	return finalize(h1, h2, data, length)
}

func Sum64(data []byte, seed uint64) uint64 {
	h1, _ := Sum128(data, seed)
	return h1
}

func StringSum128(str string, seed uint64) (h1, h2 uint64) {
	return Sum128(convert.StringToBytes(str), seed)
}

func StringSum64(str string, seed uint64) uint64 {
	return Sum64(convert.StringToBytes(str), seed)
}
