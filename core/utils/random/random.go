package random

import (
	"strings"
)

func GenStringOnAscii(maxBytes uint32) string {
	nByte := int(FastRandN(maxBytes))
	var sb strings.Builder
	sb.Grow(nByte)
	for i := 0; i < nByte; i++ {
		sb.WriteByte(byte(FastRandN(26)) + 65)
	}
	return sb.String()
}

func GenStringsOnAscii(maxNStr, maxBytes uint32) []string {
	nStr := int(FastRandN(maxNStr))
	strs := make([]string, nStr)
	for i := 0; i < nStr; i++ {
		strs[i] = GenStringOnAscii(maxBytes)
	}
	return strs
}

// GenBytes 生成长度为n的随机字节, 覆盖全部256个取值
func GenBytes(n int) []byte {
	p := make([]byte, n)
	for i := 0; i < n; i += 4 {
		v := FastRand()
		for j := 0; j < 4 && i+j < n; j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return p
}

// GenChunkSizes splits n into sizes of 0..maxChunk bytes whose sum is n.
// Zero-length chunks are kept on purpose, they must be accepted by writers.
func GenChunkSizes(n int, maxChunk uint32) []int {
	sizes := make([]int, 0, 8)
	for remain := n; remain > 0; {
		size := int(FastRandN(maxChunk + 1))
		if size > remain {
			size = remain
		}
		sizes = append(sizes, size)
		remain -= size
	}
	return sizes
}

// Split cuts p according to sizes, which must sum to len(p).
func Split(p []byte, sizes []int) [][]byte {
	chunks := make([][]byte, 0, len(sizes))
	var offset int
	for _, size := range sizes {
		chunks = append(chunks, p[offset:offset+size])
		offset += size
	}
	return chunks
}

func GenSequenceNumberOnFastRand(nSeq int) []uint32 {
	seq := make([]uint32, nSeq)
	for i := 0; i < nSeq; i++ {
		seq[i] = FastRand()
	}
	return seq
}

func GenSequenceNumberOn64(nSeq int) []uint64 {
	seq := make([]uint64, nSeq)
	for i := 0; i < nSeq; i++ {
		seq[i] = uint64(FastRand())<<32 | uint64(FastRand())
	}
	return seq
}
