// Package murmur3 implements the MurmurHash3 x64-128 hash as an incremental
// hasher. Input can arrive in chunks of any size; the digest is identical to
// hashing the concatenated bytes in one call.
//
// MurmurHash3 is not a cryptographic hash.
package murmur3

import (
	"hash"
	"io"

	"github.com/nyan233/mmh3/core/utils/convert"
)

const (
	// BlockSize 一次混合的字节数
	BlockSize = 16
	// Size digest的字节数
	Size = 16
	// DefaultSeed is the seed used by NewDefault.
	DefaultSeed uint64 = 0x85ebca6bc2b2ae35
)

var (
	_ hash.Hash       = new(State)
	_ hash.Hash64     = new(State)
	_ io.StringWriter = new(State)
)

// State holds one hashing session. A State must not be written to from
// several goroutines without external synchronization; independent States
// share nothing.
type State struct {
	h1, h2 uint64
	seed   uint64
	// consumed counts bytes already mixed by bmix, always a multiple of BlockSize
	consumed uint64
	tail     [BlockSize - 1]byte
	nTail    uint8
}

// New returns a State whose accumulator starts at (seed, seed).
func New(seed uint64) *State {
	s := &State{seed: seed}
	s.Reset()
	return s
}

func NewDefault() *State {
	return New(DefaultSeed)
}

// Reset discards everything written so far and keeps the seed.
func (s *State) Reset() {
	s.h1, s.h2 = s.seed, s.seed
	s.consumed = 0
	s.nTail = 0
}

// Write mixes p into the state. It never fails; the returned error is
// always nil.
func (s *State) Write(p []byte) (int, error) {
	n := len(p)
	if s.nTail > 0 {
		missing := BlockSize - int(s.nTail)
		if len(p) < missing {
			s.nTail += uint8(copy(s.tail[s.nTail:], p))
			return n, nil
		}
		var block [BlockSize]byte
		copy(block[:], s.tail[:s.nTail])
		copy(block[s.nTail:], p[:missing])
		s.h1, s.h2 = bmix(s.h1, s.h2, block[:])
		s.consumed += BlockSize
		s.nTail = 0
		p = p[missing:]
	}
	for len(p) >= BlockSize {
		s.h1, s.h2 = bmix(s.h1, s.h2, p[:BlockSize])
		s.consumed += BlockSize
		p = p[BlockSize:]
	}
	s.nTail = uint8(copy(s.tail[:], p))
	return n, nil
}

// WriteString is Write without copying s.
func (s *State) WriteString(str string) (int, error) {
	return s.Write(convert.StringToBytes(str))
}

// Sum128 returns the digest of all bytes written since construction or the
// last Reset. The state is left untouched, so writing may continue.
func (s *State) Sum128() (h1, h2 uint64) {
	return finalize(s.h1, s.h2, s.tail[:s.nTail], s.Len())
}

// Sum64 returns the high half (h1) of Sum128.
func (s *State) Sum64() uint64 {
	h1, _ := s.Sum128()
	return h1
}

// Sum appends h1 then h2 to b, each big-endian.
func (s *State) Sum(b []byte) []byte {
	h1, h2 := s.Sum128()
	return append(b,
		byte(h1>>56), byte(h1>>48), byte(h1>>40), byte(h1>>32),
		byte(h1>>24), byte(h1>>16), byte(h1>>8), byte(h1),

		byte(h2>>56), byte(h2>>48), byte(h2>>40), byte(h2>>32),
		byte(h2>>24), byte(h2>>16), byte(h2>>8), byte(h2),
	)
}

func (s *State) Seed() uint64 {
	return s.seed
}

// Len reports the number of bytes written since construction or the last Reset.
func (s *State) Len() uint64 {
	return s.consumed + uint64(s.nTail)
}

func (s *State) Size() int {
	return Size
}

func (s *State) BlockSize() int {
	return BlockSize
}
