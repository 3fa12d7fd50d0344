package random

import (
	_ "unsafe"
)

// FastRandN returns a pseudo-random number in [0, max). It is not seedable.
//
//go:linkname FastRandN runtime.fastrandn
func FastRandN(max uint32) uint32

//go:linkname FastRand runtime.fastrand
func FastRand() uint32
