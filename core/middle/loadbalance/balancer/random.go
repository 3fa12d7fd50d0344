package balancer

import (
	"github.com/nyan233/mmh3/core/middle/loadbalance"
	"github.com/nyan233/mmh3/core/utils/random"
)

type randomBalance struct {
	absBalance
}

func NewRandom() Balancer {
	return new(randomBalance)
}

func (r *randomBalance) Scheme() string {
	return "random"
}

func (r *randomBalance) Target(service string) (loadbalance.RpcNode, error) {
	return r.pick(func(n int) int {
		return int(random.FastRandN(uint32(n)))
	})
}
