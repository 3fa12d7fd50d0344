package balancer

import (
	"github.com/nyan233/mmh3/core/middle/loadbalance"
	"github.com/nyan233/mmh3/core/murmur3"
)

// hashBalance 同一个service在节点列表不变时总是落到同一个节点
type hashBalance struct {
	absBalance
	seed uint64
}

func NewHash() Balancer {
	return NewHashWithSeed(murmur3.DefaultSeed)
}

func NewHashWithSeed(seed uint64) Balancer {
	return &hashBalance{seed: seed}
}

func (h *hashBalance) Scheme() string {
	return "hash"
}

func (h *hashBalance) Target(service string) (loadbalance.RpcNode, error) {
	sum := murmur3.StringSum64(service, h.seed)
	return h.pick(func(n int) int {
		return int(sum % uint64(n))
	})
}
